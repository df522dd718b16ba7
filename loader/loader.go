// Package loader reads and writes LS-8 program images.
//
// A program file is text, with one byte per line written as binary digits.
// A line may use a 0b prefix and _ separators, as in 0b1000_0010.
// Anything after a '#' is a comment, and blank lines are skipped:
//
//	10000010 # LDI R0,8
//	00000000
//	00001000
//	01000111 # PRN R0
//	00000000
//	00000001 # HLT
package loader

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
)

// Loader options.
type Options struct {
	Strict  bool // Reject malformed lines, instead of skipping them.
	Verbose bool // Log skipped lines.
	Limit   int  // Maximum image size, if non-zero.
}

// Option modifies the loader options.
type Option func(opts *Options)

// Strict rejects lines that are not binary bytes.
func Strict() Option {
	return func(opts *Options) {
		opts.Strict = true
	}
}

// Verbose logs lines that are skipped.
func Verbose() Option {
	return func(opts *Options) {
		opts.Verbose = true
	}
}

// Limit fails the load if the image would exceed the size.
func Limit(size int) Option {
	return func(opts *Options) {
		opts.Limit = size
	}
}

// parseLine parses a single line. A line with only a comment or
// whitespace returns ok == false.
func parseLine(line string) (value byte, ok bool, err error) {
	text, _, _ := strings.Cut(line, "#")
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		return
	}

	// Binary literals may carry a 0b prefix and _ digit separators.
	if !strings.HasPrefix(strings.ToLower(text), "0b") {
		text = "0b" + text
	}

	v64, err := strconv.ParseUint(text, 0, 64)
	if err != nil {
		var nerr *strconv.NumError
		if errors.As(err, &nerr) && nerr.Err == strconv.ErrRange {
			err = ErrLineRange
		} else {
			err = ErrLineSyntax
		}
		return
	}

	if v64 > 0xff {
		err = ErrLineRange
		return
	}

	value = byte(v64)
	ok = true
	return
}

// Load reads a program image.
//
// Lines that are not binary numbers are skipped, unless the Strict
// option is set. Values wider than a byte are always rejected.
func Load(input io.Reader, options ...Option) (image []byte, err error) {
	var opts Options
	for _, option := range options {
		option(&opts)
	}

	scanner := bufio.NewScanner(input)

	var lineno int
	for scanner.Scan() {
		line := scanner.Text()
		lineno++

		value, ok, lerr := parseLine(line)
		if lerr != nil {
			if opts.Strict || errors.Is(lerr, ErrLineRange) {
				err = &ErrLine{LineNo: lineno, Line: line, Err: lerr}
				return
			}
			if opts.Verbose {
				log.Printf("loader: line %d skipped: %v", lineno, lerr)
			}
			continue
		}
		if !ok {
			continue
		}

		if opts.Limit > 0 && len(image) == opts.Limit {
			err = &ErrLine{LineNo: lineno, Line: line, Err: ErrLineRange}
			return
		}

		image = append(image, value)
	}

	err = scanner.Err()

	return
}

// LoadFile reads a program image from a file.
func LoadFile(path string, options ...Option) (image []byte, err error) {
	inf, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = errors.Join(ErrProgramNotFound, err)
		}
		err = &ErrFile{Path: path, Err: err}
		return
	}
	defer inf.Close()

	image, err = Load(inf, options...)
	if err != nil {
		err = &ErrFile{Path: path, Err: err}
	}

	return
}
