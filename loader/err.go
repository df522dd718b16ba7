package loader

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Loader errors
	ErrProgramNotFound = errors.New(f("program not found"))
	ErrLineSyntax      = errors.New(f("not a binary byte"))
	ErrLineRange       = errors.New(f("value wider than 8 bits"))
)

// ErrLine indicates the location of a malformed program line.
type ErrLine struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrLine) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrLine) Unwrap() error {
	return err.Err
}

// ErrFile indicates the program file that could not be loaded.
type ErrFile struct {
	Path string
	Err  error
}

func (err *ErrFile) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrFile) Unwrap() error {
	return err.Err
}
