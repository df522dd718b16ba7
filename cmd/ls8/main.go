// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/tebeka/atexit"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/emulator"
	"github.com/ezrec/ls8/internal"
	"github.com/ezrec/ls8/loader"
	"github.com/ezrec/ls8/translate"
)

var f = translate.From

func main() {
	var compile string
	var save string
	var strict bool
	var dump bool
	var verbose bool

	flag.StringVar(&compile, "c", "", ".asm file to compile")
	flag.StringVar(&save, "s", "", "Save program to .ls8 file, do not execute")
	flag.BoolVar(&strict, "strict", false, "Reject malformed program lines")
	flag.BoolVar(&dump, "dump", false, "Print the CPU state on exit")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if verbose {
		log.Printf("language: %v", translate.Language())
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Cpu.Output = os.Stdout

	if dump {
		atexit.Register(func() { fmt.Fprintln(os.Stderr, emu.State()) })
	}

	switch {
	case len(compile) != 0:
		if flag.NArg() != 0 {
			atexit.Fatalf("%v: %v", os.Args[0], f("unknown arguments: %v", flag.Args()))
		}

		inf, err := os.Open(compile)
		if err != nil {
			atexit.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: verbose}
		for key, value := range internal.Sorted(emu.Defines()) {
			if verbose {
				log.Printf("predefine %v = %v", key, value)
			}
			asm.Predefine(key, value)
		}
		emu.Program, err = asm.Parse(inf)
		if err != nil {
			atexit.Fatalf("%v: %v", compile, err)
		}
	case flag.NArg() == 1:
		var options []loader.Option
		if strict {
			options = append(options, loader.Strict())
		}
		if verbose {
			options = append(options, loader.Verbose())
		}
		options = append(options, loader.Limit(emulator.RAM_SIZE))

		image, err := loader.LoadFile(flag.Arg(0), options...)
		if err != nil {
			atexit.Fatal(err)
		}
		emu.LoadImage(image)
	default:
		atexit.Fatalf("%v: %v", os.Args[0], f("usage: [-c file.asm | file.ls8]"))
	}

	if len(save) != 0 {
		ouf, err := os.Create(save)
		if err != nil {
			atexit.Fatalf("%v: %v", save, err)
		}
		atexit.Register(func() { ouf.Close() })

		comment := func(address int) string {
			dbg := emu.Program.Debug(address)
			if dbg.Opcode == nil || dbg.Index != 0 {
				return ""
			}
			return strings.Join(dbg.Words, " ")
		}
		err = loader.Save(ouf, emu.Image(), comment)
		if err != nil {
			atexit.Fatalf("%v: %v", save, err)
		}
		atexit.Exit(0)
	}

	err := emu.Reset()
	if err != nil {
		atexit.Fatal(err)
	}

	for done, err := emu.Tick(); !done; done, err = emu.Tick() {
		if err != nil {
			atexit.Fatal(err)
		}
	}

	if emu.Cpu.Halted() {
		log.Print(f("HALT"))
	}

	atexit.Exit(0)
}
