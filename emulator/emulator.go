// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"fmt"
	"iter"
	"maps"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/internal"
)

const (
	RAM_SIZE = cpu.RAM_SIZE // Size of the emulated RAM.
)

var _emulator_defines = map[string]string{
	"REG_IM": fmt.Sprintf("%v", cpu.REG_IM),
	"REG_IS": fmt.Sprintf("%v", cpu.REG_IS),
	"REG_SP": fmt.Sprintf("%v", cpu.REG_SP),
}

// Emulator state. CPU + program listing.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	image []byte // Raw image, used instead of the Program if set.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(RAM_SIZE),
		Program: &cpu.Program{},
	}

	return
}

// Defines returns an iterator over all of the defines, suitable for
// the assembler's predefines.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// LoadImage sets a raw memory image to run, replacing the Program.
func (emu *Emulator) LoadImage(image []byte) {
	emu.image = image
	emu.Program = &cpu.Program{}
}

// Image returns the memory image that Reset loads.
func (emu *Emulator) Image() []byte {
	if emu.image != nil {
		return emu.image
	}

	return emu.Program.Binary()
}

// Reset the CPU, and load the program into RAM.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	emu.Cpu.Reset()

	err = emu.Cpu.Load(emu.Image())
	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Pc returns the current program counter.
func (emu *Emulator) Pc() int {
	return emu.Cpu.Pc
}

// LineNo returns the current line number for the executing opcode.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.Pc)
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single tick of the emulator.
// done is set once the program halts or runs off the end of memory.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	pc := emu.Cpu.Pc
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Pc: pc, LineNo: lineno, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrHalt) || errors.Is(err, cpu.ErrPcEnd) {
		err = nil
		done = true
		return
	}

	return
}

// Run ticks the emulator until the program is done, or faults.
func (emu *Emulator) Run() (err error) {
	for done, err := emu.Tick(); !done; done, err = emu.Tick() {
		if err != nil {
			return err
		}
	}

	return
}

// State renders the registers, flags and the top of the stack as a table.
func (emu *Emulator) State() string {
	cp := emu.Cpu

	regs := table.NewWriter()
	regs.SetTitle("LS-8")

	header := table.Row{"PC", "FL"}
	row := table.Row{fmt.Sprintf("%02X", cp.Pc), cp.Flags.String()}
	for n, value := range cp.Register {
		if n == cpu.REG_SP {
			header = append(header, "SP")
		} else {
			header = append(header, fmt.Sprintf("R%d", n))
		}
		row = append(row, fmt.Sprintf("%02X", value))
	}
	regs.AppendHeader(header)
	regs.AppendRow(row)

	top := "--"
	if value, err := cp.Peek(); err == nil && cp.Depth() > 0 {
		top = fmt.Sprintf("%02X", value)
	}
	regs.AppendFooter(table.Row{"TICKS", cp.Ticks, "DEPTH", cp.Depth(), "TOP", top})

	return regs.Render()
}
