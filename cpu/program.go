package cpu

import (
	"iter"
)

// Opcode represents a line of assembled code with its source location and
// generated instruction, or raw data.
type Opcode struct {
	LineNo    int
	Ip        int
	Words     []string
	Code      Code
	Data      []byte
	LinkLabel string
}

// Bytes returns the memory image of the line.
func (op *Opcode) Bytes() []byte {
	if op.Data != nil {
		return op.Data
	}
	return op.Code.Bytes()
}

// Size is the number of bytes of memory used by the line.
func (op *Opcode) Size() int {
	if op.Data != nil {
		return len(op.Data)
	}
	return op.Code.Op.Size()
}

// link patches the label address into the last byte of the line.
func (op *Opcode) link(value byte) {
	if op.Data != nil {
		op.Data[len(op.Data)-1] = value
		return
	}
	op.Code.Operands[len(op.Code.Operands)-1] = value
}

type Program struct {
	Opcodes []Opcode
}

type Debug struct {
	*Opcode
	Index int
}

func (prog *Program) Debug(ip int) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if ip >= op.Ip && ip < op.Ip+op.Size() {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  ip - op.Ip,
			}
			break
		}
	}

	return
}

// Binary returns the memory image of the program, starting at ARENA_PROGRAM.
func (prog *Program) Binary() (bins []byte) {
	for _, op := range prog.Opcodes {
		for len(bins) < op.Ip {
			bins = append(bins, 0)
		}
		bins = append(bins, op.Bytes()...)
	}

	return
}

// Codes iterates over the instructions, and their addresses.
func (prog *Program) Codes() iter.Seq2[int, Code] {
	return func(yield func(ip int, code Code) bool) {
		for _, op := range prog.Opcodes {
			if op.Data != nil {
				continue
			}
			if !yield(op.Ip, op.Code) {
				return
			}
		}
	}
}
