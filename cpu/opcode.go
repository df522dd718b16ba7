package cpu

import (
	"fmt"
	"strings"
)

// Op is an LS-8 instruction byte.
//
// The upper bits of the byte describe the instruction:
//
//	AABCDDDD
//	|||+------ instruction identifier
//	||+------- sets PC
//	|+-------- ALU operation
//	+--------- number of operands
type Op byte

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_NOP  = Op(0b0000_0000) // NOP
	OP_HLT  = Op(0b0000_0001) // HLT
	OP_RET  = Op(0b0001_0001) // RET
	OP_PUSH = Op(0b0100_0101) // PUSH
	OP_POP  = Op(0b0100_0110) // POP
	OP_PRN  = Op(0b0100_0111) // PRN
	OP_PRA  = Op(0b0100_1000) // PRA
	OP_CALL = Op(0b0101_0000) // CALL
	OP_JMP  = Op(0b0101_0100) // JMP
	OP_JEQ  = Op(0b0101_0101) // JEQ
	OP_JNE  = Op(0b0101_0110) // JNE
	OP_JGT  = Op(0b0101_0111) // JGT
	OP_JLT  = Op(0b0101_1000) // JLT
	OP_JLE  = Op(0b0101_1001) // JLE
	OP_JGE  = Op(0b0101_1010) // JGE
	OP_INC  = Op(0b0110_0101) // INC
	OP_DEC  = Op(0b0110_0110) // DEC
	OP_NOT  = Op(0b0110_1001) // NOT
	OP_LDI  = Op(0b1000_0010) // LDI
	OP_LD   = Op(0b1000_0011) // LD
	OP_ST   = Op(0b1000_0100) // ST
	OP_ADD  = Op(0b1010_0000) // ADD
	OP_SUB  = Op(0b1010_0001) // SUB
	OP_MUL  = Op(0b1010_0010) // MUL
	OP_DIV  = Op(0b1010_0011) // DIV
	OP_MOD  = Op(0b1010_0100) // MOD
	OP_CMP  = Op(0b1010_0111) // CMP
	OP_AND  = Op(0b1010_1000) // AND
	OP_OR   = Op(0b1010_1010) // OR
	OP_XOR  = Op(0b1010_1011) // XOR
	OP_SHL  = Op(0b1010_1100) // SHL
	OP_SHR  = Op(0b1010_1101) // SHR
)

const (
	opOperandShift = 6
	opAluBit       = Op(1 << 5)
	opSetsPcBit    = Op(1 << 4)
)

// Operands returns the number of operand bytes following the opcode.
func (op Op) Operands() int {
	return int(op >> opOperandShift)
}

// Size returns the total instruction length in bytes.
func (op Op) Size() int {
	return 1 + op.Operands()
}

// IsAlu is true for instructions executed by the ALU.
func (op Op) IsAlu() bool {
	return (op & opAluBit) != 0
}

// SetsPc is true for instructions that assign the PC themselves.
func (op Op) SetsPc() bool {
	return (op & opSetsPcBit) != 0
}

// Known is true if the opcode is part of the instruction set.
func (op Op) Known() bool {
	_, ok := dispatch(op)
	return ok
}

// Code is a single decoded instruction.
type Code struct {
	Op       Op
	Operands []byte
}

// MakeCode creates an instruction.
func MakeCode(op Op, operands ...byte) Code {
	return Code{Op: op, Operands: operands}
}

// Bytes returns the encoding of the instruction.
func (code Code) Bytes() (out []byte) {
	out = make([]byte, 0, 1+len(code.Operands))
	out = append(out, byte(code.Op))
	out = append(out, code.Operands...)
	return
}

// arg returns the n'th operand, or zero if missing.
func (code Code) arg(n int) byte {
	if n >= len(code.Operands) {
		return 0
	}
	return code.Operands[n]
}

// String returns the assembly language representation of this instruction.
func (code Code) String() (out string) {
	args := make([]string, 0, len(code.Operands))
	for n, operand := range code.Operands {
		if code.Op == OP_LDI && n == 1 {
			args = append(args, fmt.Sprintf("0x%02x", operand))
		} else {
			args = append(args, fmt.Sprintf("R%d", operand))
		}
	}

	out = code.Op.String()
	if len(args) > 0 {
		out += " " + strings.Join(args, ",")
	}

	return
}
