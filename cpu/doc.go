// Package cpu implements the processor and assembler for the LS-8 system.
//
// The CPU consists of a program counter, eight 8-bit registers (r0-r7, with
// r7 as the stack pointer), a flags register holding the result of the last
// comparison, an ALU, and a byte addressable RAM. The stack lives in RAM and
// grows down from SP_INIT.
//
// Each instruction byte encodes its operand count in bits 7-6, ALU membership
// in bit 5, and whether it assigns the PC itself in bit 4.
//
// The assembler provides an assembly language for the LS-8 instruction set,
// supporting macros, labels, equates, and compile-time expression evaluation.
package cpu
