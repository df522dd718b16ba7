package cpu

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
)

var _cpu_defines = map[string]string{
	"RAM_SIZE":     fmt.Sprintf("%#x", RAM_SIZE),
	"SP_INIT":      fmt.Sprintf("%#x", SP_INIT),
	"ARENA_KEY":    fmt.Sprintf("%#x", ARENA_KEY),
	"ARENA_VECTOR": fmt.Sprintf("%#x", ARENA_VECTOR),
	"FLAG_E":       fmt.Sprintf("%#x", byte(FLAG_E)),
	"FLAG_G":       fmt.Sprintf("%#x", byte(FLAG_G)),
	"FLAG_L":       fmt.Sprintf("%#x", byte(FLAG_L)),
}

// Cpu is the simulation context of an LS-8 processor.
type Cpu struct {
	Verbose bool      // Set to enable verbose logging.
	Output  io.Writer // Destination of PRN and PRA, discarded if nil.

	Pc       int             // Address of the next instruction.
	Register [REG_COUNT]byte // Register bank. R7 is the stack pointer.
	Flags    Flags           // Result of the last CMP.
	Ram      *Ram            // Main memory.

	Ticks int // Instructions executed.

	halted bool
}

// NewCpu creates a new CPU with a specifically sized RAM.
// Addresses held in registers are 8 bits, so CALL, RET, the jumps, LD
// and ST only reach the first RAM_SIZE bytes of a larger RAM.
func NewCpu(size uint) (cpu *Cpu) {
	cpu = &Cpu{
		Ram: NewRam(size),
	}

	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text = fmt.Sprintf("   pc: %02X\n", cpu.Pc)
	text += fmt.Sprintf("   fl: %v\n", cpu.Flags)
	for n, val := range cpu.Register {
		text += fmt.Sprintf("   r%d: %02X\n", n, val)
	}

	return
}

// Reset the CPU state.
// - Clears the registers, flags, and RAM.
// - Zeros statistics counters.
// - Points the stack at SP_INIT, and the PC at the program arena.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	cpu.Register[REG_SP] = SP_INIT
	cpu.Flags = 0
	cpu.Ram.Reset()
	cpu.Pc = ARENA_PROGRAM
	cpu.Ticks = 0
	cpu.halted = false
}

// Load a program image into RAM.
func (cpu *Cpu) Load(image []byte) (err error) {
	return cpu.Ram.Load(image)
}

// Halted is true once an HLT has executed.
func (cpu *Cpu) Halted() bool {
	return cpu.halted
}

// FetchCode fetches the instruction at the PC, and its operands.
func (cpu *Cpu) FetchCode() (code Code, err error) {
	if cpu.Pc >= cpu.Ram.Size() {
		err = ErrPcEnd
		return
	}

	op, err := cpu.Ram.Read(cpu.Pc)
	if err != nil {
		return
	}

	code.Op = Op(op)
	if code.Op.Operands() == 0 {
		return
	}

	code.Operands = make([]byte, code.Op.Operands())
	for n := range code.Operands {
		code.Operands[n], err = cpu.Ram.Read(cpu.Pc + 1 + n)
		if err != nil {
			return
		}
	}

	return
}

// Tick executes a single CPU instruction cycle.
func (cpu *Cpu) Tick() (err error) {
	if cpu.halted {
		err = ErrHalt
		return
	}

	code, err := cpu.FetchCode()
	if err != nil {
		return
	}

	err = cpu.Execute(code)
	return
}

// Run ticks until HLT or the end of memory.
func (cpu *Cpu) Run() (err error) {
	for {
		err = cpu.Tick()
		if errors.Is(err, ErrHalt) || errors.Is(err, ErrPcEnd) {
			err = nil
			return
		}
		if err != nil {
			return
		}
	}
}

// execFunc executes a decoded instruction.
type execFunc func(cpu *Cpu, code Code) (err error)

// _exec is the instruction dispatch table for the non-ALU opcodes.
var _exec = map[Op]execFunc{
	OP_NOP:  func(cpu *Cpu, code Code) error { return nil },
	OP_HLT:  (*Cpu).execHlt,
	OP_LDI:  (*Cpu).execLdi,
	OP_LD:   (*Cpu).execLd,
	OP_ST:   (*Cpu).execSt,
	OP_PRN:  (*Cpu).execPrn,
	OP_PRA:  (*Cpu).execPra,
	OP_PUSH: (*Cpu).execPush,
	OP_POP:  (*Cpu).execPop,
	OP_CALL: (*Cpu).execCall,
	OP_RET:  (*Cpu).execRet,
	OP_JMP:  (*Cpu).execJump,
	OP_JEQ:  (*Cpu).execJump,
	OP_JNE:  (*Cpu).execJump,
	OP_JGT:  (*Cpu).execJump,
	OP_JLT:  (*Cpu).execJump,
	OP_JLE:  (*Cpu).execJump,
	OP_JGE:  (*Cpu).execJump,
}

// Execute executes a single decoded instruction.
func (cpu *Cpu) Execute(code Code) (err error) {
	if cpu.Verbose {
		log.Printf("%02x: %v", cpu.Pc, code)
	}

	exec, ok := dispatch(code.Op)
	if !ok {
		err = ErrOpcode(code)
		return
	}

	if len(code.Operands) < code.Op.Operands() {
		err = errors.Join(ErrOpcode(code), ErrOpcodeArg1)
		return
	}

	err = exec(cpu, code)
	if err != nil {
		return
	}

	cpu.Ticks++

	if !code.Op.SetsPc() {
		cpu.Pc += code.Op.Size()
	}

	return
}

// dispatch returns the handler for an opcode. ALU class opcodes go to the
// ALU, if it implements them.
func dispatch(op Op) (exec execFunc, ok bool) {
	if op.IsAlu() {
		exec = (*Cpu).execAlu
		ok = op.aluKnown()
		return
	}

	exec, ok = _exec[op]
	return
}

// reg returns the register selected by the n'th operand.
func (cpu *Cpu) reg(code Code, n int) (reg *byte, err error) {
	index, err := register(code.arg(n))
	if err != nil {
		if n == 0 {
			err = errors.Join(ErrOpcodeArg1, err)
		} else {
			err = errors.Join(ErrOpcodeArg2, err)
		}
		return
	}

	reg = &cpu.Register[index]
	return
}

func (cpu *Cpu) execHlt(code Code) (err error) {
	cpu.halted = true
	err = ErrHalt
	return
}

func (cpu *Cpu) execLdi(code Code) (err error) {
	dst, err := cpu.reg(code, 0)
	if err != nil {
		return
	}

	*dst = code.arg(1)
	return
}

func (cpu *Cpu) execLd(code Code) (err error) {
	dst, err := cpu.reg(code, 0)
	if err != nil {
		return
	}
	addr, err := cpu.reg(code, 1)
	if err != nil {
		return
	}

	value, err := cpu.Ram.Read(int(*addr))
	if err != nil {
		return
	}

	*dst = value
	return
}

func (cpu *Cpu) execSt(code Code) (err error) {
	addr, err := cpu.reg(code, 0)
	if err != nil {
		return
	}
	src, err := cpu.reg(code, 1)
	if err != nil {
		return
	}

	err = cpu.Ram.Write(int(*addr), *src)
	return
}

func (cpu *Cpu) execPrn(code Code) (err error) {
	src, err := cpu.reg(code, 0)
	if err != nil {
		return
	}

	if cpu.Output != nil {
		_, err = fmt.Fprintf(cpu.Output, "%d\n", *src)
	}
	return
}

func (cpu *Cpu) execPra(code Code) (err error) {
	src, err := cpu.reg(code, 0)
	if err != nil {
		return
	}

	if cpu.Output != nil {
		_, err = cpu.Output.Write([]byte{*src})
	}
	return
}

func (cpu *Cpu) execPush(code Code) (err error) {
	src, err := cpu.reg(code, 0)
	if err != nil {
		return
	}

	err = cpu.Push(*src)
	if err != nil {
		err = errors.Join(ErrOpcodeStack, err)
	}
	return
}

func (cpu *Cpu) execPop(code Code) (err error) {
	dst, err := cpu.reg(code, 0)
	if err != nil {
		return
	}

	value, err := cpu.Pop()
	if err != nil {
		err = errors.Join(ErrOpcodeStack, err)
		return
	}

	*dst = value
	return
}

func (cpu *Cpu) execCall(code Code) (err error) {
	target, err := cpu.reg(code, 0)
	if err != nil {
		return
	}

	// Read the target before the push, as it may be the SP.
	next_pc := int(*target)

	err = cpu.Push(byte(cpu.Pc + code.Op.Size()))
	if err != nil {
		err = errors.Join(ErrOpcodeStack, err)
		return
	}

	cpu.Pc = next_pc
	return
}

func (cpu *Cpu) execRet(code Code) (err error) {
	next_pc, err := cpu.Pop()
	if err != nil {
		err = errors.Join(ErrOpcodeStack, err)
		return
	}

	cpu.Pc = int(next_pc)
	return
}

func (cpu *Cpu) execJump(code Code) (err error) {
	target, err := cpu.reg(code, 0)
	if err != nil {
		return
	}

	var taken bool
	fl := cpu.Flags
	switch code.Op {
	case OP_JMP:
		taken = true
	case OP_JEQ:
		taken = fl.Equal()
	case OP_JNE:
		taken = !fl.Equal()
	case OP_JGT:
		taken = fl.Greater()
	case OP_JLT:
		taken = fl.Less()
	case OP_JLE:
		taken = fl.Less() || fl.Equal()
	case OP_JGE:
		taken = fl.Greater() || fl.Equal()
	}

	if taken {
		cpu.Pc = int(*target)
	} else {
		cpu.Pc += code.Op.Size()
	}

	return
}

func (cpu *Cpu) execAlu(code Code) (err error) {
	err = cpu.Alu(code.Op, code.arg(0), code.arg(1))
	if err != nil {
		err = errors.Join(ErrOpcodeAlu, err)
	}
	return
}
