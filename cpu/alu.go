package cpu

// aluFunc computes an 8-bit result for an ALU operation.
type aluFunc func(a, b byte) (out byte, err error)

// _alu is the ALU operation table. Results wrap at 8 bits.
var _alu = map[Op]aluFunc{
	OP_ADD: func(a, b byte) (byte, error) { return a + b, nil },
	OP_SUB: func(a, b byte) (byte, error) { return a - b, nil },
	OP_MUL: func(a, b byte) (byte, error) { return a * b, nil },
	OP_DIV: func(a, b byte) (byte, error) {
		if b == 0 {
			return a, ErrDivisionByZero
		}
		return a / b, nil
	},
	OP_MOD: func(a, b byte) (byte, error) {
		if b == 0 {
			return a, ErrDivisionByZero
		}
		return a % b, nil
	},
	OP_AND: func(a, b byte) (byte, error) { return a & b, nil },
	OP_OR:  func(a, b byte) (byte, error) { return a | b, nil },
	OP_XOR: func(a, b byte) (byte, error) { return a ^ b, nil },
	OP_SHL: func(a, b byte) (byte, error) { return a << b, nil },
	OP_SHR: func(a, b byte) (byte, error) { return a >> b, nil },
	OP_INC: func(a, _ byte) (byte, error) { return a + 1, nil },
	OP_DEC: func(a, _ byte) (byte, error) { return a - 1, nil },
	OP_NOT: func(a, _ byte) (byte, error) { return ^a, nil },
}

// aluKnown is true if the ALU implements the operation.
func (op Op) aluKnown() bool {
	_, ok := _alu[op]
	return ok || op == OP_CMP
}

// register validates a register index.
func register(index byte) (reg int, err error) {
	if index >= REG_COUNT {
		err = ErrRegister(index)
		return
	}

	reg = int(index)
	return
}

// Alu performs the operation on registers reg_a and reg_b.
// The result is stored in reg_a, except for CMP, which only
// updates the flags. Single register operations ignore reg_b.
func (cpu *Cpu) Alu(op Op, reg_a, reg_b byte) (err error) {
	fn := _alu[op]
	if !op.aluKnown() {
		err = ErrAluOp(op)
		return
	}

	a, err := register(reg_a)
	if err != nil {
		return
	}

	b := 0
	if op.Operands() == 2 {
		b, err = register(reg_b)
		if err != nil {
			return
		}
	}

	if op == OP_CMP {
		cpu.Flags = Compare(cpu.Register[a], cpu.Register[b])
		return
	}

	out, err := fn(cpu.Register[a], cpu.Register[b])
	if err != nil {
		return
	}

	cpu.Register[a] = out
	return
}
