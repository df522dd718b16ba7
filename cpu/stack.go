package cpu

// Push decrements SP, then stores the value at the new top of stack.
func (cpu *Cpu) Push(value byte) (err error) {
	sp := cpu.Register[REG_SP] - 1

	err = cpu.Ram.Write(int(sp), value)
	if err != nil {
		return
	}

	cpu.Register[REG_SP] = sp
	return
}

// Pop loads the value at the top of stack, then increments SP.
func (cpu *Cpu) Pop() (value byte, err error) {
	sp := cpu.Register[REG_SP]

	value, err = cpu.Ram.Read(int(sp))
	if err != nil {
		return
	}

	cpu.Register[REG_SP] = sp + 1
	return
}

// Peek returns the value at the top of stack.
func (cpu *Cpu) Peek() (value byte, err error) {
	return cpu.Ram.Read(int(cpu.Register[REG_SP]))
}

// Depth is the number of bytes pushed since reset.
func (cpu *Cpu) Depth() int {
	return int(SP_INIT) - int(cpu.Register[REG_SP])
}
