package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlu(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		op   Op
		a, b byte
		out  byte
	}){
		{"add", OP_ADD, 3, 4, 7},
		{"add_wrap", OP_ADD, 0xff, 2, 1},
		{"sub", OP_SUB, 9, 4, 5},
		{"sub_wrap", OP_SUB, 0, 1, 0xff},
		{"mul", OP_MUL, 8, 9, 72},
		{"mul_wrap", OP_MUL, 16, 17, 0x10},
		{"div", OP_DIV, 17, 5, 3},
		{"mod", OP_MOD, 17, 5, 2},
		{"and", OP_AND, 0b1100, 0b1010, 0b1000},
		{"or", OP_OR, 0b1100, 0b1010, 0b1110},
		{"xor", OP_XOR, 0b1100, 0b1010, 0b0110},
		{"shl", OP_SHL, 0b0000_0101, 2, 0b0001_0100},
		{"shl_out", OP_SHL, 0x81, 1, 0x02},
		{"shl_all", OP_SHL, 0xff, 8, 0},
		{"shr", OP_SHR, 0b1010_0000, 4, 0b0000_1010},
		{"shr_all", OP_SHR, 0xff, 9, 0},
		{"inc", OP_INC, 0x41, 0, 0x42},
		{"inc_wrap", OP_INC, 0xff, 0, 0},
		{"dec", OP_DEC, 0x41, 0, 0x40},
		{"dec_wrap", OP_DEC, 0, 0, 0xff},
		{"not", OP_NOT, 0b1010_0101, 0, 0b0101_1010},
	}

	for _, entry := range table {
		cpu := NewCpu(RAM_SIZE)
		cpu.Register[2] = entry.a
		cpu.Register[5] = entry.b

		err := cpu.Alu(entry.op, 2, 5)
		assert.NoError(err, entry.name)
		assert.Equal(entry.out, cpu.Register[2], entry.name)
		assert.Equal(entry.b, cpu.Register[5], entry.name)
		assert.Equal(Flags(0), cpu.Flags, entry.name)
	}
}

func TestAluWrapsAllWidths(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(RAM_SIZE)
	for a := range 256 {
		for _, b := range []int{0, 1, 3, 127, 128, 255} {
			cpu.Register[0] = byte(a)
			cpu.Register[1] = byte(b)
			assert.NoError(cpu.Alu(OP_ADD, 0, 1))
			assert.Equal(byte((a+b)%256), cpu.Register[0])

			cpu.Register[0] = byte(a)
			assert.NoError(cpu.Alu(OP_SUB, 0, 1))
			assert.Equal(byte((a-b+256)%256), cpu.Register[0])

			cpu.Register[0] = byte(a)
			assert.NoError(cpu.Alu(OP_MUL, 0, 1))
			assert.Equal(byte((a*b)%256), cpu.Register[0])
		}
	}
}

func TestAluCompare(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		a, b  byte
		flags Flags
	}){
		{"eq", 5, 5, FLAG_E},
		{"lt", 4, 5, FLAG_L},
		{"gt", 6, 5, FLAG_G},
		{"unsigned_gt", 0xff, 0x01, FLAG_G},
		{"unsigned_lt", 0x01, 0x80, FLAG_L},
		{"zero", 0, 0, FLAG_E},
	}

	for _, entry := range table {
		cpu := NewCpu(RAM_SIZE)
		cpu.Flags = FLAG_MASK
		cpu.Register[0] = entry.a
		cpu.Register[1] = entry.b

		err := cpu.Alu(OP_CMP, 0, 1)
		assert.NoError(err, entry.name)
		assert.Equal(entry.flags, cpu.Flags, entry.name)
		assert.Equal(entry.a, cpu.Register[0], entry.name)
		assert.Equal(entry.b, cpu.Register[1], entry.name)
	}
}

func TestAluDivisionByZero(t *testing.T) {
	assert := assert.New(t)

	for _, op := range []Op{OP_DIV, OP_MOD} {
		cpu := NewCpu(RAM_SIZE)
		cpu.Register[0] = 42
		cpu.Pc = 0x10

		err := cpu.Alu(op, 0, 1)
		assert.Equal(ErrDivisionByZero, err, op.String())
		assert.Equal(byte(42), cpu.Register[0], op.String())
		assert.Equal(0x10, cpu.Pc, op.String())
	}
}

func TestAluUnsupported(t *testing.T) {
	assert := assert.New(t)

	for _, op := range []Op{OP_HLT, OP_LDI, OP_PUSH, OP_JMP, Op(0xa5), Op(0xff)} {
		cpu := NewCpu(RAM_SIZE)
		err := cpu.Alu(op, 0, 1)
		assert.ErrorIs(err, ErrAluUnsupported, op.String())
		assert.Equal(ErrAluOp(op), err, op.String())
	}
}

func TestAluRegister(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(RAM_SIZE)

	err := cpu.Alu(OP_ADD, 8, 0)
	assert.Equal(ErrRegister(8), err)

	err = cpu.Alu(OP_ADD, 0, 0xff)
	assert.Equal(ErrRegister(0xff), err)
	assert.ErrorIs(err, ErrRegisterInvalid)

	// Single register operations ignore the second operand.
	cpu.Register[3] = 1
	err = cpu.Alu(OP_INC, 3, 0xff)
	assert.NoError(err)
	assert.Equal(byte(2), cpu.Register[3])

	// The stack pointer is an ordinary register.
	err = cpu.Alu(OP_DEC, REG_SP, 0)
	assert.NoError(err)
	assert.Equal(byte(SP_INIT-1), cpu.Register[REG_SP])
}
