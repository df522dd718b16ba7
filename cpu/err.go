package cpu

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalt            = errors.New(f("halt"))
	ErrPcEnd           = errors.New(f("pc at end of memory"))
	ErrOutOfRange      = errors.New(f("address out of range"))
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrOpcodeUnknown   = errors.New(f("opcode unknown"))
	ErrAluUnsupported  = errors.New(f("unsupported alu operation"))
	ErrDivisionByZero  = errors.New(f("division by zero"))

	// Instruction decode errors
	ErrOpcodeAlu   = errors.New(f("alu"))
	ErrOpcodeStack = errors.New(f("stack"))
	ErrOpcodeArg1  = errors.New(f("arg1"))
	ErrOpcodeArg2  = errors.New(f("arg2"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrMacroSyntax        = errors.New(f(".macro syntax"))
	ErrMacroNesting       = errors.New(f(".macro in .macro prohibited"))
	ErrMacroDuplicate     = errors.New(f(".macro duplicated"))
	ErrMacroLonely        = errors.New(f(".macro without .endm"))
	ErrMacroLonelyEndm    = errors.New(f(".endm without .macro"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrOpcodeValueRange   = errors.New(f("value out of range"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
)

// ErrAddress is a memory access outside of the RAM.
type ErrAddress int

func (ea ErrAddress) Error() string {
	return f("address %d out of range", int(ea))
}

func (ea ErrAddress) Is(err error) bool {
	return err == ErrOutOfRange
}

// ErrRegister is a reference to a register that does not exist.
type ErrRegister byte

func (er ErrRegister) Error() string {
	return f("register R%d invalid", byte(er))
}

func (er ErrRegister) Is(err error) bool {
	return err == ErrRegisterInvalid
}

// ErrOpcode is an instruction the CPU could not decode.
type ErrOpcode Code

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%02x %v", byte(eo.Op), Code(eo).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	if err == ErrOpcodeUnknown {
		return !eo.Op.Known()
	}
	_, ok = err.(ErrOpcode)
	return
}

// ErrAluOp is an operation the ALU does not implement.
type ErrAluOp Op

func (ea ErrAluOp) Error() string {
	return f("unsupported alu operation %v", Op(ea).String())
}

func (ea ErrAluOp) Is(err error) bool {
	return err == ErrAluUnsupported
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseRegister string

func (err ErrParseRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrMacro struct {
	Macro string
	Line  int
	Err   error
}

func (err ErrMacro) Error() string {
	return f("macro %v line %v %v", err.Macro, err.Line, err.Err.Error())
}

func (err ErrMacro) Unwrap() error {
	return err.Err
}
