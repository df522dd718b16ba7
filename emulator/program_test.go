package emulator_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/emulator"
)

var _ = Describe("Emulator", func() {
	var (
		emu    *emulator.Emulator
		output *bytes.Buffer
	)

	assemble := func(lines ...string) {
		asm := &cpu.Assembler{}
		prog, err := asm.Parse(strings.NewReader(strings.Join(lines, "\n")))
		Expect(err).NotTo(HaveOccurred())

		emu.Program = prog
		Expect(emu.Reset()).To(Succeed())
	}

	BeforeEach(func() {
		emu = emulator.NewEmulator()
		output = &bytes.Buffer{}
		emu.Output = output
	})

	Context("Arithmetic", func() {
		It("should multiply two registers", func() {
			assemble(
				"LDI R0,8",
				"LDI R1,9",
				"MUL R0,R1",
				"PRN R0",
				"HLT",
			)
			Expect(emu.Run()).To(Succeed())
			Expect(output.String()).To(Equal("72\n"))
		})

		It("should wrap results at eight bits", func() {
			assemble(
				"LDI R0,255",
				"INC R0",
				"PRN R0",
				"LDI R1,0",
				"DEC R1",
				"PRN R1",
				"LDI R2,16",
				"LDI R3,16",
				"MUL R2,R3",
				"PRN R2",
				"LDI R4,3",
				"LDI R5,5",
				"SUB R4,R5",
				"PRN R4",
				"HLT",
			)
			Expect(emu.Run()).To(Succeed())
			Expect(output.String()).To(Equal("0\n255\n0\n254\n"))
		})

		It("should fault on division by zero", func() {
			assemble(
				"LDI R0,10",
				"LDI R1,0",
				"DIV R0,R1",
				"PRN R0",
				"HLT",
			)
			err := emu.Run()
			Expect(err).To(MatchError(cpu.ErrDivisionByZero))

			var rerr *emulator.ErrRuntime
			Expect(errors.As(err, &rerr)).To(BeTrue())
			Expect(rerr.LineNo).To(Equal(3))
			Expect(emu.Cpu.Register[0]).To(Equal(byte(10)))
			Expect(output.String()).To(BeEmpty())
		})
	})

	Context("Stack", func() {
		It("should restore a pushed value", func() {
			assemble(
				"LDI R0,5",
				"PUSH R0",
				"LDI R0,0",
				"POP R0",
				"PRN R0",
				"HLT",
			)
			Expect(emu.Run()).To(Succeed())
			Expect(output.String()).To(Equal("5\n"))
			Expect(emu.Cpu.Register[cpu.REG_SP]).To(Equal(byte(cpu.SP_INIT)))
		})

		It("should return to the instruction after the call", func() {
			assemble(
				"        LDI R1,Sub",
				"        CALL R1",
				"        PRN R0",
				"        HLT",
				"Sub:    LDI R0,42",
				"        RET",
			)

			for range 2 {
				done, err := emu.Tick()
				Expect(err).NotTo(HaveOccurred())
				Expect(done).To(BeFalse())
			}
			Expect(emu.Pc()).To(Equal(8))
			Expect(emu.Cpu.Depth()).To(Equal(1))
			Expect(emu.Cpu.Peek()).To(Equal(byte(5)))

			Expect(emu.Run()).To(Succeed())
			Expect(output.String()).To(Equal("42\n"))
			Expect(emu.Cpu.Depth()).To(Equal(0))
		})
	})

	Context("Branches", func() {
		It("should jump over skipped code", func() {
			assemble(
				"        LDI R0,Target",
				"        JMP R0",
				"        LDI R1,1",
				"        PRN R1",
				"Target: LDI R1,2",
				"        PRN R1",
				"        HLT",
			)
			Expect(emu.Run()).To(Succeed())
			Expect(output.String()).To(Equal("2\n"))
		})

		DescribeTable("conditional jumps",
			func(a int, b int, jump string, taken bool) {
				assemble(
					fmt.Sprintf("        LDI R0,%d", a),
					fmt.Sprintf("        LDI R1,%d", b),
					"        LDI R2,Taken",
					"        CMP R0,R1",
					fmt.Sprintf("        %s R2", jump),
					"        LDI R3,1",
					"        PRN R3",
					"        HLT",
					"Taken:  LDI R3,2",
					"        PRN R3",
					"        HLT",
				)
				Expect(emu.Run()).To(Succeed())
				if taken {
					Expect(output.String()).To(Equal("2\n"))
				} else {
					Expect(output.String()).To(Equal("1\n"))
				}
			},
			Entry("JEQ when equal", 3, 3, "JEQ", true),
			Entry("JEQ when different", 3, 4, "JEQ", false),
			Entry("JNE when different", 3, 4, "JNE", true),
			Entry("JNE when equal", 3, 3, "JNE", false),
			Entry("JGT when greater", 4, 3, "JGT", true),
			Entry("JGT when equal", 3, 3, "JGT", false),
			Entry("JLT when less", 2, 3, "JLT", true),
			Entry("JLT when greater", 4, 3, "JLT", false),
			Entry("JLE when equal", 3, 3, "JLE", true),
			Entry("JLE when greater", 4, 3, "JLE", false),
			Entry("JGE when greater", 4, 3, "JGE", true),
			Entry("JGE when less", 2, 3, "JGE", false),
			Entry("compares unsigned", 200, 100, "JGT", true),
		)
	})

	Context("Program end", func() {
		It("should stop without error at the end of memory", func() {
			emu.LoadImage([]byte{0x82, 0x00, 0x07, 0x47, 0x00})
			Expect(emu.Reset()).To(Succeed())

			Expect(emu.Run()).To(Succeed())
			Expect(output.String()).To(Equal("7\n"))
			Expect(emu.Pc()).To(Equal(emulator.RAM_SIZE))
			Expect(emu.Ticks()).To(Equal(2 + emulator.RAM_SIZE - 5))
			Expect(emu.Cpu.Halted()).To(BeFalse())
		})

		It("should stay halted", func() {
			assemble("HLT", "LDI R0,1", "PRN R0")
			Expect(emu.Run()).To(Succeed())

			done, err := emu.Tick()
			Expect(err).NotTo(HaveOccurred())
			Expect(done).To(BeTrue())
			Expect(output.String()).To(BeEmpty())
		})

		It("should fault on an unknown opcode", func() {
			emu.LoadImage([]byte{0x52, 0x00})
			Expect(emu.Reset()).To(Succeed())

			Expect(emu.Run()).To(MatchError(cpu.ErrOpcodeUnknown))
		})
	})
})
