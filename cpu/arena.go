package cpu

// Memory map of the default 256 byte RAM.
const (
	RAM_SIZE      = 0x100 // Default RAM size.
	ARENA_PROGRAM = 0x00  // Programs load at, and execute from, address 0.
	ARENA_STACK   = 0xf4  // Initial stack pointer. The stack grows down.
	ARENA_KEY     = 0xf4  // Reserved for the keyboard buffer (not modeled).
	ARENA_VECTOR  = 0xf8  // Reserved for interrupt vectors (not modeled).
)

// Registers with special purposes.
const (
	REG_IM = 5 // Reserved for the interrupt mask (not modeled).
	REG_IS = 6 // Reserved for the interrupt status (not modeled).
	REG_SP = 7 // Stack pointer.

	REG_COUNT = 8
	SP_INIT   = ARENA_STACK
)
