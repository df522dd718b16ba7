package cpu

// Flags holds the result of the last CMP, as `00000LGE`.
type Flags byte

const (
	FLAG_E = Flags(1 << 0) // Equal
	FLAG_G = Flags(1 << 1) // Greater than
	FLAG_L = Flags(1 << 2) // Less than

	FLAG_MASK = FLAG_E | FLAG_G | FLAG_L
)

// Compare returns the flags for unsigned a compared to b.
func Compare(a, b byte) Flags {
	switch {
	case a < b:
		return FLAG_L
	case a > b:
		return FLAG_G
	default:
		return FLAG_E
	}
}

func (fl Flags) Equal() bool {
	return (fl & FLAG_E) != 0
}

func (fl Flags) Greater() bool {
	return (fl & FLAG_G) != 0
}

func (fl Flags) Less() bool {
	return (fl & FLAG_L) != 0
}

// String returns the flags as "LGE", with '-' for clear bits.
func (fl Flags) String() string {
	out := []byte("---")
	if fl.Less() {
		out[0] = 'L'
	}
	if fl.Greater() {
		out[1] = 'G'
	}
	if fl.Equal() {
		out[2] = 'E'
	}
	return string(out)
}
