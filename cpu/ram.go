package cpu

// Ram is the byte addressable memory of the machine.
// A stored zero is a value like any other.
type Ram struct {
	Data []byte
}

// NewRam creates a RAM of a fixed size.
func NewRam(size uint) (ram *Ram) {
	ram = &Ram{
		Data: make([]byte, size),
	}

	return
}

// Size returns the number of addressable bytes.
func (ram *Ram) Size() int {
	return len(ram.Data)
}

// Valid is true if the address is inside the RAM.
func (ram *Ram) Valid(address int) bool {
	return address >= 0 && address < len(ram.Data)
}

// Read a byte from the RAM.
func (ram *Ram) Read(address int) (value byte, err error) {
	if !ram.Valid(address) {
		err = ErrAddress(address)
		return
	}

	value = ram.Data[address]
	return
}

// Write a byte to the RAM.
func (ram *Ram) Write(address int, value byte) (err error) {
	if !ram.Valid(address) {
		err = ErrAddress(address)
		return
	}

	ram.Data[address] = value
	return
}

// Load copies an image into the RAM, starting at ARENA_PROGRAM.
func (ram *Ram) Load(image []byte) (err error) {
	if len(image) > len(ram.Data)-ARENA_PROGRAM {
		err = ErrAddress(len(ram.Data))
		return
	}

	copy(ram.Data[ARENA_PROGRAM:], image)
	return
}

// Reset zeros the RAM.
func (ram *Ram) Reset() {
	clear(ram.Data)
}
