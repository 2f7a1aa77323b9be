package vm

// Memory capacity and special addresses.
const (
	MemoryCapacity = 0x10000
	PortAddress    = 0xff01 // Memory-mapped diagnostic output port.
)

// Memory defines the machine's memory bank. Words are stored big-endian,
// high byte at the lower address. Addresses are uint16 so all address
// arithmetic wraps at 16 bits.
type Memory []byte

// SetU8 sets the byte at the given address.
func (m Memory) SetU8(addr uint16, value byte) {
	m[addr] = value
}

// U8 returns the byte at the given address.
func (m Memory) U8(addr uint16) byte {
	return m[addr]
}

// SetU16 sets the 16-bit word at the given address.
func (m Memory) SetU16(addr, value uint16) {
	m[addr] = byte(value >> 8)
	m[addr+1] = byte(value)
}

// U16 returns the 16-bit word at the given address.
func (m Memory) U16(addr uint16) uint16 {
	return uint16(m[addr])<<8 | uint16(m[addr+1])
}
