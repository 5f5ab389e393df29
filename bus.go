package sh2

// Bus is the memory bus the CPU reads instructions and operands from.
// Addresses are full 32-bit; multi-byte accesses are little-endian and
// compose bytes in ascending address order, with the lowest address
// holding the least-significant byte. The CPU assumes the bus never
// fails: address-error exceptions are not modeled by the core (see
// sh2/bus for concrete implementations and their own error handling).
type Bus interface {
	Read8(addr uint32) uint8
	Read16(addr uint32) uint16
	Read32(addr uint32) uint32
	Write8(addr uint32, v uint8)
	Write16(addr uint32, v uint16)
	Write32(addr uint32, v uint32)
}
