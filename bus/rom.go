package bus

import "fmt"

// ROM is a read-only memory region. Writes are rejected rather than
// silently dropped, so a guest program that mistakenly writes into ROM
// fails loudly during development instead of passing unnoticed.
type ROM struct {
	mem []byte
}

// NewROM wraps an image as a read-only region. The slice is used
// directly, not copied.
func NewROM(image []byte) *ROM {
	return &ROM{mem: image}
}

func (r *ROM) Read8(addr uint32) uint8 {
	return r.mem[int(addr)%len(r.mem)]
}

func (r *ROM) Read16(addr uint32) uint16 {
	i := int(addr) % len(r.mem)
	lo := uint16(r.mem[i])
	hi := uint16(r.mem[(i+1)%len(r.mem)])
	return lo | hi<<8
}

func (r *ROM) Read32(addr uint32) uint32 {
	i := int(addr) % len(r.mem)
	var v uint32
	for shift := 0; shift < 32; shift += 8 {
		v |= uint32(r.mem[i%len(r.mem)]) << shift
		i++
	}
	return v
}

func (r *ROM) Write8(addr uint32, v uint8) {
	panic(fmt.Sprintf("bus: write to ROM at %#08x", addr))
}

func (r *ROM) Write16(addr uint32, v uint16) {
	panic(fmt.Sprintf("bus: write to ROM at %#08x", addr))
}

func (r *ROM) Write32(addr uint32, v uint32) {
	panic(fmt.Sprintf("bus: write to ROM at %#08x", addr))
}

// Len returns the region's size in bytes.
func (r *ROM) Len() int { return len(r.mem) }
