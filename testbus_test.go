package sh2

// testBus is a flat 1MB byte-array bus used by every test in this
// package. Addresses wrap modulo the backing array, matching the
// concrete bus.RAM helper's wraparound semantics.
type testBus struct {
	mem [1024 * 1024]byte
}

func (b *testBus) Read8(addr uint32) uint8 {
	return b.mem[int(addr)%len(b.mem)]
}

func (b *testBus) Read16(addr uint32) uint16 {
	i := int(addr) % len(b.mem)
	return uint16(b.mem[i]) | uint16(b.mem[(i+1)%len(b.mem)])<<8
}

func (b *testBus) Read32(addr uint32) uint32 {
	i := int(addr) % len(b.mem)
	var v uint32
	for shift := 0; shift < 32; shift += 8 {
		v |= uint32(b.mem[i%len(b.mem)]) << shift
		i++
	}
	return v
}

func (b *testBus) Write8(addr uint32, v uint8) {
	b.mem[int(addr)%len(b.mem)] = v
}

func (b *testBus) Write16(addr uint32, v uint16) {
	i := int(addr) % len(b.mem)
	b.mem[i] = uint8(v)
	b.mem[(i+1)%len(b.mem)] = uint8(v >> 8)
}

func (b *testBus) Write32(addr uint32, v uint32) {
	i := int(addr) % len(b.mem)
	for shift := 0; shift < 32; shift += 8 {
		b.mem[i%len(b.mem)] = uint8(v >> shift)
		i++
	}
}

// newTestCPU builds a CPU over a fresh testBus, already powered on with
// PC at 0x1000 and SP at 0x100000, without depending on the vector-load
// behavior under test elsewhere.
func newTestCPU() (*CPU, *testBus) {
	bus := &testBus{}
	cpu, err := New(bus)
	if err != nil {
		panic(err)
	}
	cpu.reg.PC = 0x1000
	cpu.reg.R[RegSP] = 0x100000
	cpu.state = StateProgramExecution
	return cpu, bus
}
