package bus

import "testing"

func TestRouterDispatchesToMappedRegion(t *testing.T) {
	r := NewRouter()
	rom := NewROM([]byte{0xAA, 0xBB, 0xCC, 0xDD})
	ram := NewRAM(16)
	r.Map(0, 4, rom)
	r.Map(0x1000, 16, ram)

	if got := r.Read32(0); got != 0xDDCCBBAA {
		t.Errorf("Read32(0) = %#x, want 0xDDCCBBAA", got)
	}

	r.Write32(0x1000, 0x12345678)
	if got := r.Read32(0x1000); got != 0x12345678 {
		t.Errorf("Read32(0x1000) = %#x, want 0x12345678", got)
	}
}

func TestRouterUnmappedAccessPanics(t *testing.T) {
	r := NewRouter()
	r.Map(0, 4, NewRAM(4))

	defer func() {
		if recover() == nil {
			t.Error("Read8 at unmapped address: want panic, got none")
		}
	}()
	r.Read8(0x9000)
}

func TestRouterMapOrderIndependent(t *testing.T) {
	r := NewRouter()
	ramHigh := NewRAM(16)
	ramLow := NewRAM(16)
	r.Map(0x2000, 16, ramHigh)
	r.Map(0x1000, 16, ramLow)

	r.Write8(0x1000, 0x11)
	r.Write8(0x2000, 0x22)

	if got := r.Read8(0x1000); got != 0x11 {
		t.Errorf("Read8(0x1000) = %#x, want 0x11", got)
	}
	if got := r.Read8(0x2000); got != 0x22 {
		t.Errorf("Read8(0x2000) = %#x, want 0x22", got)
	}
}
