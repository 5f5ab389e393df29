package bus

import "testing"

func TestRAMReadWriteLittleEndian(t *testing.T) {
	ram := NewRAM(16)
	ram.Write32(0, 0x01020304)

	if got := ram.Read8(0); got != 0x04 {
		t.Errorf("byte 0 = %#x, want 0x04 (little-endian low byte first)", got)
	}
	if got := ram.Read8(3); got != 0x01 {
		t.Errorf("byte 3 = %#x, want 0x01", got)
	}
	if got := ram.Read32(0); got != 0x01020304 {
		t.Errorf("Read32 = %#x, want 0x01020304", got)
	}
}

func TestRAMWraps(t *testing.T) {
	ram := NewRAM(4)
	ram.Write8(5, 0x42) // wraps to index 1
	if got := ram.Read8(1); got != 0x42 {
		t.Errorf("byte 1 = %#x, want 0x42", got)
	}
}

func TestRAMLoad(t *testing.T) {
	ram := NewRAM(4)
	ram.Load([]byte{0xAA, 0xBB})
	if ram.Bytes()[0] != 0xAA || ram.Bytes()[1] != 0xBB {
		t.Errorf("Bytes() = %v, want [AA BB 00 00]", ram.Bytes())
	}
}
