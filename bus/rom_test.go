package bus

import "testing"

func TestROMRead(t *testing.T) {
	rom := NewROM([]byte{0x01, 0x02, 0x03, 0x04})
	if got := rom.Read32(0); got != 0x04030201 {
		t.Errorf("Read32 = %#x, want 0x04030201", got)
	}
}

func TestROMWritePanics(t *testing.T) {
	rom := NewROM([]byte{0, 0, 0, 0})
	defer func() {
		if recover() == nil {
			t.Error("Write8 on ROM: want panic, got none")
		}
	}()
	rom.Write8(0, 1)
}
