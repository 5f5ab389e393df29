package sh2

import (
	"reflect"
	"testing"
)

// TestOpcodeTableNoOverlap spot-checks that distinguishing opcode
// groups land on distinct table entries, guarding against the kind of
// bit-field arithmetic mistake that would silently overwrite one
// instruction's handler with another's during init().
func TestOpcodeTableNoOverlap(t *testing.T) {
	samples := []struct {
		name string
		op   uint16
		want opFunc
	}{
		{"MOV Rm,Rn", 0x6003, opMOVReg},
		{"MOV #imm,Rn", 0xE000, opMOVImm},
		{"ADD Rm,Rn", 0x300C, opADD},
		{"SUB Rm,Rn", 0x3008, opSUB},
		{"AND Rm,Rn", 0x2009, opAND},
		{"SHLL Rn", 0x4000, opSHLL},
		{"BRA", 0xA000, opBRA},
		{"NOP", 0x0009, opNOP},
		{"RTS", 0x000B, opRTS},
		{"TAS.B @Rn", 0x401B, opTAS},
	}
	for _, s := range samples {
		got := opcodeTable[s.op]
		if got == nil {
			t.Errorf("%s (%#04x): no handler registered", s.name, s.op)
			continue
		}
		if reflect.ValueOf(got).Pointer() != reflect.ValueOf(s.want).Pointer() {
			t.Errorf("%s (%#04x): entry holds another instruction's handler", s.name, s.op)
		}
	}
}

// TestIllegalOpcodeIsNil checks that an encoding no register* function
// ever assigns stays unhandled, so fetchAndExecute's nil check is
// exercised rather than silently falling through to some instruction.
func TestIllegalOpcodeIsNil(t *testing.T) {
	if opcodeTable[0xFFFF] != nil {
		t.Error("opcode 0xFFFF: want no handler, got one")
	}
}

// TestSignExtend checks the shared sign-extension helper across bit
// widths used by the decoder.
func TestSignExtend(t *testing.T) {
	cases := []struct {
		v    uint32
		bits uint
		want int32
	}{
		{0x7F, 8, 127},
		{0x80, 8, -128},
		{0xFF, 8, -1},
		{0x7FFF, 16, 32767},
		{0x8000, 16, -32768},
		{0xFFF, 12, -1},
		{0x800, 12, -2048},
	}
	for _, c := range cases {
		got := signExtend(c.v, c.bits)
		if got != c.want {
			t.Errorf("signExtend(%#x, %d) = %d, want %d", c.v, c.bits, got, c.want)
		}
	}
}
