package sh2

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// saveStateVersion is bumped whenever the encoded layout changes, so
// Deserialize can reject snapshots from an incompatible build instead of
// silently misreading them.
const saveStateVersion = 1

// saveStateSize is the fixed size of a serialized snapshot: 1 version
// byte + 23 registers * 4 bytes + state byte + delayTarget + irqPending.
const saveStateSize = 1 + 23*4 + 1 + 4 + 1

// ErrBadSaveStateVersion is returned by Deserialize when the version
// byte does not match saveStateVersion.
var ErrBadSaveStateVersion = errors.New("sh2: unsupported save state version")

// ErrShortSaveState is returned by Deserialize when the input is smaller
// than a full snapshot.
var ErrShortSaveState = errors.New("sh2: save state truncated")

// Serialize encodes the full programmer-visible CPU state (registers,
// sequencer state, and in-flight delayed-branch target) as a fixed-size
// big-endian buffer. The bus is not part of the snapshot; callers
// snapshot memory separately.
func (c *CPU) Serialize() []byte {
	buf := make([]byte, saveStateSize)
	buf[0] = saveStateVersion
	off := 1
	for i := 0; i < 16; i++ {
		binary.BigEndian.PutUint32(buf[off:], c.reg.R[i])
		off += 4
	}
	binary.BigEndian.PutUint32(buf[off:], c.reg.SR)
	off += 4
	binary.BigEndian.PutUint32(buf[off:], c.reg.GBR)
	off += 4
	binary.BigEndian.PutUint32(buf[off:], c.reg.VBR)
	off += 4
	binary.BigEndian.PutUint32(buf[off:], c.reg.MACH)
	off += 4
	binary.BigEndian.PutUint32(buf[off:], c.reg.MACL)
	off += 4
	binary.BigEndian.PutUint32(buf[off:], c.reg.PR)
	off += 4
	binary.BigEndian.PutUint32(buf[off:], c.reg.PC)
	off += 4
	buf[off] = uint8(c.state)
	off++
	binary.BigEndian.PutUint32(buf[off:], c.delayTarget)
	off += 4
	buf[off] = c.irqPending
	return buf
}

// Deserialize restores CPU state previously produced by Serialize. The
// bus is left untouched; callers must restore memory contents
// themselves before resuming execution.
func (c *CPU) Deserialize(buf []byte) error {
	if len(buf) < saveStateSize {
		return fmt.Errorf("%w: need %d bytes, got %d", ErrShortSaveState, saveStateSize, len(buf))
	}
	if buf[0] != saveStateVersion {
		return fmt.Errorf("%w: got %d, want %d", ErrBadSaveStateVersion, buf[0], saveStateVersion)
	}
	off := 1
	var r Registers
	for i := 0; i < 16; i++ {
		r.R[i] = binary.BigEndian.Uint32(buf[off:])
		off += 4
	}
	r.SR = binary.BigEndian.Uint32(buf[off:]) & srMask
	off += 4
	r.GBR = binary.BigEndian.Uint32(buf[off:])
	off += 4
	r.VBR = binary.BigEndian.Uint32(buf[off:])
	off += 4
	r.MACH = binary.BigEndian.Uint32(buf[off:])
	off += 4
	r.MACL = binary.BigEndian.Uint32(buf[off:])
	off += 4
	r.PR = binary.BigEndian.Uint32(buf[off:])
	off += 4
	r.PC = binary.BigEndian.Uint32(buf[off:])
	off += 4
	c.reg = r
	c.state = CPUState(buf[off])
	off++
	c.delayTarget = binary.BigEndian.Uint32(buf[off:])
	off += 4
	c.currentDelayTarget = 0
	c.irqPending = buf[off]
	return nil
}
