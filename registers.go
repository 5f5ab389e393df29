package sh2

// Package-level register indices. Indices 0-15 are R0-R15 (R15 doubles
// as the stack pointer); 16-22 are the seven special registers. The
// layout matches the flat 23-word architectural register file described
// by the SH-2 programming model.
const (
	RegSR = 16 + iota
	RegGBR
	RegVBR
	RegMACH
	RegMACL
	RegPR
	RegPC
)

// RegSP is the assembler-level alias for R15; it is not a distinct slot.
const RegSP = 15

// Status register bit positions.
const (
	srT uint32 = 1 << 0 // T: test/condition bit
	srS uint32 = 1 << 1 // S: used by MAC saturation mode (unused here)
	srI uint32 = 0xF << 4
	srQ uint32 = 1 << 8
	srM uint32 = 1 << 9
)

// srMask covers every architecturally defined SR bit. Bits outside this
// mask always read as zero and are stripped from any value written to
// SR via RTE or LDC.
const srMask uint32 = srT | srS | srI | srQ | srM

// Registers holds the 23 architectural registers of the SH-2 core.
type Registers struct {
	R    [16]uint32
	SR   uint32
	GBR  uint32
	VBR  uint32
	MACH uint32
	MACL uint32
	PR   uint32
	PC   uint32
}

// Get reads a register by its flat index (0-22).
func (r *Registers) Get(idx int) uint32 {
	switch {
	case idx >= 0 && idx < 16:
		return r.R[idx]
	case idx == RegSR:
		return r.SR
	case idx == RegGBR:
		return r.GBR
	case idx == RegVBR:
		return r.VBR
	case idx == RegMACH:
		return r.MACH
	case idx == RegMACL:
		return r.MACL
	case idx == RegPR:
		return r.PR
	case idx == RegPC:
		return r.PC
	}
	return 0
}

// Set writes a register by its flat index (0-22). Writes to SR are
// masked to the defined bits.
func (r *Registers) Set(idx int, v uint32) {
	switch {
	case idx >= 0 && idx < 16:
		r.R[idx] = v
	case idx == RegSR:
		r.SR = v & srMask
	case idx == RegGBR:
		r.GBR = v
	case idx == RegVBR:
		r.VBR = v
	case idx == RegMACH:
		r.MACH = v
	case idx == RegMACL:
		r.MACL = v
	case idx == RegPR:
		r.PR = v
	case idx == RegPC:
		r.PC = v
	}
}

// T returns the T bit.
func (r *Registers) T() bool { return r.SR&srT != 0 }

// SetT sets or clears the T bit.
func (r *Registers) SetT(v bool) {
	if v {
		r.SR |= srT
	} else {
		r.SR &^= srT
	}
}

// M returns the M bit (DIV0S/DIV1 divisor sign).
func (r *Registers) M() bool { return r.SR&srM != 0 }

// SetM sets or clears the M bit.
func (r *Registers) SetM(v bool) {
	if v {
		r.SR |= srM
	} else {
		r.SR &^= srM
	}
}

// Q returns the Q bit (DIV0S/DIV1 dividend sign / running quotient).
func (r *Registers) Q() bool { return r.SR&srQ != 0 }

// SetQ sets or clears the Q bit.
func (r *Registers) SetQ(v bool) {
	if v {
		r.SR |= srQ
	} else {
		r.SR &^= srQ
	}
}

// IMask returns the 4-bit interrupt mask field I[3:0].
func (r *Registers) IMask() uint32 { return (r.SR & srI) >> 4 }

// SetIMask sets the 4-bit interrupt mask field I[3:0].
func (r *Registers) SetIMask(level uint32) {
	r.SR = (r.SR &^ srI) | ((level << 4) & srI)
}
