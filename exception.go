package sh2

// Exception vector offsets, added to VBR to find the handler address
// (spec.md §6 vector table). TRAPA and IRQ add a further imm/line-scaled
// offset on top of their base.
const (
	vecIllegalInstruction = 0x10
	vecIllegalSlot        = 0x18
	vecNMI                = 0x2C
	vecTRAPABase          = 0x80
	vecIRQBase            = 0x100
)

// enterException pushes SR then pushPC (spec.md §4.5: SR first, then
// PC), and jumps PC to VBR+vbrOffset. The CPU enters
// ExceptionProcessing; it returns to ProgramExecution only when RTE
// executes.
func (c *CPU) enterException(vbrOffset uint32, pushPC uint32) {
	c.push32(c.reg.SR)
	c.push32(pushPC)
	c.reg.PC = c.reg.VBR + vbrOffset
	c.state = StateExceptionProcessing
}

// raiseIllegalInstruction enters the illegal-instruction exception,
// pushing the address of the faulting instruction (spec.md §4.4).
func (c *CPU) raiseIllegalInstruction() {
	c.enterException(vecIllegalInstruction, c.instrPC)
}

// raiseIllegalSlot enters the illegal-slot-instruction exception. Called
// by branch executors when currentDelayTarget is non-zero (invariant 3,
// spec.md §3): a branch in a delay slot faults, pushing the address that
// would have become PC (the outer branch's target).
func (c *CPU) raiseIllegalSlot() {
	c.Logger.Printf("sh2: illegal slot instruction at %#08x", c.instrPC)
	c.enterException(vecIllegalSlot, c.currentDelayTarget)
}

// checkDelaySlot raises the illegal-slot exception and returns true if
// the instruction currently executing is itself in a delay slot. Every
// branch executor must call this first (spec.md invariant 3 /
// "CHECK_DELAY_SLOT_PC").
func (c *CPU) checkDelaySlot() bool {
	if c.currentDelayTarget != 0 {
		c.raiseIllegalSlot()
		return true
	}
	return false
}

// raiseTRAPA enters the TRAPA exception for the given 8-bit immediate,
// pushing the address of the instruction following TRAPA.
func (c *CPU) raiseTRAPA(imm uint8) {
	c.enterException(vecTRAPABase+uint32(imm)*4, c.reg.PC)
}
