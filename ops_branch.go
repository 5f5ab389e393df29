package sh2

func init() {
	registerBRA()
	registerBSR()
	registerBRAF()
	registerBSRF()
	registerBF()
	registerBT()
	registerBFS()
	registerBTS()
	registerJMP()
	registerJSR()
	registerRTS()
	registerRTE()
}

// Delayed branches compute their target using the already-advanced
// c.reg.PC (fetchAndExecute sets it to instrPC+2 before dispatch, which
// is exactly the "PC" the displacement formulas below are relative to),
// then park it in delayTarget instead of jumping immediately: the
// instruction physically following the branch (the delay slot) still
// executes first, and fetchAndExecute picks up delayTarget on the next
// cycle. Every delayed branch must refuse to execute from inside another
// delay slot (invariant 3), hence the checkDelaySlot guard up front.

// --- BRA disp12 ---

func registerBRA() {
	for d := uint16(0); d < 0x1000; d++ {
		opcodeTable[0xA000|d] = opBRA
	}
}

func opBRA(c *CPU, op uint16) {
	if c.checkDelaySlot() {
		return
	}
	disp := int32(signExtend(fieldDisp12(op), 12))
	c.delayTarget = uint32(int32(c.reg.PC) + 2 + disp*2)
}

// --- BSR disp12 ---

func registerBSR() {
	for d := uint16(0); d < 0x1000; d++ {
		opcodeTable[0xB000|d] = opBSR
	}
}

func opBSR(c *CPU, op uint16) {
	if c.checkDelaySlot() {
		return
	}
	disp := int32(signExtend(fieldDisp12(op), 12))
	c.reg.PR = c.reg.PC + 2
	c.delayTarget = uint32(int32(c.reg.PC) + 2 + disp*2)
}

// --- BRAF Rn ---

func registerBRAF() {
	for n := 0; n < 16; n++ {
		opcodeTable[0x0023|uint16(n)<<8] = opBRAF
	}
}

func opBRAF(c *CPU, op uint16) {
	if c.checkDelaySlot() {
		return
	}
	c.delayTarget = c.reg.PC + 2 + c.reg.R[fieldN(op)]
}

// --- BSRF Rn ---

func registerBSRF() {
	for n := 0; n < 16; n++ {
		opcodeTable[0x0003|uint16(n)<<8] = opBSRF
	}
}

func opBSRF(c *CPU, op uint16) {
	if c.checkDelaySlot() {
		return
	}
	target := c.reg.PC + 2 + c.reg.R[fieldN(op)]
	c.reg.PR = c.reg.PC + 2
	c.delayTarget = target
}

// --- BF/BT disp8 (not delayed: taken branches jump immediately) ---

func registerBF() {
	for d := uint16(0); d < 256; d++ {
		opcodeTable[0x8B00|d] = opBF
	}
}

func opBF(c *CPU, op uint16) {
	if c.checkDelaySlot() {
		return
	}
	if c.reg.T() {
		return
	}
	disp := int32(signExtend(fieldImm8(op), 8))
	c.reg.PC = uint32(int32(c.reg.PC) + 2 + disp*2)
}

func registerBT() {
	for d := uint16(0); d < 256; d++ {
		opcodeTable[0x8900|d] = opBT
	}
}

func opBT(c *CPU, op uint16) {
	if c.checkDelaySlot() {
		return
	}
	if !c.reg.T() {
		return
	}
	disp := int32(signExtend(fieldImm8(op), 8))
	c.reg.PC = uint32(int32(c.reg.PC) + 2 + disp*2)
}

// --- BF/S, BT/S disp8 (delayed: taken branches execute one more delay
// slot instruction before jumping; not-taken falls through normally) ---

func registerBFS() {
	for d := uint16(0); d < 256; d++ {
		opcodeTable[0x8F00|d] = opBFS
	}
}

func opBFS(c *CPU, op uint16) {
	if c.checkDelaySlot() {
		return
	}
	if c.reg.T() {
		return
	}
	disp := int32(signExtend(fieldImm8(op), 8))
	c.delayTarget = uint32(int32(c.reg.PC) + 2 + disp*2)
}

func registerBTS() {
	for d := uint16(0); d < 256; d++ {
		opcodeTable[0x8D00|d] = opBTS
	}
}

func opBTS(c *CPU, op uint16) {
	if c.checkDelaySlot() {
		return
	}
	if !c.reg.T() {
		return
	}
	disp := int32(signExtend(fieldImm8(op), 8))
	c.delayTarget = uint32(int32(c.reg.PC) + 2 + disp*2)
}

// --- JMP @Rn ---

func registerJMP() {
	for n := 0; n < 16; n++ {
		opcodeTable[0x402B|uint16(n)<<8] = opJMP
	}
}

func opJMP(c *CPU, op uint16) {
	if c.checkDelaySlot() {
		return
	}
	c.delayTarget = c.reg.R[fieldN(op)]
}

// --- JSR @Rn ---

func registerJSR() {
	for n := 0; n < 16; n++ {
		opcodeTable[0x400B|uint16(n)<<8] = opJSR
	}
}

func opJSR(c *CPU, op uint16) {
	if c.checkDelaySlot() {
		return
	}
	target := c.reg.R[fieldN(op)]
	c.reg.PR = c.reg.PC + 2
	c.delayTarget = target
}

// --- RTS ---

func registerRTS() {
	opcodeTable[0x000B] = opRTS
}

func opRTS(c *CPU, op uint16) {
	if c.checkDelaySlot() {
		return
	}
	c.delayTarget = c.reg.PR
}

// --- RTE ---

func registerRTE() {
	opcodeTable[0x002B] = opRTE
}

// opRTE pops PC then SR (the stack holds SR pushed before PC, so PC is
// on top), parks the popped PC as a delayed branch target, and returns
// the CPU to ProgramExecution state immediately even though the jump
// itself is deferred to the delay slot like any other delayed branch.
func opRTE(c *CPU, op uint16) {
	if c.checkDelaySlot() {
		return
	}
	poppedPC := c.pop32()
	poppedSR := c.pop32()
	c.reg.Set(RegSR, poppedSR)
	c.delayTarget = poppedPC
	c.state = StateProgramExecution
}
