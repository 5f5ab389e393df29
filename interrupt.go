package sh2

// arbitrateIRQ implements the IRQ arbitration rule (spec.md §4.4): scan
// pending IRQ bits from 7 down to 0 and accept the first asserted bit
// strictly above the current SR interrupt mask. On acceptance, clear
// that bit, push SR then PC, raise SR.I to the accepted level, and jump
// to VBR + 0x100 + line*4 (spec.md §9 resolves the vector base this way).
func (c *CPU) arbitrateIRQ() {
	if c.irqPending == 0 {
		return
	}

	mask := c.reg.IMask()
	for line := 7; line >= 0; line-- {
		bit := uint8(1) << uint(line)
		if c.irqPending&bit == 0 {
			continue
		}
		if uint32(line) <= mask {
			return
		}
		c.irqPending &^= bit
		c.enterException(vecIRQBase+uint32(line)*4, c.reg.PC)
		c.reg.SetIMask(uint32(line))
		return
	}
}
