package sh2

func init() {
	registerNOP()
	registerSLEEP()
	registerCLRT()
	registerSETT()
	registerCLRMAC()
	registerTRAPA()
	registerTAS()
	registerSTC()
	registerSTS()
	registerLDC()
	registerLDS()
	registerSTCL()
	registerSTSL()
	registerLDCL()
	registerLDSL()
}

// --- NOP, SLEEP, CLRT, SETT, CLRMAC ---

func registerNOP()    { opcodeTable[0x0009] = opNOP }
func registerSLEEP()  { opcodeTable[0x001B] = opSLEEP }
func registerCLRT()   { opcodeTable[0x0008] = opCLRT }
func registerSETT()   { opcodeTable[0x0018] = opSETT }
func registerCLRMAC() { opcodeTable[0x0028] = opCLRMAC }

func opNOP(c *CPU, op uint16) {}

func opSLEEP(c *CPU, op uint16) { c.state = StateSleep }

func opCLRT(c *CPU, op uint16) { c.reg.SetT(false) }

func opSETT(c *CPU, op uint16) { c.reg.SetT(true) }

func opCLRMAC(c *CPU, op uint16) {
	c.reg.MACH = 0
	c.reg.MACL = 0
}

// --- TRAPA #imm ---

func registerTRAPA() {
	for imm := uint16(0); imm < 256; imm++ {
		opcodeTable[0xC300|imm] = opTRAPA
	}
}

func opTRAPA(c *CPU, op uint16) {
	c.raiseTRAPA(uint8(fieldImm8(op)))
}

// --- TAS.B @Rn ---

func registerTAS() {
	for n := 0; n < 16; n++ {
		opcodeTable[0x401B|uint16(n)<<8] = opTAS
	}
}

// opTAS reads the byte at @Rn, sets T if it was zero, then
// unconditionally ORs in the top bit and writes it back. The read and
// the write are two separate bus calls, so the sequence is not atomic
// with respect to any other master sharing the bus.
func opTAS(c *CPU, op uint16) {
	addr := c.reg.R[fieldN(op)]
	v := c.bus.Read8(addr)
	c.reg.SetT(v == 0)
	c.bus.Write8(addr, v|0x80)
}

// --- STC SR/GBR/VBR,Rn ---

func registerSTC() {
	for n := 0; n < 16; n++ {
		opcodeTable[0x0002|uint16(n)<<8] = opSTCSR
		opcodeTable[0x0012|uint16(n)<<8] = opSTCGBR
		opcodeTable[0x0022|uint16(n)<<8] = opSTCVBR
	}
}

func opSTCSR(c *CPU, op uint16)  { c.reg.R[fieldN(op)] = c.reg.SR }
func opSTCGBR(c *CPU, op uint16) { c.reg.R[fieldN(op)] = c.reg.GBR }
func opSTCVBR(c *CPU, op uint16) { c.reg.R[fieldN(op)] = c.reg.VBR }

// --- STS MACH/MACL/PR,Rn ---

func registerSTS() {
	for n := 0; n < 16; n++ {
		opcodeTable[0x000A|uint16(n)<<8] = opSTSMACH
		opcodeTable[0x001A|uint16(n)<<8] = opSTSMACL
		opcodeTable[0x002A|uint16(n)<<8] = opSTSPR
	}
}

func opSTSMACH(c *CPU, op uint16) { c.reg.R[fieldN(op)] = c.reg.MACH }
func opSTSMACL(c *CPU, op uint16) { c.reg.R[fieldN(op)] = c.reg.MACL }
func opSTSPR(c *CPU, op uint16)   { c.reg.R[fieldN(op)] = c.reg.PR }

// --- LDC Rm,SR/GBR/VBR ---

func registerLDC() {
	for m := 0; m < 16; m++ {
		opcodeTable[0x400E|uint16(m)<<8] = opLDCSR
		opcodeTable[0x401E|uint16(m)<<8] = opLDCGBR
		opcodeTable[0x402E|uint16(m)<<8] = opLDCVBR
	}
}

func opLDCSR(c *CPU, op uint16)  { c.reg.Set(RegSR, c.reg.R[fieldN(op)]) }
func opLDCGBR(c *CPU, op uint16) { c.reg.GBR = c.reg.R[fieldN(op)] }
func opLDCVBR(c *CPU, op uint16) { c.reg.VBR = c.reg.R[fieldN(op)] }

// --- LDS Rm,MACH/MACL/PR ---

func registerLDS() {
	for m := 0; m < 16; m++ {
		opcodeTable[0x400A|uint16(m)<<8] = opLDSMACH
		opcodeTable[0x401A|uint16(m)<<8] = opLDSMACL
		opcodeTable[0x402A|uint16(m)<<8] = opLDSPR
	}
}

func opLDSMACH(c *CPU, op uint16) { c.reg.MACH = c.reg.R[fieldN(op)] }
func opLDSMACL(c *CPU, op uint16) { c.reg.MACL = c.reg.R[fieldN(op)] }
func opLDSPR(c *CPU, op uint16)   { c.reg.PR = c.reg.R[fieldN(op)] }

// --- STC.L SR/GBR/VBR,@-Rn ---

func registerSTCL() {
	for n := 0; n < 16; n++ {
		opcodeTable[0x4003|uint16(n)<<8] = opSTCLSR
		opcodeTable[0x4013|uint16(n)<<8] = opSTCLGBR
		opcodeTable[0x4023|uint16(n)<<8] = opSTCLVBR
	}
}

func opSTCLSR(c *CPU, op uint16) {
	n := fieldN(op)
	c.reg.R[n] -= 4
	c.bus.Write32(c.reg.R[n], c.reg.SR)
}

func opSTCLGBR(c *CPU, op uint16) {
	n := fieldN(op)
	c.reg.R[n] -= 4
	c.bus.Write32(c.reg.R[n], c.reg.GBR)
}

func opSTCLVBR(c *CPU, op uint16) {
	n := fieldN(op)
	c.reg.R[n] -= 4
	c.bus.Write32(c.reg.R[n], c.reg.VBR)
}

// --- STS.L MACH/MACL/PR,@-Rn ---

func registerSTSL() {
	for n := 0; n < 16; n++ {
		opcodeTable[0x4002|uint16(n)<<8] = opSTSLMACH
		opcodeTable[0x4012|uint16(n)<<8] = opSTSLMACL
		opcodeTable[0x4022|uint16(n)<<8] = opSTSLPR
	}
}

func opSTSLMACH(c *CPU, op uint16) {
	n := fieldN(op)
	c.reg.R[n] -= 4
	c.bus.Write32(c.reg.R[n], c.reg.MACH)
}

func opSTSLMACL(c *CPU, op uint16) {
	n := fieldN(op)
	c.reg.R[n] -= 4
	c.bus.Write32(c.reg.R[n], c.reg.MACL)
}

func opSTSLPR(c *CPU, op uint16) {
	n := fieldN(op)
	c.reg.R[n] -= 4
	c.bus.Write32(c.reg.R[n], c.reg.PR)
}

// --- LDC.L @Rm+,SR/GBR/VBR ---

func registerLDCL() {
	for m := 0; m < 16; m++ {
		opcodeTable[0x4007|uint16(m)<<8] = opLDCLSR
		opcodeTable[0x4017|uint16(m)<<8] = opLDCLGBR
		opcodeTable[0x4027|uint16(m)<<8] = opLDCLVBR
	}
}

func opLDCLSR(c *CPU, op uint16) {
	m := fieldN(op)
	c.reg.Set(RegSR, c.bus.Read32(c.reg.R[m]))
	c.reg.R[m] += 4
}

func opLDCLGBR(c *CPU, op uint16) {
	m := fieldN(op)
	c.reg.GBR = c.bus.Read32(c.reg.R[m])
	c.reg.R[m] += 4
}

func opLDCLVBR(c *CPU, op uint16) {
	m := fieldN(op)
	c.reg.VBR = c.bus.Read32(c.reg.R[m])
	c.reg.R[m] += 4
}

// --- LDS.L @Rm+,MACH/MACL/PR ---

func registerLDSL() {
	for m := 0; m < 16; m++ {
		opcodeTable[0x4006|uint16(m)<<8] = opLDSLMACH
		opcodeTable[0x4016|uint16(m)<<8] = opLDSLMACL
		opcodeTable[0x4026|uint16(m)<<8] = opLDSLPR
	}
}

func opLDSLMACH(c *CPU, op uint16) {
	m := fieldN(op)
	c.reg.MACH = c.bus.Read32(c.reg.R[m])
	c.reg.R[m] += 4
}

func opLDSLMACL(c *CPU, op uint16) {
	m := fieldN(op)
	c.reg.MACL = c.bus.Read32(c.reg.R[m])
	c.reg.R[m] += 4
}

func opLDSLPR(c *CPU, op uint16) {
	m := fieldN(op)
	c.reg.PR = c.bus.Read32(c.reg.R[m])
	c.reg.R[m] += 4
}
