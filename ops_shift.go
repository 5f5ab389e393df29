package sh2

func init() {
	registerSHLL()
	registerSHLR()
	registerSHAL()
	registerSHAR()
	registerROTL()
	registerROTR()
	registerROTCL()
	registerROTCR()
	registerSHLLn()
	registerSHLRn()
}

// --- SHLL/SHLR Rn (shift by one, T receives the shifted-out bit) ---

func registerSHLL() {
	for n := 0; n < 16; n++ {
		opcodeTable[0x4000|uint16(n)<<8] = opSHLL
	}
}

func opSHLL(c *CPU, op uint16) {
	n := fieldN(op)
	c.reg.SetT(c.reg.R[n]>>31 != 0)
	c.reg.R[n] <<= 1
}

func registerSHLR() {
	for n := 0; n < 16; n++ {
		opcodeTable[0x4001|uint16(n)<<8] = opSHLR
	}
}

func opSHLR(c *CPU, op uint16) {
	n := fieldN(op)
	c.reg.SetT(c.reg.R[n]&1 != 0)
	c.reg.R[n] >>= 1
}

// --- SHAL/SHAR Rn (arithmetic variants; SHAL is bit-identical to SHLL) ---

func registerSHAL() {
	for n := 0; n < 16; n++ {
		opcodeTable[0x4020|uint16(n)<<8] = opSHAL
	}
}

func opSHAL(c *CPU, op uint16) {
	n := fieldN(op)
	c.reg.SetT(c.reg.R[n]>>31 != 0)
	c.reg.R[n] <<= 1
}

func registerSHAR() {
	for n := 0; n < 16; n++ {
		opcodeTable[0x4021|uint16(n)<<8] = opSHAR
	}
}

func opSHAR(c *CPU, op uint16) {
	n := fieldN(op)
	c.reg.SetT(c.reg.R[n]&1 != 0)
	c.reg.R[n] = uint32(int32(c.reg.R[n]) >> 1)
}

// --- ROTL/ROTR Rn ---

func registerROTL() {
	for n := 0; n < 16; n++ {
		opcodeTable[0x4004|uint16(n)<<8] = opROTL
	}
}

func opROTL(c *CPU, op uint16) {
	n := fieldN(op)
	top := c.reg.R[n] >> 31
	c.reg.SetT(top != 0)
	c.reg.R[n] = (c.reg.R[n] << 1) | top
}

func registerROTR() {
	for n := 0; n < 16; n++ {
		opcodeTable[0x4005|uint16(n)<<8] = opROTR
	}
}

func opROTR(c *CPU, op uint16) {
	n := fieldN(op)
	bottom := c.reg.R[n] & 1
	c.reg.SetT(bottom != 0)
	c.reg.R[n] = (c.reg.R[n] >> 1) | (bottom << 31)
}

// --- ROTCL/ROTCR Rn (rotate through T) ---

func registerROTCL() {
	for n := 0; n < 16; n++ {
		opcodeTable[0x4024|uint16(n)<<8] = opROTCL
	}
}

func opROTCL(c *CPU, op uint16) {
	n := fieldN(op)
	top := c.reg.R[n] >> 31
	c.reg.R[n] = (c.reg.R[n] << 1) | boolToUint32(c.reg.T())
	c.reg.SetT(top != 0)
}

func registerROTCR() {
	for n := 0; n < 16; n++ {
		opcodeTable[0x4025|uint16(n)<<8] = opROTCR
	}
}

func opROTCR(c *CPU, op uint16) {
	n := fieldN(op)
	bottom := c.reg.R[n] & 1
	var tbit uint32
	if c.reg.T() {
		tbit = 1 << 31
	}
	c.reg.R[n] = (c.reg.R[n] >> 1) | tbit
	c.reg.SetT(bottom != 0)
}

// --- SHLLn/SHLRn Rn (fixed shift amounts 2/8/16, T left unchanged) ---

func registerSHLLn() {
	for n := 0; n < 16; n++ {
		opcodeTable[0x4008|uint16(n)<<8] = opSHLL2
		opcodeTable[0x4018|uint16(n)<<8] = opSHLL8
		opcodeTable[0x4028|uint16(n)<<8] = opSHLL16
	}
}

func opSHLL2(c *CPU, op uint16)  { c.reg.R[fieldN(op)] <<= 2 }
func opSHLL8(c *CPU, op uint16)  { c.reg.R[fieldN(op)] <<= 8 }
func opSHLL16(c *CPU, op uint16) { c.reg.R[fieldN(op)] <<= 16 }

func registerSHLRn() {
	for n := 0; n < 16; n++ {
		opcodeTable[0x4009|uint16(n)<<8] = opSHLR2
		opcodeTable[0x4019|uint16(n)<<8] = opSHLR8
		opcodeTable[0x4029|uint16(n)<<8] = opSHLR16
	}
}

func opSHLR2(c *CPU, op uint16) { c.reg.R[fieldN(op)] >>= 2 }
func opSHLR8(c *CPU, op uint16) { c.reg.R[fieldN(op)] >>= 8 }

func opSHLR16(c *CPU, op uint16) { c.reg.R[fieldN(op)] >>= 16 }
