package sh2

func init() {
	registerADD()
	registerADDImm()
	registerADDC()
	registerADDV()
	registerSUB()
	registerSUBC()
	registerSUBV()
	registerNEG()
	registerNEGC()
	registerCMP()
	registerCMPImm()
	registerDIV0()
	registerDIV1()
	registerDMUL()
	registerMULU()
	registerMULS()
	registerMULL()
	registerDT()
}

// --- ADD Rm,Rn / ADD #imm,Rn ---

func registerADD() {
	for n := 0; n < 16; n++ {
		for m := 0; m < 16; m++ {
			opcodeTable[0x300C|uint16(n)<<8|uint16(m)<<4] = opADD
		}
	}
}

func opADD(c *CPU, op uint16) {
	n, m := fieldN(op), fieldM(op)
	c.reg.R[n] = c.reg.R[n] + c.reg.R[m]
}

func registerADDImm() {
	for n := 0; n < 16; n++ {
		for imm := uint16(0); imm < 256; imm++ {
			opcodeTable[0x7000|uint16(n)<<8|imm] = opADDImm
		}
	}
}

func opADDImm(c *CPU, op uint16) {
	n := fieldN(op)
	c.reg.R[n] = c.reg.R[n] + uint32(signExtend(fieldImm8(op), 8))
}

// --- ADDC Rm,Rn ---

func registerADDC() {
	for n := 0; n < 16; n++ {
		for m := 0; m < 16; m++ {
			opcodeTable[0x300E|uint16(n)<<8|uint16(m)<<4] = opADDC
		}
	}
}

func opADDC(c *CPU, op uint16) {
	n, m := fieldN(op), fieldM(op)
	result, carry := addWithCarry(c.reg.R[n], c.reg.R[m], c.reg.T())
	c.reg.R[n] = result
	c.reg.SetT(carry)
}

// --- ADDV Rm,Rn ---

func registerADDV() {
	for n := 0; n < 16; n++ {
		for m := 0; m < 16; m++ {
			opcodeTable[0x300F|uint16(n)<<8|uint16(m)<<4] = opADDV
		}
	}
}

func opADDV(c *CPU, op uint16) {
	n, m := fieldN(op), fieldM(op)
	overflow := signedAddOverflows(int32(c.reg.R[n]), int32(c.reg.R[m]))
	c.reg.R[n] = c.reg.R[n] + c.reg.R[m]
	c.reg.SetT(overflow)
}

// --- SUB Rm,Rn ---

func registerSUB() {
	for n := 0; n < 16; n++ {
		for m := 0; m < 16; m++ {
			opcodeTable[0x3008|uint16(n)<<8|uint16(m)<<4] = opSUB
		}
	}
}

func opSUB(c *CPU, op uint16) {
	n, m := fieldN(op), fieldM(op)
	c.reg.R[n] = c.reg.R[n] - c.reg.R[m]
}

// --- SUBC Rm,Rn ---

func registerSUBC() {
	for n := 0; n < 16; n++ {
		for m := 0; m < 16; m++ {
			opcodeTable[0x300A|uint16(n)<<8|uint16(m)<<4] = opSUBC
		}
	}
}

func opSUBC(c *CPU, op uint16) {
	n, m := fieldN(op), fieldM(op)
	result, borrow := subWithBorrow(c.reg.R[n], c.reg.R[m], c.reg.T())
	c.reg.R[n] = result
	c.reg.SetT(borrow)
}

// --- SUBV Rm,Rn ---

func registerSUBV() {
	for n := 0; n < 16; n++ {
		for m := 0; m < 16; m++ {
			opcodeTable[0x300B|uint16(n)<<8|uint16(m)<<4] = opSUBV
		}
	}
}

func opSUBV(c *CPU, op uint16) {
	n, m := fieldN(op), fieldM(op)
	overflow := signedSubOverflows(int32(c.reg.R[n]), int32(c.reg.R[m]))
	c.reg.R[n] = c.reg.R[n] - c.reg.R[m]
	c.reg.SetT(overflow)
}

// --- NEG Rm,Rn ---

func registerNEG() {
	for n := 0; n < 16; n++ {
		for m := 0; m < 16; m++ {
			opcodeTable[0x600B|uint16(n)<<8|uint16(m)<<4] = opNEG
		}
	}
}

func opNEG(c *CPU, op uint16) {
	c.reg.R[fieldN(op)] = 0 - c.reg.R[fieldM(op)]
}

// --- NEGC Rm,Rn ---

func registerNEGC() {
	for n := 0; n < 16; n++ {
		for m := 0; m < 16; m++ {
			opcodeTable[0x600A|uint16(n)<<8|uint16(m)<<4] = opNEGC
		}
	}
}

func opNEGC(c *CPU, op uint16) {
	n, m := fieldN(op), fieldM(op)
	result, borrow := subWithBorrow(0, c.reg.R[m], c.reg.T())
	c.reg.R[n] = result
	c.reg.SetT(borrow)
}

// --- CMP/EQ,GT,GE,HI,HS,PL,PZ,STR ---

func registerCMP() {
	for n := 0; n < 16; n++ {
		for m := 0; m < 16; m++ {
			opcodeTable[0x3000|uint16(n)<<8|uint16(m)<<4] = opCMPEQReg
			opcodeTable[0x3002|uint16(n)<<8|uint16(m)<<4] = opCMPHS
			opcodeTable[0x3003|uint16(n)<<8|uint16(m)<<4] = opCMPGE
			opcodeTable[0x3006|uint16(n)<<8|uint16(m)<<4] = opCMPHI
			opcodeTable[0x3007|uint16(n)<<8|uint16(m)<<4] = opCMPGT
			opcodeTable[0x200C|uint16(n)<<8|uint16(m)<<4] = opCMPSTR
		}
	}
	for n := 0; n < 16; n++ {
		opcodeTable[0x4015|uint16(n)<<8] = opCMPPL
		opcodeTable[0x4011|uint16(n)<<8] = opCMPPZ
	}
}

func opCMPEQReg(c *CPU, op uint16) {
	c.reg.SetT(c.reg.R[fieldN(op)] == c.reg.R[fieldM(op)])
}

func opCMPHS(c *CPU, op uint16) {
	c.reg.SetT(c.reg.R[fieldN(op)] >= c.reg.R[fieldM(op)])
}

func opCMPGE(c *CPU, op uint16) {
	c.reg.SetT(int32(c.reg.R[fieldN(op)]) >= int32(c.reg.R[fieldM(op)]))
}

func opCMPHI(c *CPU, op uint16) {
	c.reg.SetT(c.reg.R[fieldN(op)] > c.reg.R[fieldM(op)])
}

func opCMPGT(c *CPU, op uint16) {
	c.reg.SetT(int32(c.reg.R[fieldN(op)]) > int32(c.reg.R[fieldM(op)]))
}

func opCMPPL(c *CPU, op uint16) {
	c.reg.SetT(int32(c.reg.R[fieldN(op)]) > 0)
}

func opCMPPZ(c *CPU, op uint16) {
	c.reg.SetT(int32(c.reg.R[fieldN(op)]) >= 0)
}

func opCMPSTR(c *CPU, op uint16) {
	x := c.reg.R[fieldN(op)] ^ c.reg.R[fieldM(op)]
	match := (x&0xFF == 0) || (x&0xFF00 == 0) || (x&0xFF0000 == 0) || (x&0xFF000000 == 0)
	c.reg.SetT(match)
}

// --- CMP/EQ #imm,R0 ---

func registerCMPImm() {
	for imm := uint16(0); imm < 256; imm++ {
		opcodeTable[0x8800|imm] = opCMPEQImm
	}
}

func opCMPEQImm(c *CPU, op uint16) {
	c.reg.SetT(int32(c.reg.R[0]) == signExtend(fieldImm8(op), 8))
}

// --- DIV0S, DIV0U, DIV1 ---

func registerDIV0() {
	for n := 0; n < 16; n++ {
		for m := 0; m < 16; m++ {
			opcodeTable[0x2007|uint16(n)<<8|uint16(m)<<4] = opDIV0S
		}
	}
	opcodeTable[0x0019] = opDIV0U
}

func opDIV0S(c *CPU, op uint16) {
	n, m := fieldN(op), fieldM(op)
	q := c.reg.R[n]>>31 != 0
	mbit := c.reg.R[m]>>31 != 0
	c.reg.SetQ(q)
	c.reg.SetM(mbit)
	c.reg.SetT(q != mbit)
}

func opDIV0U(c *CPU, op uint16) {
	c.reg.SetQ(false)
	c.reg.SetM(false)
	c.reg.SetT(false)
}

func registerDIV1() {
	for n := 0; n < 16; n++ {
		for m := 0; m < 16; m++ {
			opcodeTable[0x3004|uint16(n)<<8|uint16(m)<<4] = opDIV1
		}
	}
}

// opDIV1 performs one step of the restoring-division algorithm: shift
// Q:Rn left through T, add or subtract Rm from Rn depending on the prior
// Q/M state, then fold the add/subtract's wrap back into Q together with
// the bit shifted out of Rn. This follows the SH-2 manual's DIV1 case
// table directly rather than a collapsed formula: old_q == M subtracts,
// old_q != M adds, and within each of the four (old_q, M) combinations
// the shifted-out bit picks whether Q takes the wrap flag straight or
// inverted, and the two combinations sharing an operation invert it the
// opposite way.
func opDIV1(c *CPU, op uint16) {
	n, m := fieldN(op), fieldM(op)
	oldQ := c.reg.Q()
	mBit := c.reg.M()

	rn := c.reg.R[n]
	shiftOut := rn>>31 != 0
	rn = (rn << 1) | boolToUint32(c.reg.T())
	prev := rn

	var newQ bool
	if !oldQ {
		if !mBit {
			rn -= c.reg.R[m]
			wrapped := rn > prev
			newQ = wrapped != shiftOut
		} else {
			rn += c.reg.R[m]
			wrapped := rn < prev
			newQ = wrapped == shiftOut
		}
	} else {
		if !mBit {
			rn += c.reg.R[m]
			wrapped := rn < prev
			newQ = wrapped != shiftOut
		} else {
			rn -= c.reg.R[m]
			wrapped := rn > prev
			newQ = wrapped == shiftOut
		}
	}

	c.reg.R[n] = rn
	c.reg.SetQ(newQ)
	c.reg.SetT(newQ == mBit)
}

func boolToUint32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// --- DMULS.L / DMULU.L ---

func registerDMUL() {
	for n := 0; n < 16; n++ {
		for m := 0; m < 16; m++ {
			opcodeTable[0x300D|uint16(n)<<8|uint16(m)<<4] = opDMULS
			opcodeTable[0x3005|uint16(n)<<8|uint16(m)<<4] = opDMULU
		}
	}
}

func opDMULS(c *CPU, op uint16) {
	n, m := fieldN(op), fieldM(op)
	product := int64(int32(c.reg.R[n])) * int64(int32(c.reg.R[m]))
	c.reg.MACH = uint32(uint64(product) >> 32)
	c.reg.MACL = uint32(uint64(product))
}

func opDMULU(c *CPU, op uint16) {
	n, m := fieldN(op), fieldM(op)
	product := uint64(c.reg.R[n]) * uint64(c.reg.R[m])
	c.reg.MACH = uint32(product >> 32)
	c.reg.MACL = uint32(product)
}

// --- MULU.W / MULS.W / MUL.L ---

func registerMULU() {
	for n := 0; n < 16; n++ {
		for m := 0; m < 16; m++ {
			opcodeTable[0x200E|uint16(n)<<8|uint16(m)<<4] = opMULU
		}
	}
}

func opMULU(c *CPU, op uint16) {
	n, m := fieldN(op), fieldM(op)
	c.reg.MACL = (c.reg.R[n] & 0xFFFF) * (c.reg.R[m] & 0xFFFF)
}

func registerMULS() {
	for n := 0; n < 16; n++ {
		for m := 0; m < 16; m++ {
			opcodeTable[0x200F|uint16(n)<<8|uint16(m)<<4] = opMULS
		}
	}
}

func opMULS(c *CPU, op uint16) {
	n, m := fieldN(op), fieldM(op)
	a := int32(signExtend(c.reg.R[n]&0xFFFF, 16))
	b := int32(signExtend(c.reg.R[m]&0xFFFF, 16))
	c.reg.MACL = uint32(a * b)
}

func registerMULL() {
	for n := 0; n < 16; n++ {
		for m := 0; m < 16; m++ {
			opcodeTable[0x0007|uint16(n)<<8|uint16(m)<<4] = opMULL
		}
	}
}

func opMULL(c *CPU, op uint16) {
	n, m := fieldN(op), fieldM(op)
	c.reg.MACL = c.reg.R[n] * c.reg.R[m]
}

// --- DT Rn ---

func registerDT() {
	for n := 0; n < 16; n++ {
		opcodeTable[0x4010|uint16(n)<<8] = opDT
	}
}

func opDT(c *CPU, op uint16) {
	n := fieldN(op)
	c.reg.R[n]--
	c.reg.SetT(c.reg.R[n] == 0)
}
