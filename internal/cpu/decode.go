package cpu

// getReg8 reads one of the eight 3-bit-encoded operands B,C,D,E,H,L,
// (HL),A used throughout the base opcode table.
func (c *CPU) getReg8(index uint8) uint8 {
	switch index {
	case 0:
		return c.B
	case 1:
		return c.C
	case 2:
		return c.D
	case 3:
		return c.E
	case 4:
		return c.H
	case 5:
		return c.L
	case 6:
		return c.readMem(c.HL())
	default:
		return c.A
	}
}

// setReg8 writes one of the eight 3-bit-encoded operands.
func (c *CPU) setReg8(index uint8, v uint8) {
	switch index {
	case 0:
		c.B = v
	case 1:
		c.C = v
	case 2:
		c.D = v
	case 3:
		c.E = v
	case 4:
		c.H = v
	case 5:
		c.L = v
	case 6:
		c.writeMem(c.HL(), v)
	default:
		c.A = v
	}
}

// getReg16 reads one of the four 2-bit-encoded 16-bit operands used by
// the INC rr/DEC rr/ADD HL,rr/LD rr,nn instruction families.
func (c *CPU) getReg16(index uint8) uint16 {
	switch index {
	case 0:
		return c.BC()
	case 1:
		return c.DE()
	case 2:
		return c.HL()
	default:
		return c.SP
	}
}

func (c *CPU) setReg16(index uint8, v uint16) {
	switch index {
	case 0:
		c.SetBC(v)
	case 1:
		c.SetDE(v)
	case 2:
		c.SetHL(v)
	default:
		c.SP = v
	}
}

// getReg16Stk reads one of the four 2-bit-encoded PUSH/POP operands:
// BC, DE, HL, AF (the stack-operand table substitutes AF for SP).
func (c *CPU) getReg16Stk(index uint8) uint16 {
	if index == 3 {
		return c.AF()
	}
	return c.getReg16(index)
}

func (c *CPU) setReg16Stk(index uint8, v uint16) {
	if index == 3 {
		c.SetAF(v)
		return
	}
	c.setReg16(index, v)
}

// condition evaluates one of the four 2-bit-encoded jump/call/ret
// conditions: NZ, Z, NC, C.
func (c *CPU) condition(index uint8) bool {
	switch index {
	case 0:
		return !c.flagSet(FlagZero)
	case 1:
		return c.flagSet(FlagZero)
	case 2:
		return !c.flagSet(FlagCarry)
	default:
		return c.flagSet(FlagCarry)
	}
}
