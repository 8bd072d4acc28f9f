package cpu

// execute decodes and runs one base-table opcode (spec.md §4.4). The
// two fully regular blocks — LD r,r' (0x40-0x7F, less the HALT
// exception at 0x76) and ALU A,r (0x80-0xBF) — are decoded
// structurally; everything else is listed explicitly, since the GB
// table deviates from the regular Z80 layout everywhere outside those
// two blocks.
func (c *CPU) execute(opcode uint8) {
	if opcode >= 0x40 && opcode <= 0x7F {
		if opcode == 0x76 {
			c.Halt()
			return
		}
		dst, src := (opcode>>3)&7, opcode&7
		c.setReg8(dst, c.getReg8(src))
		return
	}
	if opcode >= 0x80 && opcode <= 0xBF {
		c.aluOp((opcode>>3)&7, c.getReg8(opcode&7))
		return
	}

	switch opcode {
	case 0x00: // NOP

	case 0x01, 0x11, 0x21, 0x31:
		c.setReg16((opcode>>4)&3, c.readWord())
	case 0x02:
		c.writeMem(c.BC(), c.A)
	case 0x12:
		c.writeMem(c.DE(), c.A)
	case 0x22:
		hl := c.HL()
		c.writeMem(hl, c.A)
		c.SetHL(hl + 1)
	case 0x32:
		hl := c.HL()
		c.writeMem(hl, c.A)
		c.SetHL(hl - 1)
	case 0x0A:
		c.A = c.readMem(c.BC())
	case 0x1A:
		c.A = c.readMem(c.DE())
	case 0x2A:
		hl := c.HL()
		c.A = c.readMem(hl)
		c.SetHL(hl + 1)
	case 0x3A:
		hl := c.HL()
		c.A = c.readMem(hl)
		c.SetHL(hl - 1)

	case 0x03, 0x13, 0x23, 0x33:
		idx := (opcode >> 4) & 3
		c.setReg16(idx, c.getReg16(idx)+1)
		c.tick()
	case 0x0B, 0x1B, 0x2B, 0x3B:
		idx := (opcode >> 4) & 3
		c.setReg16(idx, c.getReg16(idx)-1)
		c.tick()

	case 0x04, 0x0C, 0x14, 0x1C, 0x24, 0x2C, 0x34, 0x3C:
		r := (opcode >> 3) & 7
		c.setReg8(r, c.inc8(c.getReg8(r)))
	case 0x05, 0x0D, 0x15, 0x1D, 0x25, 0x2D, 0x35, 0x3D:
		r := (opcode >> 3) & 7
		c.setReg8(r, c.dec8(c.getReg8(r)))
	case 0x06, 0x0E, 0x16, 0x1E, 0x26, 0x2E, 0x36, 0x3E:
		r := (opcode >> 3) & 7
		c.setReg8(r, c.readOperand())

	case 0x07:
		carry := c.A&0x80 != 0
		c.A = c.A<<1 | b2u8(carry)
		c.setFlag(FlagZero, false)
		c.setFlag(FlagSubtract, false)
		c.setFlag(FlagHalfCarry, false)
		c.setFlag(FlagCarry, carry)
	case 0x0F:
		carry := c.A&0x01 != 0
		c.A = c.A>>1 | b2u8(carry)<<7
		c.setFlag(FlagZero, false)
		c.setFlag(FlagSubtract, false)
		c.setFlag(FlagHalfCarry, false)
		c.setFlag(FlagCarry, carry)
	case 0x17:
		oldCarry := b2u8(c.flagSet(FlagCarry))
		carry := c.A&0x80 != 0
		c.A = c.A<<1 | oldCarry
		c.setFlag(FlagZero, false)
		c.setFlag(FlagSubtract, false)
		c.setFlag(FlagHalfCarry, false)
		c.setFlag(FlagCarry, carry)
	case 0x1F:
		oldCarry := b2u8(c.flagSet(FlagCarry))
		carry := c.A&0x01 != 0
		c.A = c.A>>1 | oldCarry<<7
		c.setFlag(FlagZero, false)
		c.setFlag(FlagSubtract, false)
		c.setFlag(FlagHalfCarry, false)
		c.setFlag(FlagCarry, carry)

	case 0x08:
		addr := c.readWord()
		c.writeMem(addr, uint8(c.SP))
		c.writeMem(addr+1, uint8(c.SP>>8))

	case 0x10:
		c.Stop()

	case 0x18:
		e := int8(c.readOperand())
		c.PC = uint16(int32(c.PC) + int32(e))
		c.tick()
	case 0x20, 0x28, 0x30, 0x38:
		e := int8(c.readOperand())
		if c.condition((opcode >> 3) & 3) {
			c.PC = uint16(int32(c.PC) + int32(e))
			c.tick()
		}

	case 0x09, 0x19, 0x29, 0x39:
		c.SetHL(c.add16(c.HL(), c.getReg16((opcode>>4)&3)))

	case 0x27:
		c.daa()
	case 0x2F:
		c.cpl()
	case 0x37:
		c.scf()
	case 0x3F:
		c.ccf()

	case 0xC0, 0xC8, 0xD0, 0xD8:
		c.tick()
		if c.condition((opcode >> 3) & 3) {
			c.PC = c.pop()
			c.tick()
		}
	case 0xC1, 0xD1, 0xE1, 0xF1:
		c.setReg16Stk((opcode>>4)&3, c.pop())
	case 0xC2, 0xCA, 0xD2, 0xDA:
		addr := c.readWord()
		if c.condition((opcode >> 3) & 3) {
			c.PC = addr
			c.tick()
		}
	case 0xC3:
		addr := c.readWord()
		c.PC = addr
		c.tick()
	case 0xC4, 0xCC, 0xD4, 0xDC:
		addr := c.readWord()
		if c.condition((opcode >> 3) & 3) {
			c.tick()
			c.push(c.PC)
			c.PC = addr
		}
	case 0xCD:
		addr := c.readWord()
		c.tick()
		c.push(c.PC)
		c.PC = addr
	case 0xC5, 0xD5, 0xE5, 0xF5:
		c.tick()
		c.push(c.getReg16Stk((opcode >> 4) & 3))
	case 0xC6, 0xCE, 0xD6, 0xDE, 0xE6, 0xEE, 0xF6, 0xFE:
		c.aluOp((opcode>>3)&7, c.readOperand())
	case 0xC7, 0xCF, 0xD7, 0xDF, 0xE7, 0xEF, 0xF7, 0xFF:
		c.tick()
		c.push(c.PC)
		c.PC = uint16((opcode >> 3) & 7 * 8)
	case 0xC9:
		c.PC = c.pop()
		c.tick()
	case 0xD9:
		c.PC = c.pop()
		c.tick()
		c.irq.IME = true
	case 0xE9:
		c.PC = c.HL()
	case 0xF9:
		c.SP = c.HL()
		c.tick()

	case 0xCB:
		c.executeCB(c.readOperand())

	case 0xE0:
		addr := 0xFF00 + uint16(c.readOperand())
		c.writeMem(addr, c.A)
	case 0xF0:
		addr := 0xFF00 + uint16(c.readOperand())
		c.A = c.readMem(addr)
	case 0xE2:
		c.writeMem(0xFF00+uint16(c.C), c.A)
	case 0xF2:
		c.A = c.readMem(0xFF00 + uint16(c.C))
	case 0xEA:
		addr := c.readWord()
		c.writeMem(addr, c.A)
	case 0xFA:
		addr := c.readWord()
		c.A = c.readMem(addr)
	case 0xE8:
		e := int8(c.readOperand())
		result := c.addSPSigned(e)
		c.tick()
		c.tick()
		c.SP = result
	case 0xF8:
		e := int8(c.readOperand())
		result := c.addSPSigned(e)
		c.tick()
		c.SetHL(result)

	case 0xF3:
		c.DisableIME()
	case 0xFB:
		c.EnableIMEDelayed()

	default:
		// D3 DB DD E3 E4 EB EC ED F4 FC FD and any other unassigned
		// byte: real hardware has no defined behavior for these, but
		// a ROM can legally contain one (e.g. misaligned data read as
		// code). Per spec.md §7.2/§8, treat it as a one-byte NOP
		// rather than crashing the emulator, logging it once.
		if !c.illegalLogged[opcode] {
			c.illegalLogged[opcode] = true
			c.log.Warnf("illegal opcode %#02x at %#04x treated as NOP", opcode, c.PC-1)
		}
	}
}

// aluOp applies one of the eight ALU-A-operand operations (ADD, ADC,
// SUB, SBC, AND, XOR, OR, CP) selected by the standard 3-bit y field.
func (c *CPU) aluOp(op uint8, operand uint8) {
	switch op {
	case 0:
		c.A = c.add8(c.A, operand, false)
	case 1:
		c.A = c.add8(c.A, operand, true)
	case 2:
		c.A = c.sub8(c.A, operand, false)
	case 3:
		c.A = c.sub8(c.A, operand, true)
	case 4:
		c.A = c.and8(c.A, operand)
	case 5:
		c.A = c.xor8(c.A, operand)
	case 6:
		c.A = c.or8(c.A, operand)
	case 7:
		c.cp8(c.A, operand)
	}
}
