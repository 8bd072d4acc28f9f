package cpu

// executeCB decodes and runs one CB-prefixed opcode. Unlike the base
// table, the CB table is fully regular: x selects rotate/shift-group
// vs BIT/RES/SET, y selects the specific operation or bit index, and z
// selects the 3-bit-encoded operand (same encoding as getReg8).
func (c *CPU) executeCB(opcode uint8) {
	x := opcode >> 6
	y := (opcode >> 3) & 7
	z := opcode & 7

	switch x {
	case 0: // rotate/shift group
		v := c.getReg8(z)
		var result uint8
		switch y {
		case 0:
			result = c.rlc(v)
		case 1:
			result = c.rrc(v)
		case 2:
			result = c.rl(v)
		case 3:
			result = c.rr(v)
		case 4:
			result = c.sla(v)
		case 5:
			result = c.sra(v)
		case 6:
			result = c.swap(v)
		case 7:
			result = c.srl(v)
		}
		c.setReg8(z, result)
	case 1: // BIT y,r
		c.bit(y, c.getReg8(z))
	case 2: // RES y,r
		c.setReg8(z, c.res(y, c.getReg8(z)))
	case 3: // SET y,r
		c.setReg8(z, c.set(y, c.getReg8(z)))
	}
}
