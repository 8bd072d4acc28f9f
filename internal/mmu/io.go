package mmu

import (
	"gbcore/internal/addr"
	"gbcore/internal/ppu"
)

// readIO dispatches a read in FF00-FF7F to its owning component.
func (m *MMU) readIO(address uint16) uint8 {
	switch address {
	case addr.P1:
		return m.Pad.Read()
	case addr.SB:
		return m.Serial.ReadSB()
	case addr.SC:
		return m.Serial.ReadSC()
	case addr.DIV:
		return m.Timer.Read(timerDIV)
	case addr.TIMA:
		return m.Timer.Read(timerTIMA)
	case addr.TMA:
		return m.Timer.Read(timerTMA)
	case addr.TAC:
		return m.Timer.Read(timerTAC)
	case addr.IF:
		return m.IRQ.ReadIF()
	case addr.LCDC:
		return m.PPU.ReadReg(ppu.RegLCDC)
	case addr.STAT:
		return m.PPU.ReadReg(ppu.RegSTAT)
	case addr.SCY:
		return m.PPU.ReadReg(ppu.RegSCY)
	case addr.SCX:
		return m.PPU.ReadReg(ppu.RegSCX)
	case addr.LY:
		return m.PPU.ReadReg(ppu.RegLY)
	case addr.LYC:
		return m.PPU.ReadReg(ppu.RegLYC)
	case addr.DMA:
		return m.PPU.ReadReg(ppu.RegDMA)
	case addr.BGP:
		return m.PPU.ReadReg(ppu.RegBGP)
	case addr.OBP0:
		return m.PPU.ReadReg(ppu.RegOBP0)
	case addr.OBP1:
		return m.PPU.ReadReg(ppu.RegOBP1)
	case addr.WY:
		return m.PPU.ReadReg(ppu.RegWY)
	case addr.WX:
		return m.PPU.ReadReg(ppu.RegWX)
	case addr.KEY0:
		return 0xFF
	case addr.KEY1:
		return m.KEY1()
	case addr.VBK:
		return m.PPU.ReadReg(ppu.RegVBK)
	case addr.BootOff:
		return 0xFF
	case addr.HDMA5:
		return m.readHDMA5()
	case addr.BCPS:
		return m.PPU.ReadReg(ppu.RegBCPS)
	case addr.BCPD:
		return m.PPU.ReadReg(ppu.RegBCPD)
	case addr.OCPS:
		return m.PPU.ReadReg(ppu.RegOCPS)
	case addr.OCPD:
		return m.PPU.ReadReg(ppu.RegOCPD)
	case addr.SVBK:
		return m.wramBank | 0xF8
	default:
		return 0xFF
	}
}

// writeIO dispatches a write in FF00-FF7F to its owning component.
func (m *MMU) writeIO(address uint16, value uint8) {
	switch address {
	case addr.P1:
		m.Pad.Write(value)
	case addr.SB:
		m.Serial.WriteSB(value)
	case addr.SC:
		m.Serial.WriteSC(value)
	case addr.DIV:
		m.Timer.Write(timerDIV, value)
	case addr.TIMA:
		m.Timer.Write(timerTIMA, value)
	case addr.TMA:
		m.Timer.Write(timerTMA, value)
	case addr.TAC:
		m.Timer.Write(timerTAC, value)
	case addr.IF:
		m.IRQ.WriteIF(value)
	case addr.LCDC:
		m.PPU.WriteReg(ppu.RegLCDC, value)
	case addr.STAT:
		m.PPU.WriteReg(ppu.RegSTAT, value)
	case addr.SCY:
		m.PPU.WriteReg(ppu.RegSCY, value)
	case addr.SCX:
		m.PPU.WriteReg(ppu.RegSCX, value)
	case addr.LY:
		m.PPU.WriteReg(ppu.RegLY, value)
	case addr.LYC:
		m.PPU.WriteReg(ppu.RegLYC, value)
	case addr.DMA:
		m.triggerOAMDMA(value)
	case addr.BGP:
		m.PPU.WriteReg(ppu.RegBGP, value)
	case addr.OBP0:
		m.PPU.WriteReg(ppu.RegOBP0, value)
	case addr.OBP1:
		m.PPU.WriteReg(ppu.RegOBP1, value)
	case addr.WY:
		m.PPU.WriteReg(ppu.RegWY, value)
	case addr.WX:
		m.PPU.WriteReg(ppu.RegWX, value)
	case addr.KEY0:
		// CGB/DMG compatibility register, fixed at boot; not writable post-boot
	case addr.KEY1:
		m.WriteKEY1(value)
	case addr.VBK:
		m.PPU.WriteReg(ppu.RegVBK, value)
	case addr.BootOff:
		if value != 0 {
			m.bootEnabled = false
		}
	case addr.HDMA1:
		m.hdma.srcHi = value
	case addr.HDMA2:
		m.hdma.srcLo = value & 0xF0
	case addr.HDMA3:
		m.hdma.dstHi = value & 0x1F
	case addr.HDMA4:
		m.hdma.dstLo = value & 0xF0
	case addr.HDMA5:
		m.writeHDMA5(value)
	case addr.BCPS:
		m.PPU.WriteReg(ppu.RegBCPS, value)
	case addr.BCPD:
		m.PPU.WriteReg(ppu.RegBCPD, value)
	case addr.OCPS:
		m.PPU.WriteReg(ppu.RegOCPS, value)
	case addr.OCPD:
		m.PPU.WriteReg(ppu.RegOCPD, value)
	case addr.SVBK:
		if m.isColor {
			m.wramBank = value & 0x07
		}
	}
}

// Timer register selectors, matching internal/timer's local constants.
const (
	timerDIV uint8 = iota
	timerTIMA
	timerTMA
	timerTAC
)

// triggerOAMDMA performs the classic FF46 OAM DMA: 160 bytes copied
// from (value<<8) into OAM. Real hardware spreads this over 160
// M-cycles and blocks CPU access to everything but HRAM; spec.md's
// Open-Question resolution treats this as an acceptable simplification
// and implements it as a single instantaneous copy.
func (m *MMU) triggerOAMDMA(value uint8) {
	src := uint16(value) << 8
	for i := uint16(0); i < 0xA0; i++ {
		m.PPU.WriteOAMRaw(i, m.Read(src+i))
	}
}
