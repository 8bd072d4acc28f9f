// Package mmu implements the address-space router described in spec.md
// §4.2: every CPU-visible read and write is routed to exactly one of
// the eight memory regions, with no component holding an aliased
// pointer into another's state.
package mmu

import (
	"gbcore/internal/addr"
	"gbcore/internal/cartridge"
	"gbcore/internal/interrupt"
	"gbcore/internal/joypad"
	"gbcore/internal/ppu"
	"gbcore/internal/serial"
	"gbcore/internal/timer"
)

// bootROM is a minimal synthetic boot stub: it is not the real Nintendo
// boot image (which is copyrighted), just enough bytes to occupy
// 0000-00FF while BootOff is unset. Real software never inspects its
// contents once FF50 is written, so functional correctness only
// depends on its length.
var bootROM [0x100]byte

// MMU wires together every memory-mapped component and resolves a
// 16-bit address to exactly one of them.
type MMU struct {
	Cart *cartridge.Cartridge
	PPU  *ppu.PPU
	Timer *timer.Controller
	IRQ   *interrupt.Controller
	Pad   *joypad.Controller
	Serial *serial.Controller

	wram [8][0x1000]byte // bank 0 fixed, banks 1-7 switchable via SVBK (CGB)
	hram [0x7F]byte

	wramBank uint8 // SVBK, CGB only; 0 behaves as 1

	bootEnabled bool
	isColor     bool

	key1       uint8 // CGB speed-switch register
	doubleSpeed bool

	hdma hdmaState
	prevPPUPhase ppu.Phase
}

// New wires a fresh MMU around the given components.
func New(cart *cartridge.Cartridge, p *ppu.PPU, t *timer.Controller, irq *interrupt.Controller, pad *joypad.Controller, ser *serial.Controller, isColor bool) *MMU {
	return &MMU{
		Cart: cart, PPU: p, Timer: t, IRQ: irq, Pad: pad, Serial: ser,
		bootEnabled: true,
		isColor:     isColor,
	}
}

// Read returns the byte visible to the CPU at address.
func (m *MMU) Read(address uint16) uint8 {
	switch {
	case address <= addr.ROMBank0End:
		if m.bootEnabled && address < 0x100 {
			return bootROM[address]
		}
		return m.Cart.ReadROM(address)
	case address <= addr.ROMBankNEnd:
		return m.Cart.ReadROM(address)
	case address <= addr.VRAMEnd:
		return m.PPU.ReadVRAM(address - addr.VRAMStart)
	case address <= addr.ExternalRAMEnd:
		return m.Cart.ReadRAM(address)
	case address <= addr.WRAMEnd:
		return m.readWRAM(address)
	case address <= addr.EchoEnd:
		return m.readWRAM(address - addr.EchoStart + addr.WRAMStart)
	case address <= addr.OAMEnd:
		return m.PPU.ReadOAM(address - addr.OAMStart)
	case address <= addr.UnusableEnd:
		return 0xFF
	case address <= addr.IOEnd:
		return m.readIO(address)
	case address <= addr.HRAMEnd:
		return m.hram[address-addr.HRAMStart]
	default: // addr.IEAddr
		return m.IRQ.ReadIE()
	}
}

// Write stores value at the CPU-visible address.
func (m *MMU) Write(address uint16, value uint8) {
	switch {
	case address <= addr.ROMBankNEnd:
		m.Cart.WriteROM(address, value)
	case address <= addr.VRAMEnd:
		m.PPU.WriteVRAM(address-addr.VRAMStart, value)
	case address <= addr.ExternalRAMEnd:
		m.Cart.WriteRAM(address, value)
	case address <= addr.WRAMEnd:
		m.writeWRAM(address, value)
	case address <= addr.EchoEnd:
		m.writeWRAM(address-addr.EchoStart+addr.WRAMStart, value)
	case address <= addr.OAMEnd:
		m.PPU.WriteOAM(address-addr.OAMStart, value)
	case address <= addr.UnusableEnd:
		// writes to the unusable region are discarded
	case address <= addr.IOEnd:
		m.writeIO(address, value)
	case address <= addr.HRAMEnd:
		m.hram[address-addr.HRAMStart] = value
	default: // addr.IEAddr
		m.IRQ.WriteIE(value)
	}
}

func (m *MMU) wramBankIndex() int {
	if !m.isColor {
		return 1
	}
	b := m.wramBank & 0x07
	if b == 0 {
		b = 1
	}
	return int(b)
}

func (m *MMU) readWRAM(address uint16) uint8 {
	off := address - addr.WRAMStart
	if off < 0x1000 {
		return m.wram[0][off]
	}
	return m.wram[m.wramBankIndex()][off-0x1000]
}

func (m *MMU) writeWRAM(address uint16, value uint8) {
	off := address - addr.WRAMStart
	if off < 0x1000 {
		m.wram[0][off] = value
		return
	}
	m.wram[m.wramBankIndex()][off-0x1000] = value
}

// Tick advances every memory-mapped component by one M-cycle and
// services HDMA's HBlank pacing.
func (m *MMU) Tick() {
	m.Timer.Tick()
	m.Serial.Tick()
	m.PPU.Tick()

	phase := m.PPU.Mode()
	if phase == ppu.PhaseHBlank && m.prevPPUPhase != ppu.PhaseHBlank {
		m.serviceHBlankHDMA()
	}
	m.prevPPUPhase = phase
}

// KEY1 returns the CGB speed-switch register.
func (m *MMU) KEY1() uint8 {
	v := m.key1 & 0x01
	if m.doubleSpeed {
		v |= 0x80
	}
	return v | 0x7E
}

// WriteKEY1 arms a pending speed switch (bit 0), carried out by the CPU
// on the next STOP instruction per spec.md's CGB supplement.
func (m *MMU) WriteKEY1(v uint8) { m.key1 = v & 0x01 }

// ArmedSpeedSwitch reports whether a switch is armed, and if so clears
// the arm bit and flips DoubleSpeed — called by the CPU's STOP handler.
func (m *MMU) ArmedSpeedSwitch() bool {
	if m.key1&0x01 == 0 {
		return false
	}
	m.key1 = 0
	m.doubleSpeed = !m.doubleSpeed
	return true
}

// DoubleSpeed reports whether the CGB double-speed mode is active.
func (m *MMU) DoubleSpeed() bool { return m.doubleSpeed }
