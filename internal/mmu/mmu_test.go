package mmu

import (
	"testing"

	"gbcore/internal/cartridge"
	"gbcore/internal/interrupt"
	"gbcore/internal/joypad"
	"gbcore/internal/ppu"
	"gbcore/internal/serial"
	"gbcore/internal/timer"
)

func newTestMMU() *MMU {
	irq := interrupt.New()
	cart := cartridge.NewInvalid()
	p := ppu.New(irq, false)
	t := timer.New(irq)
	pad := joypad.New(irq)
	ser := serial.New(irq)
	return New(cart, p, t, irq, pad, ser, false)
}

func TestWRAMEchoAliasesMainWRAM(t *testing.T) {
	m := newTestMMU()
	m.Write(0xC010, 0x99)
	if got := m.Read(0xE010); got != 0x99 {
		t.Fatalf("expected echo RAM to alias WRAM, got %#02x", got)
	}
	m.Write(0xE020, 0x42)
	if got := m.Read(0xC020); got != 0x42 {
		t.Fatalf("expected a write through the echo window to land in WRAM, got %#02x", got)
	}
}

func TestUnusableRegionReadsFFAndDiscardsWrites(t *testing.T) {
	m := newTestMMU()
	m.Write(0xFEA0, 0x77)
	if got := m.Read(0xFEA0); got != 0xFF {
		t.Fatalf("expected the unusable region to always read 0xFF, got %#02x", got)
	}
}

func TestBootROMUnlocksOnBootOffWrite(t *testing.T) {
	m := newTestMMU()
	if got := m.Read(0x0000); got != bootROM[0] {
		t.Fatalf("expected boot ROM contents at 0x0000 while boot is active")
	}
	m.Write(0xFF50, 0x01)
	cartByte := m.Cart.ReadROM(0x0000)
	if got := m.Read(0x0000); got != cartByte {
		t.Fatalf("expected cartridge ROM visible at 0x0000 once boot ROM is disabled, got %#02x want %#02x", got, cartByte)
	}
}

func TestOAMDMACopiesAllBytes(t *testing.T) {
	m := newTestMMU()
	for i := uint16(0); i < 0xA0; i++ {
		m.Write(0xC000+i, uint8(i))
	}
	m.Write(0xFF46, 0xC0) // source page 0xC000

	for i := uint16(0); i < 0xA0; i++ {
		if got := m.PPU.ReadOAM(i); got != uint8(i) {
			t.Fatalf("expected OAM[%d]=%d after DMA, got %d", i, uint8(i), got)
		}
	}
}

func TestHDMAGeneralPurposeCopiesImmediately(t *testing.T) {
	m := newTestMMU()
	// source at 0xC000 (WRAM), destination at the start of VRAM bank 0
	m.Write(0xC000, 0xAB)
	m.Write(0xFF51, 0xC0) // HDMA1 src hi
	m.Write(0xFF52, 0x00) // HDMA2 src lo
	m.Write(0xFF53, 0x00) // HDMA3 dst hi
	m.Write(0xFF54, 0x00) // HDMA4 dst lo
	m.Write(0xFF55, 0x00) // general-purpose, length = 16 bytes

	if got := m.PPU.ReadVRAMRaw(0, 0); got != 0xAB {
		t.Fatalf("expected the first transferred byte to land at VRAM[0], got %#02x", got)
	}
	if got := m.Read(0xFF55); got != 0xFF {
		t.Fatalf("expected HDMA5 to read back inactive after an immediate transfer, got %#02x", got)
	}
}

func TestHDMAHBlankModeArmsAndStaysActive(t *testing.T) {
	m := newTestMMU()
	m.Write(0xFF51, 0xC0)
	m.Write(0xFF52, 0x00)
	m.Write(0xFF53, 0x00)
	m.Write(0xFF54, 0x00)
	m.Write(0xFF55, 0x80) // HBlank mode, length = 16 bytes

	if !m.hdma.active {
		t.Fatalf("expected the HBlank transfer to be armed and active")
	}
	if got := m.Read(0xFF55); got&0x80 != 0 {
		t.Fatalf("expected HDMA5 to report active (bit7 clear) while armed, got %#02x", got)
	}
}

func TestSVBKIgnoredOnDMG(t *testing.T) {
	m := newTestMMU() // constructed with isColor=false
	m.Write(0xFF70, 0x05)
	if m.wramBank != 0 {
		t.Fatalf("expected SVBK writes to be ignored on DMG, got bank %d", m.wramBank)
	}
}
