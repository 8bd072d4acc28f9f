package ppu

import (
	"testing"

	"gbcore/internal/interrupt"
)

func TestPhaseProgressionAcrossOneLine(t *testing.T) {
	irq := interrupt.New()
	p := New(irq, false)
	p.LCDC = 0x80 // LCD on

	if p.Mode() != PhaseOAM {
		t.Fatalf("expected initial phase OAM, got %v", p.Mode())
	}
	for i := 0; i < cyclesOAM; i++ {
		p.Tick()
	}
	if p.Mode() != PhaseVRAM {
		t.Fatalf("expected PhaseVRAM after %d cycles, got %v", cyclesOAM, p.Mode())
	}
	for i := 0; i < cyclesVRAM; i++ {
		p.Tick()
	}
	if p.Mode() != PhaseHBlank {
		t.Fatalf("expected PhaseHBlank after OAM+VRAM cycles, got %v", p.Mode())
	}
	for i := 0; i < cyclesHBlank; i++ {
		p.Tick()
	}
	if p.LY != 1 {
		t.Fatalf("expected LY=1 after one full line, got %d", p.LY)
	}
	if p.Mode() != PhaseOAM {
		t.Fatalf("expected PhaseOAM at the start of the next line, got %v", p.Mode())
	}
}

func TestVBlankEntryRaisesInterrupt(t *testing.T) {
	irq := interrupt.New()
	p := New(irq, false)
	p.LCDC = 0x80

	for line := 0; line < linesVisible; line++ {
		for i := 0; i < cyclesLine; i++ {
			p.Tick()
		}
	}

	if p.LY != linesVisible {
		t.Fatalf("expected LY=%d entering VBlank, got %d", linesVisible, p.LY)
	}
	if p.Mode() != PhaseVBlank {
		t.Fatalf("expected PhaseVBlank, got %v", p.Mode())
	}
	if irq.Flag&0x01 == 0 {
		t.Fatalf("expected VBlank interrupt flag set, got IF=%#02x", irq.Flag)
	}
}

func TestVRAMLockoutDuringPhaseVRAM(t *testing.T) {
	irq := interrupt.New()
	p := New(irq, false)
	p.LCDC = 0x80
	p.WriteVRAM(0, 0x42)

	for i := 0; i < cyclesOAM; i++ {
		p.Tick()
	}
	if p.Mode() != PhaseVRAM {
		t.Fatalf("expected PhaseVRAM, got %v", p.Mode())
	}
	if got := p.ReadVRAM(0); got != 0xFF {
		t.Fatalf("expected VRAM reads to return 0xFF during PhaseVRAM, got %#02x", got)
	}
}

func TestBackgroundTileDecode(t *testing.T) {
	irq := interrupt.New()
	p := New(irq, false)
	p.LCDC = 0x91 // LCD on, BG on, unsigned tile addressing, tilemap at 0x9800
	p.BGP = 0xE4  // identity palette: 0->0,1->1,2->2,3->3

	// tile 0: a single fully-set row 0 (both bit planes high -> colour 3)
	p.vram[0][0] = 0xFF
	p.vram[0][1] = 0xFF
	// tilemap entry (0,0) already 0 by default, pointing at tile 0

	p.renderScanline()

	if p.back[0][0] != dmgShade(3) {
		t.Fatalf("expected shade 3 at (0,0), got %v", p.back[0][0])
	}
}
