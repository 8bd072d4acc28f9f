package gameboy

import (
	"testing"

	"gbcore/internal/joypad"
)

func TestNewDegradesGracefullyOnBadROM(t *testing.T) {
	rom := make([]byte, 0x8000) // all zero: fails the Nintendo logo check
	console, err := New(rom)
	if err != nil {
		t.Fatalf("expected New to degrade rather than fail outright, got %v", err)
	}
	if console.CPU == nil || console.MMU == nil || console.PPU == nil {
		t.Fatalf("expected a fully wired console even with an invalid cartridge")
	}
}

func TestFrameAdvancesPastOneScanlineBudget(t *testing.T) {
	rom := make([]byte, 0x8000)
	console, err := New(rom)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_ = console.Frame()
	if console.cycles < cyclesPerFrame {
		t.Fatalf("expected at least one frame's worth of cycles to have elapsed, got %d", console.cycles)
	}
}

func TestPressSetsJoypadState(t *testing.T) {
	rom := make([]byte, 0x8000)
	console, err := New(rom)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	console.Press(joypad.A, true)
	console.Joypad.Write(0x10) // select buttons
	if console.Joypad.Read()&0x01 != 0 {
		t.Fatalf("expected Press to be reflected through to the joypad controller")
	}
}
