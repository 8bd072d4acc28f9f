package joypad

import (
	"testing"

	"gbcore/internal/interrupt"
)

func TestReadReflectsSelectLines(t *testing.T) {
	c := New(interrupt.New())
	c.Write(0x10) // bit5=0 selects buttons, bit4=1 deselects directions
	c.Set(A, true)

	if c.Read()&0x01 != 0 {
		t.Fatalf("expected bit0 (A) clear when A is pressed and buttons selected")
	}
}

func TestButtonPressRaisesJoypadInterrupt(t *testing.T) {
	irq := interrupt.New()
	c := New(irq)
	c.Write(0x10) // select buttons

	c.Set(Start, true)

	if irq.Flag&0x10 == 0 {
		t.Fatalf("expected JOYPAD flag set after a button press, got IF=%#02x", irq.Flag)
	}
}

func TestBothSelectLinesHighNeverPolls(t *testing.T) {
	irq := interrupt.New()
	c := New(irq)
	c.Write(0x30) // both deselected

	c.Set(A, true)

	if irq.Flag != 0 {
		t.Fatalf("expected no interrupt while both select lines are high, got IF=%#02x", irq.Flag)
	}
}
