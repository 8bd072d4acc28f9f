// Package joypad implements the P1 (FF00) register and the §6 joypad
// source hook: eight level-triggered buttons, polled by the console
// through memory reads, with edge-triggered JOYPAD interrupts.
package joypad

import "gbcore/internal/interrupt"

// Button identifies one of the eight physical buttons.
type Button uint8

const (
	A Button = iota
	B
	Select
	Start
	Right
	Left
	Up
	Down
)

// Controller holds the live button state and the P1 select lines.
type Controller struct {
	// pressed[i] is true while Button(i) is held down.
	pressed [8]bool

	selectButtons   bool // P1 bit 5 cleared selects A/B/Select/Start
	selectDirection bool // P1 bit 4 cleared selects Right/Left/Up/Down

	lastLow uint8 // low nibble read last poll, for edge detection

	irq *interrupt.Controller
}

// New returns a Controller wired to raise JOYPAD interrupts on irq.
func New(irq *interrupt.Controller) *Controller {
	return &Controller{irq: irq, lastLow: 0x0F}
}

// Set updates the level of a single button; this is the §6 joypad
// source hook — the host shell calls it from keyboard/controller events.
func (c *Controller) Set(b Button, down bool) {
	c.pressed[b] = down
	c.poll()
}

func (c *Controller) nibble() uint8 {
	n := uint8(0x0F)
	if !c.selectButtons {
		n = clearIf(n, 0, c.pressed[A])
		n = clearIf(n, 1, c.pressed[B])
		n = clearIf(n, 2, c.pressed[Select])
		n = clearIf(n, 3, c.pressed[Start])
	}
	if !c.selectDirection {
		n = clearIf(n, 0, c.pressed[Right])
		n = clearIf(n, 1, c.pressed[Left])
		n = clearIf(n, 2, c.pressed[Up])
		n = clearIf(n, 3, c.pressed[Down])
	}
	return n
}

func clearIf(n uint8, bit uint8, cond bool) uint8 {
	if cond {
		return n &^ (1 << bit)
	}
	return n
}

// poll recomputes the select-line-gated nibble and raises JOYPAD on any
// bit's high-to-low transition, per SPEC_FULL.md §12.
func (c *Controller) poll() {
	if c.selectButtons && c.selectDirection {
		return
	}
	n := c.nibble()
	if c.lastLow&^n != 0 {
		c.irq.Request(flagJoypad)
	}
	c.lastLow = n
}

const flagJoypad uint8 = 1 << 4

// Read returns the P1 register value.
func (c *Controller) Read() uint8 {
	v := c.nibble() | 0xC0
	if c.selectButtons {
		v |= 0x20
	}
	if c.selectDirection {
		v |= 0x10
	}
	return v
}

// Write updates the P1 select lines (bits 0-3 are read-only from the
// CPU's perspective).
func (c *Controller) Write(v uint8) {
	c.selectButtons = v&0x20 != 0
	c.selectDirection = v&0x10 != 0
	c.poll()
}
