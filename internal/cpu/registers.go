// Package cpu implements the Sharp LR35902 instruction set described in
// spec.md §4.4: register file, base and CB-prefixed opcode tables,
// interrupt dispatch, and HALT/STOP/double-speed sequencing.
package cpu

import "gbcore/pkg/bits"

// Flag bit positions within F, matching spec.md §3's ZNHC layout.
const (
	FlagZero      uint8 = 1 << 7
	FlagSubtract  uint8 = 1 << 6
	FlagHalfCarry uint8 = 1 << 5
	FlagCarry     uint8 = 1 << 4
)

// Registers holds the eight-bit register file. A and F (and the other
// pairs) are addressed as pairs through the AF/BC/DE/HL accessors below
// rather than via aliased pointers, per spec.md §9's design note.
type Registers struct {
	A, F uint8
	B, C uint8
	D, E uint8
	H, L uint8
}

func (r *Registers) AF() uint16 { return bits.Word(r.A, r.F&0xF0) }
func (r *Registers) BC() uint16 { return bits.Word(r.B, r.C) }
func (r *Registers) DE() uint16 { return bits.Word(r.D, r.E) }
func (r *Registers) HL() uint16 { return bits.Word(r.H, r.L) }

func (r *Registers) SetAF(v uint16) { r.A, r.F = bits.Hi(v), bits.Lo(v)&0xF0 }
func (r *Registers) SetBC(v uint16) { r.B, r.C = bits.Hi(v), bits.Lo(v) }
func (r *Registers) SetDE(v uint16) { r.D, r.E = bits.Hi(v), bits.Lo(v) }
func (r *Registers) SetHL(v uint16) { r.H, r.L = bits.Hi(v), bits.Lo(v) }

func (r *Registers) setFlag(flag uint8, on bool) {
	if on {
		r.F |= flag
	} else {
		r.F &^= flag
	}
	r.F &= 0xF0
}

func (r *Registers) flagSet(flag uint8) bool { return r.F&flag != 0 }

// zero sets FlagZero from whether v == 0, the common pattern after
// nearly every arithmetic and logic instruction.
func (r *Registers) zero(v uint8) { r.setFlag(FlagZero, v == 0) }
