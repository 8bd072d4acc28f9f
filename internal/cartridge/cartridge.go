// Package cartridge implements spec.md §4.1: ROM header parsing, the
// memory bank controller hierarchy, and battery-backed save RAM.
package cartridge

import (
	"fmt"
	"os"
	"time"

	"github.com/cespare/xxhash"
)

// Cartridge couples a parsed Header to the MBC instance the header
// selects, and owns the battery save sidecar when present.
type Cartridge struct {
	header Header
	mbc    MBC
	valid  bool

	sink SaveSink
}

// Load reads a ROM image from path and constructs a Cartridge, per
// spec.md §4.1. Data errors (missing file, undersized image, bad logo)
// are non-fatal: Load always returns a usable (possibly invalid)
// Cartridge; err is non-nil only to let the caller log what happened.
func Load(path string, sink SaveSink) (*Cartridge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return NewInvalid(), fmt.Errorf("cartridge: %w", err)
	}
	return FromBytes(data, sink)
}

// FromBytes builds a Cartridge directly from an in-memory ROM image,
// shared by Load and the 7z archive loader (pkg uses this to avoid a
// round-trip through a temp file).
func FromBytes(rom []byte, sink SaveSink) (*Cartridge, error) {
	if len(rom) < 0x150 {
		return NewInvalid(), fmt.Errorf("cartridge: rom too small (%d bytes)", len(rom))
	}

	header := parseHeader(rom)
	if !header.LogoValid {
		return NewInvalid(), fmt.Errorf("cartridge: nintendo logo mismatch")
	}

	c := &Cartridge{header: header, valid: true, sink: sink}
	c.mbc = newMBC(rom, header)

	if header.Type.hasBattery() && sink != nil {
		c.sink = sink
		if saved, err := sink.Load(); err == nil && saved != nil {
			copy(c.mbc.RAM(), saved)
		}
		if rc, ok := c.mbc.(rtcCapable); ok {
			if state, err := sink.LoadRTC(); err == nil && state != nil {
				rc.LoadRTCState(state.Current, state.Latched)
			}
		}
	}

	return c, nil
}

// newMBC instantiates the MBC matching header.Type. Unknown types map to
// MBC1 as a best-effort fallback, per spec.md §4.1 step 3.
func newMBC(rom []byte, header Header) MBC {
	switch header.Type {
	case TypeROM:
		return newNoMBC(rom, header.RAMSize)
	case TypeMBC1, TypeMBC1RAM, TypeMBC1RAMBatt:
		return newMBC1(rom, header.RAMSize)
	case TypeMBC2, TypeMBC2Batt:
		return newMBC2(rom)
	case TypeMBC3, TypeMBC3RAM, TypeMBC3RAMBatt, TypeMBC3TimerBatt, TypeMBC3TimerRAMBatt:
		return newMBC3(rom, header.RAMSize, header.Type.hasRTC())
	default:
		return newMBC1(rom, header.RAMSize)
	}
}

// NewInvalid returns a Cartridge that reads FF everywhere and discards
// writes, for the "no cartridge / BIOS only" degraded path of §4.1's
// failure semantics.
func NewInvalid() *Cartridge {
	blank := make([]byte, 0x8000)
	for i := range blank {
		blank[i] = 0xFF
	}
	return &Cartridge{
		mbc:   newNoMBC(blank, 0),
		valid: false,
	}
}

// Valid reports whether the cartridge passed header/logo validation.
func (c *Cartridge) Valid() bool { return c.valid }

// Header returns the parsed ROM header.
func (c *Cartridge) Header() Header { return c.header }

// Digest returns a stable hash of the cartridge's identity, usable as a
// save-file key or a debug correlation id. It hashes the header title
// and cartridge type, not the ROM contents, so two ROMs with the same
// title and type share a digest (xxhash is the teacher-pack dependency
// SPEC_FULL.md §11 names for this).
func (c *Cartridge) Digest() uint64 {
	return xxhash.Sum64String(c.header.Title) ^ uint64(c.header.Type)<<32
}

// ReadROM dispatches a read in 0000-7FFF to the MBC.
func (c *Cartridge) ReadROM(address uint16) uint8 {
	return c.mbc.ReadROM(address)
}

// WriteROM dispatches a write in 0000-7FFF as an MBC control write
// (invariant I3: this never mutates ROM bytes).
func (c *Cartridge) WriteROM(address uint16, value uint8) {
	c.mbc.WriteROM(address, value)
}

// ReadRAM dispatches a read in A000-BFFF to the MBC.
func (c *Cartridge) ReadRAM(address uint16) uint8 {
	return c.mbc.ReadRAM(address)
}

// WriteRAM dispatches a write in A000-BFFF to the MBC, then journals the
// resulting byte to the save sink if the cartridge is battery-backed.
func (c *Cartridge) WriteRAM(address uint16, value uint8) {
	c.mbc.WriteRAM(address, value)
	if c.sink == nil || !c.header.Type.hasBattery() {
		return
	}
	ram := c.mbc.RAM()
	off := int(address) - 0xA000
	switch m := c.mbc.(type) {
	case *mbc1:
		off = m.ramOffset(address)
	case *mbc2:
		off &= 0x1FF
	case *mbc3:
		if m.isRTCSelected() {
			return
		}
		off += int(m.ramBank) * 0x2000
	}
	if off >= 0 && off < len(ram) {
		_ = c.sink.WriteByte(off, ram[off])
	}
}

// Tick advances the optional real-time clock by a wall-clock duration;
// a no-op for cartridges without an MBC3+RTC.
func (c *Cartridge) Tick(elapsed time.Duration) {
	if rtc, ok := c.mbc.(*mbc3); ok {
		rtc.Advance(elapsed)
	}
}

// PersistRTC flushes the RTC state to the save sink, when present.
func (c *Cartridge) PersistRTC() {
	if c.sink == nil {
		return
	}
	if rc, ok := c.mbc.(rtcCapable); ok {
		current, latched := rc.RTCState()
		_ = c.sink.SaveRTC(&RTCState{Current: current, Latched: latched})
	}
}
