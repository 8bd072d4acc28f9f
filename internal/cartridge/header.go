package cartridge

import "fmt"

// nintendoLogo is the fixed 48-byte reference bitmap stored at 0104-0133
// of every licensed ROM; spec.md §4.1 step 1 requires validating it.
var nintendoLogo = [48]byte{
	0xCE, 0xED, 0x66, 0x66, 0xCC, 0x0D, 0x00, 0x0B,
	0x03, 0x73, 0x00, 0x83, 0x00, 0x0C, 0x00, 0x0D,
	0x00, 0x08, 0x11, 0x1F, 0x88, 0x89, 0x00, 0x0E,
	0xDC, 0xCC, 0x6E, 0xE6, 0xDD, 0xDD, 0xD9, 0x99,
	0xBB, 0xBB, 0x67, 0x63, 0x6E, 0x0E, 0xEC, 0xCC,
	0xDD, 0xDC, 0x99, 0x9F, 0xBB, 0xB9, 0x33, 0x3E,
}

// Type is the MBC discriminator read from header byte 0147.
type Type uint8

const (
	TypeROM Type = 0x00

	TypeMBC1        Type = 0x01
	TypeMBC1RAM     Type = 0x02
	TypeMBC1RAMBatt Type = 0x03

	TypeMBC2     Type = 0x05
	TypeMBC2Batt Type = 0x06

	TypeMBC3TimerBatt     Type = 0x0F
	TypeMBC3TimerRAMBatt  Type = 0x10
	TypeMBC3              Type = 0x11
	TypeMBC3RAM            Type = 0x12
	TypeMBC3RAMBatt        Type = 0x13
)

func (t Type) String() string {
	switch t {
	case TypeROM:
		return "ROM"
	case TypeMBC1, TypeMBC1RAM, TypeMBC1RAMBatt:
		return "MBC1"
	case TypeMBC2, TypeMBC2Batt:
		return "MBC2"
	case TypeMBC3TimerBatt, TypeMBC3TimerRAMBatt, TypeMBC3, TypeMBC3RAM, TypeMBC3RAMBatt:
		return "MBC3"
	default:
		return fmt.Sprintf("unknown(%02X)", uint8(t))
	}
}

// hasBattery reports whether the cartridge type persists RAM.
func (t Type) hasBattery() bool {
	switch t {
	case TypeMBC1RAMBatt, TypeMBC2Batt, TypeMBC3TimerBatt, TypeMBC3TimerRAMBatt, TypeMBC3RAMBatt:
		return true
	}
	return false
}

// hasRTC reports whether the cartridge type includes an MBC3 real-time
// clock.
func (t Type) hasRTC() bool {
	return t == TypeMBC3TimerBatt || t == TypeMBC3TimerRAMBatt
}

// romSizeBytes maps header byte 0148 to a ROM size, per spec.md §6:
// code -> 32KiB * 2^code.
func romSizeBytes(code uint8) int {
	return 32 * 1024 << code
}

// ramSizeBytes maps header byte 0149 to an external RAM size, per
// spec.md §6's explicit table (codes beyond 4 are treated as 0, matching
// "Unknown types map to MBC1 as a best-effort fallback" in spirit: an
// unrecognized RAM code degrades to no RAM rather than guessing).
func ramSizeBytes(code uint8) int {
	sizes := [5]int{0, 2 * 1024, 8 * 1024, 32 * 1024, 128 * 1024}
	if int(code) >= len(sizes) {
		return 0
	}
	return sizes[code]
}

// Header is the parsed cartridge header (0100-014F).
type Header struct {
	Title      string
	ColorMode  bool // 0143: 80 or C0
	Type       Type
	ROMSize    int
	RAMSize    int
	LogoValid  bool
}

// parseHeader reads a Header out of a full ROM image. rom must be at
// least 0x150 bytes; callers check this before calling.
func parseHeader(rom []byte) Header {
	h := Header{
		LogoValid: validateLogo(rom),
		Type:      Type(rom[0x147]),
		ROMSize:   romSizeBytes(rom[0x148]),
		RAMSize:   ramSizeBytes(rom[0x149]),
	}

	switch rom[0x143] {
	case 0x80, 0xC0:
		h.ColorMode = true
	}

	title := make([]byte, 0, 15)
	for i := 0x134; i <= 0x142; i++ {
		b := rom[i]
		if b == 0x00 || b == 0x80 || b == 0xC0 {
			break
		}
		title = append(title, b)
	}
	h.Title = string(title)

	return h
}

func validateLogo(rom []byte) bool {
	if len(rom) < 0x134 {
		return false
	}
	for i, b := range nintendoLogo {
		if rom[0x104+i] != b {
			return false
		}
	}
	return true
}
