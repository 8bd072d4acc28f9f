package cartridge

import "testing"

func validROM(romType Type, romSizeCode, ramSizeCode uint8) []byte {
	rom := make([]byte, 0x8000)
	copy(rom[0x104:0x134], nintendoLogo[:])
	copy(rom[0x134:], []byte("TESTGAME"))
	rom[0x147] = uint8(romType)
	rom[0x148] = romSizeCode
	rom[0x149] = ramSizeCode
	return rom
}

func TestFromBytesRejectsBadLogo(t *testing.T) {
	rom := make([]byte, 0x8000)
	rom[0x147] = uint8(TypeROM)

	c, err := FromBytes(rom, nil)
	if err == nil {
		t.Fatalf("expected an error for an invalid Nintendo logo")
	}
	if c.Valid() {
		t.Fatalf("expected an invalid cartridge on logo failure")
	}
}

func TestFromBytesParsesHeader(t *testing.T) {
	rom := validROM(TypeMBC1, 1, 2)
	c, err := FromBytes(rom, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.Valid() {
		t.Fatalf("expected a valid cartridge")
	}
	if c.Header().Title != "TESTGAME" {
		t.Fatalf("expected title TESTGAME, got %q", c.Header().Title)
	}
	if c.Header().ROMSize != 64*1024 {
		t.Fatalf("expected 64KiB ROM size, got %d", c.Header().ROMSize)
	}
	if c.Header().RAMSize != 8*1024 {
		t.Fatalf("expected 8KiB RAM size, got %d", c.Header().RAMSize)
	}
	if _, ok := c.mbc.(*mbc1); !ok {
		t.Fatalf("expected an mbc1 instance for TypeMBC1")
	}
}

func TestUnknownTypeFallsBackToMBC1(t *testing.T) {
	rom := validROM(Type(0x99), 0, 0)
	c, err := FromBytes(rom, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := c.mbc.(*mbc1); !ok {
		t.Fatalf("expected unknown cartridge type to fall back to MBC1")
	}
}

func TestNewInvalidReadsAllFF(t *testing.T) {
	c := NewInvalid()
	if c.Valid() {
		t.Fatalf("expected NewInvalid to report invalid")
	}
	if got := c.ReadROM(0x0000); got != 0xFF {
		t.Fatalf("expected 0xFF from invalid cartridge ROM, got %#02x", got)
	}
}
