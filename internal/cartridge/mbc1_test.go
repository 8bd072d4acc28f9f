package cartridge

import "testing"

func makeROM(banks int) []byte {
	rom := make([]byte, banks*0x4000)
	for b := 0; b < banks; b++ {
		rom[b*0x4000] = uint8(b) // each bank's first byte identifies it
	}
	return rom
}

func TestMBC1BankZeroQuirk(t *testing.T) {
	m := newMBC1(makeROM(8), 0)

	m.WriteROM(0x2000, 0x00) // select bank 0, hardware remaps to 1
	if got := m.ReadROM(0x4000); got != 1 {
		t.Fatalf("expected bank-zero write to select bank 1, got bank %d", got)
	}

	m.WriteROM(0x2000, 0x03)
	if got := m.ReadROM(0x4000); got != 3 {
		t.Fatalf("expected bank 3 selected, got bank %d", got)
	}
}

func TestMBC1RAMModeBanksLowWindow(t *testing.T) {
	m := newMBC1(makeROM(128), 0)
	m.WriteROM(0x6000, 0x01) // RAM-select mode
	m.WriteROM(0x4000, 0x01) // bank2 = 1 -> physical bank 0x20 in low window

	if got := m.ReadROM(0x0000); got != 0x20 {
		t.Fatalf("expected RAM-mode low window to bank by bank2<<5 (0x20), got bank %d", got)
	}
}

func TestMBC1RAMDisabledReadsFF(t *testing.T) {
	m := newMBC1(makeROM(2), 0x2000)
	if got := m.ReadRAM(0xA000); got != 0xFF {
		t.Fatalf("expected 0xFF from disabled RAM, got %#02x", got)
	}

	m.WriteROM(0x0000, 0x0A) // enable RAM
	m.WriteRAM(0xA000, 0x42)
	if got := m.ReadRAM(0xA000); got != 0x42 {
		t.Fatalf("expected 0x42 from enabled RAM, got %#02x", got)
	}
}
