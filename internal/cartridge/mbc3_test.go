package cartridge

import (
	"testing"
	"time"
)

func TestMBC3RAMBanking(t *testing.T) {
	m := newMBC3(makeROM(4), 4*0x2000, false)
	m.WriteROM(0x0000, 0x0A) // enable RAM
	m.WriteROM(0x4000, 0x02) // select RAM bank 2

	m.WriteRAM(0xA000, 0x7B)
	if got := m.ReadRAM(0xA000); got != 0x7B {
		t.Fatalf("expected round-trip through RAM bank 2, got %#02x", got)
	}

	m.WriteROM(0x4000, 0x00)
	if got := m.ReadRAM(0xA000); got == 0x7B {
		t.Fatalf("expected bank 0 to be a distinct region from bank 2")
	}
}

func TestMBC3RTCLatchRequiresZeroThenOne(t *testing.T) {
	m := newMBC3(makeROM(2), 0, true)
	m.WriteROM(0x0000, 0x0A)
	m.rtcCurrent[rtcSeconds] = 30

	m.WriteROM(0x6000, 0x01) // a bare 1 without a preceding 0 does not latch
	m.WriteROM(0x4000, 0x08) // select the seconds register
	if got := m.ReadRAM(0xA000); got != 0 {
		t.Fatalf("expected unlatched read to reflect the (zero) latched snapshot, got %d", got)
	}

	m.WriteROM(0x6000, 0x00)
	m.WriteROM(0x6000, 0x01)
	if got := m.ReadRAM(0xA000); got != 30 {
		t.Fatalf("expected latched seconds register to read 30 after 0-then-1, got %d", got)
	}
}

func TestMBC3AdvanceCarriesIntoMinutesAndHours(t *testing.T) {
	m := newMBC3(makeROM(2), 0, true)
	m.rtcCurrent[rtcSeconds] = 50
	m.rtcCurrent[rtcMinutes] = 59
	m.rtcCurrent[rtcHours] = 23

	m.Advance(20 * time.Second)

	if m.rtcCurrent[rtcSeconds] != 10 {
		t.Fatalf("expected seconds to wrap to 10, got %d", m.rtcCurrent[rtcSeconds])
	}
	if m.rtcCurrent[rtcMinutes] != 0 {
		t.Fatalf("expected minutes to wrap to 0, got %d", m.rtcCurrent[rtcMinutes])
	}
	if m.rtcCurrent[rtcHours] != 0 {
		t.Fatalf("expected hours to wrap to 0, got %d", m.rtcCurrent[rtcHours])
	}
	if m.rtcCurrent[rtcDayLow] != 1 {
		t.Fatalf("expected the day counter to advance by 1, got %d", m.rtcCurrent[rtcDayLow])
	}
}

func TestMBC3AdvanceSetsDayCarryOnOverflow(t *testing.T) {
	m := newMBC3(makeROM(2), 0, true)
	m.rtcCurrent[rtcDayLow] = 0xFF
	m.rtcCurrent[rtcDayHighFlags] = 0x01 // day bit 8 set -> day counter at 0x1FF

	m.Advance(24 * time.Hour)

	if m.rtcCurrent[rtcDayHighFlags]&0x80 == 0 {
		t.Fatalf("expected the day-carry flag to be set after overflowing past 511 days")
	}
}

func TestMBC3HaltedClockDoesNotAdvance(t *testing.T) {
	m := newMBC3(makeROM(2), 0, true)
	m.rtcCurrent[rtcDayHighFlags] = 0x40 // halt bit
	m.rtcCurrent[rtcSeconds] = 5

	m.Advance(time.Hour)

	if m.rtcCurrent[rtcSeconds] != 5 {
		t.Fatalf("expected a halted clock to stay frozen, got seconds=%d", m.rtcCurrent[rtcSeconds])
	}
}
