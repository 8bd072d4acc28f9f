package save

import (
	"testing"
	"time"

	"gbcore/internal/cartridge"
)

func TestFileSinkLoadMissingReturnsNil(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewFileSink(dir, "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := sink.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data != nil {
		t.Fatalf("expected nil data for a save file that doesn't exist yet, got %v", data)
	}
}

func TestFileSinkWriteByteThenLoadRoundTrips(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewFileSink(dir, "game")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := sink.WriteByte(3, 0x7E); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := sink.WriteByte(0, 0x01); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := sink.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) < 4 || data[3] != 0x7E || data[0] != 0x01 {
		t.Fatalf("expected persisted bytes at their offsets, got %v", data)
	}
}

func TestFileSinkRTCRoundTrips(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewFileSink(dir, "game")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, err := sink.LoadRTC(); err != nil || got != nil {
		t.Fatalf("expected no RTC state before any save, got %v err %v", got, err)
	}

	want := &cartridge.RTCState{
		Current: [5]uint32{1, 2, 3, 4, 5},
		Latched: [5]uint32{5, 4, 3, 2, 1},
		SavedAt: time.Unix(1700000000, 0),
	}
	if err := sink.SaveRTC(want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := sink.LoadRTC()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Current != want.Current || got.Latched != want.Latched {
		t.Fatalf("expected RTC registers to round-trip, got %+v want %+v", got, want)
	}
	if !got.SavedAt.Equal(want.SavedAt) {
		t.Fatalf("expected SavedAt to round-trip, got %v want %v", got.SavedAt, want.SavedAt)
	}
}
