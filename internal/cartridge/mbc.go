package cartridge

// MBC is the memory bank controller abstraction spec.md §9 recommends:
// "a narrow trait-like abstraction with four methods". ReadROM/WriteROM
// cover the 0000-7FFF range (where writes are control writes, never ROM
// mutation — invariant I3); ReadRAM/WriteRAM cover A000-BFFF.
type MBC interface {
	ReadROM(address uint16) uint8
	WriteROM(address uint16, value uint8)
	ReadRAM(address uint16) uint8
	WriteRAM(address uint16, value uint8)

	// RAM returns the live external RAM backing slice, for the battery
	// sidecar to mirror. The slice is empty if the cartridge has no RAM.
	RAM() []byte
}

// rtcCapable is implemented by MBCs (MBC3) that carry a real-time clock;
// the cartridge's battery sidecar serializes the extra state when present.
type rtcCapable interface {
	RTCState() (current, latched [5]uint32)
	LoadRTCState(current, latched [5]uint32)
}
