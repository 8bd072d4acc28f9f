package cartridge

import "time"

// SaveSink is the persistent-state sink spec.md §1 names as an external
// collaborator: the core journals every external-RAM write through it,
// but never opens a file itself. A default os.File-backed implementation
// lives in pkg/save, outside the core.
type SaveSink interface {
	// Load returns the previously persisted RAM image, or (nil, nil) if
	// none exists yet.
	Load() ([]byte, error)
	// WriteByte journals a single external-RAM byte update at offset.
	WriteByte(offset int, value uint8) error
	// LoadRTC/SaveRTC reload/persist the optional MBC3 real-time-clock
	// state. Where it is stored is up to the sink; the FileSink in
	// pkg/save keeps it in a separate file, not appended to the RAM image.
	LoadRTC() (*RTCState, error)
	SaveRTC(*RTCState) error
}

// RTCState is the serializable form of an MBC3 real-time clock: five
// current registers, five latched registers, and the host timestamp of
// the last save, per spec.md §6.
type RTCState struct {
	Current  [5]uint32
	Latched  [5]uint32
	SavedAt  time.Time
}
