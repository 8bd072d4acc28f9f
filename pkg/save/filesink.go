// Package save provides a default os.File-backed implementation of
// cartridge.SaveSink — the persistent-state sink spec.md §1 lists as an
// external collaborator of the core. Grounded on the teacher's
// pkg/emu.Save (temp-file-then-rename write path), simplified to a
// single journaled file per cartridge rather than a timestamped history.
package save

import (
	"encoding/gob"
	"os"
	"path/filepath"
	"time"

	"gbcore/internal/cartridge"
)

// FileSink persists one cartridge's external RAM to <dir>/<name>.sav and,
// for MBC3, its RTC state to <dir>/<name>.rtc.
type FileSink struct {
	path    string
	rtcPath string
}

// NewFileSink returns a FileSink rooted at dir, named for the given
// cartridge identity (typically cartridge.Digest(), hex-encoded by the
// caller).
func NewFileSink(dir, name string) (*FileSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileSink{
		path:    filepath.Join(dir, name+".sav"),
		rtcPath: filepath.Join(dir, name+".rtc"),
	}, nil
}

// Load implements cartridge.SaveSink.
func (f *FileSink) Load() ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	return data, err
}

// WriteByte implements cartridge.SaveSink by updating a single byte of
// the on-disk image in place, opening (and creating if needed) the file
// on every write.
func (f *FileSink) WriteByte(offset int, value uint8) error {
	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()
	_, err = file.WriteAt([]byte{value}, int64(offset))
	return err
}

// rtcRecord is the on-disk form of cartridge.RTCState: the five current
// and five latched registers plus the host timestamp in Unix seconds,
// written with encoding/gob to the .rtc file. It is not a fixed-width
// little-endian layout and is not appended to the .sav RAM image.
type rtcRecord struct {
	Current [5]uint32
	Latched [5]uint32
	SavedAt int64
}

// LoadRTC implements cartridge.SaveSink.
func (f *FileSink) LoadRTC() (*cartridge.RTCState, error) {
	file, err := os.Open(f.rtcPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var rec rtcRecord
	dec := gob.NewDecoder(file)
	if err := dec.Decode(&rec); err != nil {
		return nil, err
	}

	return &cartridge.RTCState{
		Current: rec.Current,
		Latched: rec.Latched,
		SavedAt: time.Unix(rec.SavedAt, 0),
	}, nil
}

// SaveRTC implements cartridge.SaveSink.
func (f *FileSink) SaveRTC(state *cartridge.RTCState) error {
	file, err := os.Create(f.rtcPath)
	if err != nil {
		return err
	}
	defer file.Close()

	savedAt := state.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now()
	}
	rec := rtcRecord{
		Current: state.Current,
		Latched: state.Latched,
		SavedAt: savedAt.Unix(),
	}
	return gob.NewEncoder(file).Encode(rec)
}
