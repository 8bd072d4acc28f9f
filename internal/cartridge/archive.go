package cartridge

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/bodgit/sevenzip"
)

// LoadArchive opens a .7z archive (a common distribution format for ROM
// dumps) and builds a Cartridge from its first .gb/.gbc entry, per
// SPEC_FULL.md §11's sevenzip wiring.
func LoadArchive(path string, sink SaveSink) (*Cartridge, error) {
	r, err := sevenzip.OpenReader(path)
	if err != nil {
		return NewInvalid(), fmt.Errorf("cartridge: opening archive: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		lower := strings.ToLower(f.Name)
		if !strings.HasSuffix(lower, ".gb") && !strings.HasSuffix(lower, ".gbc") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return NewInvalid(), fmt.Errorf("cartridge: reading %s: %w", f.Name, err)
		}
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, rc); err != nil {
			rc.Close()
			return NewInvalid(), fmt.Errorf("cartridge: reading %s: %w", f.Name, err)
		}
		rc.Close()
		return FromBytes(buf.Bytes(), sink)
	}

	return NewInvalid(), fmt.Errorf("cartridge: no .gb/.gbc entry in archive")
}
