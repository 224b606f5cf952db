// Package export recovers the CSV payload from a captured log image,
// using the same parse the embedded JavaScript viewer performs, and
// packages it into compressed, digest-stamped snapshots.
//
// A "captured image" is the host's view of the device: the bytes of the
// MY_DATA.HTM mass-storage file, or a raw dump of the flash region.
package export

import (
	"bytes"
	"fmt"

	"github.com/arloliu/logfs/errs"
	"github.com/arloliu/logfs/store"
)

// journalOffset is where journal entries begin, relative to the start
// of the metadata region: one flash page after it.
const journalOffset = 1024

// Dump is the parsed content of a captured log image.
type Dump struct {
	// Version is the 17-character store identity string.
	Version string
	// DataStart and LogEnd are the absolute region boundaries recorded
	// in the metadata.
	DataStart uint32
	LogEnd    uint32
	// CSV is the recovered payload: the header line replay followed by
	// the data rows, exactly as appended on the device.
	CSV []byte
}

// ParseImage parses a captured log image the way the embedded viewer
// does: locate the metadata after the second FS_START marker, validate
// the version string, read the hex boundary fields, walk the journal
// for the last checkpoint and scan forward to the end-of-data sentinel.
//
// The viewer stops at the non-breaking-space byte 0xA0 presented by the
// host; a raw flash dump shows erased bytes as 0xFF instead, so both
// terminate the scan.
func ParseImage(img []byte) (*Dump, error) {
	marker := []byte(store.Version)

	// The metadata region begins after the second occurrence of the
	// FS_START marker; the first lives inside the viewer script.
	metaStart := metadataOffset(img)
	if metaStart < 0 {
		return nil, fmt.Errorf("no FS_START marker: %w", errs.ErrNotPresent)
	}

	raw := img[metaStart:]
	if len(raw) < store.MetaSize {
		return nil, fmt.Errorf("metadata record: %w", errs.ErrImageTooShort)
	}
	if !bytes.Equal(raw[:len(marker)], marker) {
		return nil, fmt.Errorf("version mismatch: %w", errs.ErrNotPresent)
	}

	meta, err := store.ParseMetadata(raw[:store.MetaSize])
	if err != nil {
		return nil, err
	}

	// Normalize the absolute boundaries to offsets within raw.
	dataStart := int(meta.DataStart) - metaStart
	if dataStart <= journalOffset || dataStart > len(raw) {
		return nil, fmt.Errorf("data start 0x%08X: %w", meta.DataStart, errs.ErrImageTooShort)
	}

	// Walk the journal: the first entry that parses as hex is the live
	// checkpoint. Zeroed and erased entries do not parse.
	dataEnd := dataStart
	for off := journalOffset; off+store.JournalEntrySize <= dataStart; off += store.JournalEntrySize {
		if v, ok := parseEntry(raw[off : off+store.JournalEntrySize]); ok {
			dataEnd = dataStart + int(v)
			break
		}
	}
	if dataEnd > len(raw) {
		dataEnd = len(raw)
	}

	// The checkpoint is block-granular; scan forward to the sentinel.
	for dataEnd < len(raw) && raw[dataEnd] != 0xA0 && raw[dataEnd] != 0xFF {
		dataEnd++
	}

	return &Dump{
		Version:   string(raw[:len(marker)]),
		DataStart: meta.DataStart,
		LogEnd:    meta.LogEnd,
		CSV:       raw[dataStart:dataEnd],
	}, nil
}

// metadataOffset returns the offset just past the second FS_START
// marker, or -1.
func metadataOffset(img []byte) int {
	marker := []byte("<!--FS_START")

	first := bytes.Index(img, marker)
	if first < 0 {
		return -1
	}

	rest := first + len(marker)
	second := bytes.Index(img[rest:], marker)
	if second < 0 {
		return -1
	}

	return rest + second + len(marker)
}

// parseEntry decodes one journal entry. Only an entry of exactly eight
// hex digits is a live checkpoint; anything else (zeroed, erased) is
// skipped, mirroring the viewer's NaN test.
func parseEntry(e []byte) (uint32, bool) {
	var v uint32
	for _, c := range e {
		switch {
		case c >= '0' && c <= '9':
			v = v<<4 | uint32(c-'0')
		case c >= 'A' && c <= 'F':
			v = v<<4 | uint32(c-'A'+10)
		case c >= 'a' && c <= 'f':
			v = v<<4 | uint32(c-'a'+10)
		default:
			return 0, false
		}
	}

	return v, true
}

// Rows splits the CSV payload into lines, dropping the trailing empty
// fragment after the final newline.
func (d *Dump) Rows() []string {
	if len(d.CSV) == 0 {
		return nil
	}

	lines := bytes.Split(d.CSV, []byte{'\n'})
	out := make([]string, 0, len(lines))
	for _, ln := range lines {
		if len(ln) == 0 {
			continue
		}
		out = append(out, string(ln))
	}

	return out
}
