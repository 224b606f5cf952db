package store

import (
	"github.com/arloliu/logfs/errs"
)

// Version is the 17-character identity string at the start of the
// metadata record. On flash it is followed by a newline.
const Version = "UBIT_LOG_FS_V_001"

// Metadata field layout. The record is fixed-format ASCII so the
// embedded viewer can parse it by substring offsets: 18 bytes of
// version, then two 11-byte "0xHHHHHHHH\n" fields holding logEnd and
// dataStart, in that order.
const (
	MetaSize = 40

	metaVersionSize = len(Version) + 1 // trailing '\n'
	metaLogEndOff   = metaVersionSize
	metaDataStartOff = metaLogEndOff + metaHexFieldSize
	metaHexFieldSize = 11
)

// Metadata is the parsed filesystem header record.
type Metadata struct {
	LogEnd    uint32
	DataStart uint32
}

// Bytes serializes the metadata record into its 40-byte on-flash form.
func (m Metadata) Bytes() []byte {
	b := make([]byte, 0, MetaSize)
	b = append(b, Version...)
	b = append(b, '\n')
	b = appendHexField(b, m.LogEnd)
	b = appendHexField(b, m.DataStart)

	return b
}

// ParseMetadata parses the 40-byte metadata record. The hex fields are
// decoded with strtoul semantics, so corrupt or erased fields decode as
// zero and fail the caller's range validation rather than erroring here.
func ParseMetadata(data []byte) (Metadata, error) {
	if len(data) < MetaSize {
		return Metadata{}, errs.ErrInvalidMetadata
	}
	if string(data[:len(Version)]) != Version {
		return Metadata{}, errs.ErrInvalidMetadata
	}

	return Metadata{
		LogEnd:    parseHex(data[metaLogEndOff : metaLogEndOff+metaHexFieldSize-1]),
		DataStart: parseHex(data[metaDataStartOff : metaDataStartOff+metaHexFieldSize-1]),
	}, nil
}

// appendHexField appends "0xHHHHHHHH\n" with 8 uppercase nibbles.
func appendHexField(b []byte, v uint32) []byte {
	b = append(b, '0', 'x')
	b = appendHex32(b, v)

	return append(b, '\n')
}

// appendHex32 appends the 8-nibble uppercase hexadecimal form of v.
func appendHex32(b []byte, v uint32) []byte {
	for sh := 28; sh >= 0; sh -= 4 {
		d := byte(v>>uint(sh)) & 0xF
		if d > 9 {
			b = append(b, 'A'+d-10)
		} else {
			b = append(b, '0'+d)
		}
	}

	return b
}

// parseHex decodes a hexadecimal prefix of b the way strtoul(base 16)
// does: leading whitespace is skipped, an optional 0x prefix is
// accepted, and decoding stops at the first non-hex byte. An empty
// prefix decodes as zero.
func parseHex(b []byte) uint32 {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == '\t' || b[i] == '\n' || b[i] == '\r') {
		i++
	}
	if i+1 < len(b) && b[i] == '0' && (b[i+1] == 'x' || b[i+1] == 'X') {
		i += 2
	}

	var v uint32
	for ; i < len(b); i++ {
		d := hexDigit(b[i])
		if d < 0 {
			break
		}
		v = v<<4 | uint32(d)
	}

	return v
}

func hexDigit(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}
