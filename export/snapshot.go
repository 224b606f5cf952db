package export

import (
	"fmt"

	"github.com/arloliu/logfs/compress"
	"github.com/arloliu/logfs/format"
	"github.com/arloliu/logfs/internal/hash"
)

// Snapshot is an archival unit built from a parsed dump: the CSV
// payload compressed with the chosen codec, stamped with an xxHash64
// digest of the uncompressed bytes for integrity checking.
type Snapshot struct {
	Compression format.CompressionType
	Digest      uint64
	Data        []byte
}

// Snapshot compresses the dump's CSV payload with the given codec.
func (d *Dump) Snapshot(ct format.CompressionType) (*Snapshot, error) {
	codec, err := compress.GetCodec(ct)
	if err != nil {
		return nil, err
	}

	data, err := codec.Compress(d.CSV)
	if err != nil {
		return nil, fmt.Errorf("compress snapshot: %w", err)
	}

	return &Snapshot{
		Compression: ct,
		Digest:      hash.Sum(d.CSV),
		Data:        data,
	}, nil
}

// Decode decompresses the snapshot and verifies the digest.
func (s *Snapshot) Decode() ([]byte, error) {
	codec, err := compress.GetCodec(s.Compression)
	if err != nil {
		return nil, err
	}

	csv, err := codec.Decompress(s.Data)
	if err != nil {
		return nil, fmt.Errorf("decompress snapshot: %w", err)
	}

	if got := hash.Sum(csv); got != s.Digest {
		return nil, fmt.Errorf("snapshot digest mismatch: got %016X want %016X", got, s.Digest)
	}

	return csv, nil
}
