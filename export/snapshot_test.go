package export

import (
	"testing"

	"github.com/arloliu/logfs/format"
	"github.com/arloliu/logfs/internal/hash"
	"github.com/arloliu/logfs/store"
	"github.com/stretchr/testify/require"
)

func testDump(t *testing.T) *Dump {
	t.Helper()

	img, _ := capture(t, func(l *store.Log) {
		for i := 0; i < 50; i++ {
			require.NoError(t, l.BeginRow())
			require.NoError(t, l.LogData("temperature", "21"))
			require.NoError(t, l.LogData("humidity", "48"))
			require.NoError(t, l.EndRow())
		}
	})

	dump, err := ParseImage(img)
	require.NoError(t, err)
	require.NotEmpty(t, dump.CSV)

	return dump
}

func TestSnapshot_RoundTrip(t *testing.T) {
	dump := testDump(t)

	codecs := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, ct := range codecs {
		t.Run(ct.String(), func(t *testing.T) {
			snap, err := dump.Snapshot(ct)
			require.NoError(t, err)
			require.Equal(t, ct, snap.Compression)
			require.Equal(t, hash.Sum(dump.CSV), snap.Digest)

			csv, err := snap.Decode()
			require.NoError(t, err)
			require.Equal(t, dump.CSV, csv)
		})
	}
}

func TestSnapshot_CompressesRepetitiveRows(t *testing.T) {
	dump := testDump(t)

	snap, err := dump.Snapshot(format.CompressionZstd)
	require.NoError(t, err)
	require.Less(t, len(snap.Data), len(dump.CSV))
}

func TestSnapshot_DigestMismatch(t *testing.T) {
	dump := testDump(t)

	snap, err := dump.Snapshot(format.CompressionNone)
	require.NoError(t, err)

	snap.Digest++
	_, err = snap.Decode()
	require.Error(t, err)
	require.Contains(t, err.Error(), "digest mismatch")
}

func TestSnapshot_InvalidCodec(t *testing.T) {
	dump := testDump(t)

	_, err := dump.Snapshot(format.CompressionType(0x7F))
	require.Error(t, err)
}
