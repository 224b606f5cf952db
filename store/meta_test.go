package store

import (
	"testing"

	"github.com/arloliu/logfs/errs"
	"github.com/stretchr/testify/require"
)

func TestMetadata_Bytes(t *testing.T) {
	m := Metadata{DataStart: 0x1400, LogEnd: 0x1FBFC}
	b := m.Bytes()

	require.Len(t, b, MetaSize)
	require.Equal(t, "UBIT_LOG_FS_V_001\n", string(b[:18]))
	// The viewer reads logEnd at offset 18 and dataStart at offset 29.
	require.Equal(t, "0x0001FBFC\n", string(b[18:29]))
	require.Equal(t, "0x00001400\n", string(b[29:40]))
}

func TestMetadata_RoundTrip(t *testing.T) {
	m := Metadata{DataStart: 0xDEADBEEF, LogEnd: 0x0000ABCD}

	parsed, err := ParseMetadata(m.Bytes())
	require.NoError(t, err)
	require.Equal(t, m, parsed)
}

func TestParseMetadata_Invalid(t *testing.T) {
	t.Run("too short", func(t *testing.T) {
		_, err := ParseMetadata([]byte("UBIT_LOG_FS_V_001\n"))
		require.ErrorIs(t, err, errs.ErrInvalidMetadata)
	})

	t.Run("erased flash", func(t *testing.T) {
		raw := make([]byte, MetaSize)
		for i := range raw {
			raw[i] = 0xFF
		}
		_, err := ParseMetadata(raw)
		require.ErrorIs(t, err, errs.ErrInvalidMetadata)
	})

	t.Run("zeroed", func(t *testing.T) {
		_, err := ParseMetadata(make([]byte, MetaSize))
		require.ErrorIs(t, err, errs.ErrInvalidMetadata)
	})
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want uint32
	}{
		{"prefixed", "0x00001400\n", 0x1400},
		{"bare digits", "00000400", 0x400},
		{"uppercase", "0xDEADBEEF", 0xDEADBEEF},
		{"lowercase", "cafe", 0xCAFE},
		{"leading space", "  0x10", 0x10},
		{"stops at non-hex", "12G4", 0x12},
		{"erased bytes decode as zero", "\xFF\xFF\xFF\xFF\xFF\xFF\xFF\xFF", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, parseHex([]byte(tt.in)))
		})
	}
}

func TestJournalEntry(t *testing.T) {
	require.Equal(t, []byte("00000400"), journalEntry(0x400))
	require.Equal(t, []byte("FFFFFFFF"), journalEntry(0xFFFFFFFF))

	require.True(t, containsOnly(filledEntry(0x00), 0x00))
	require.True(t, containsOnly(filledEntry(0xFF), 0xFF))
	require.False(t, containsOnly([]byte("00000400"), '0'))
}
