package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTimeStampFormat_String(t *testing.T) {
	require.Equal(t, "None", TimeStampNone.String())
	require.Equal(t, "milliseconds", TimeStampMilliseconds.String())
	require.Equal(t, "seconds", TimeStampSeconds.String())
	require.Equal(t, "minutes", TimeStampMinutes.String())
	require.Equal(t, "hours", TimeStampHours.String())
	require.Equal(t, "Unknown", TimeStampFormat(7).String())
}

func TestTimeStampDays_AliasesHours(t *testing.T) {
	// Days intentionally carries the hours divisor and label.
	require.Equal(t, TimeStampHours, TimeStampDays)
	require.Equal(t, "hours", TimeStampDays.Unit())
}

func TestCompressionType_String(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Unknown", CompressionType(0xEE).String())
}
