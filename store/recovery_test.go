package store

import (
	"strings"
	"testing"

	"github.com/arloliu/logfs/flash"
	"github.com/stretchr/testify/require"
)

// reopen builds a fresh Log (with its own cold cache) over the same
// device, as after a reboot.
func reopen(t *testing.T, dev *flash.MemDevice, opts ...Option) *Log {
	t.Helper()

	l, err := New(dev, opts...)
	require.NoError(t, err)
	require.NoError(t, l.Init())

	return l
}

func TestRecovery_EmptyLog(t *testing.T) {
	dev, l := newTestLog(t)
	require.NoError(t, l.Init())

	r := reopen(t, dev)
	require.Equal(t, l.DataStart(), r.DataEnd())
}

func TestRecovery_RowsAndSchema(t *testing.T) {
	dev, l := newTestLog(t)

	require.NoError(t, l.BeginRow())
	require.NoError(t, l.LogData("a", "1"))
	require.NoError(t, l.EndRow())
	require.NoError(t, l.BeginRow())
	require.NoError(t, l.LogData("a", "2"))
	require.NoError(t, l.LogData("b", "3"))
	require.NoError(t, l.EndRow())

	r := reopen(t, dev)

	// The exact data end is recovered even though no journal
	// checkpoint was ever recorded for these few bytes.
	require.Equal(t, l.DataEnd(), r.DataEnd())

	// The column list is rebuilt from flash: a new row uses the same
	// schema without re-emitting a header line.
	require.NoError(t, r.BeginRow())
	require.NoError(t, r.LogData("a", "4"))
	require.NoError(t, r.LogData("b", "5"))
	require.NoError(t, r.EndRow())

	require.Equal(t, "a\n1\na,b\n2,3\n4,5\n", string(dataRegion(t, dev, r)))
}

func TestRecovery_AfterCheckpoint(t *testing.T) {
	dev, l := newTestLog(t)
	require.NoError(t, l.Init())

	// Cross several cache block boundaries, then a little more.
	require.NoError(t, l.LogString(strings.Repeat("x", 3000)))
	require.NoError(t, l.LogString("tail\n"))

	r := reopen(t, dev)
	require.Equal(t, l.DataEnd(), r.DataEnd())
}

func TestRecovery_CrashMidData(t *testing.T) {
	dev, l := newTestLog(t)
	require.NoError(t, l.Init())
	require.NoError(t, l.LogString("first\n"))

	// Power fails 600 bytes into the next append: no journal entry was
	// due yet, so recovery must find the end by scanning.
	dev.CrashAfter(600)
	require.NoError(t, l.LogString(strings.Repeat("y", 900)))
	dev.CrashAfter(-1)

	r := reopen(t, dev)
	require.Equal(t, l.DataStart()+6+600, r.DataEnd())
}

func TestRecovery_CrashDropsJournalEntry(t *testing.T) {
	dev, l := newTestLog(t)
	require.NoError(t, l.Init())

	// The append below crosses a cache block boundary, so it writes
	// 1100 data bytes and then the journal entry; cut power after the
	// data lands but before the journal write.
	dev.CrashAfter(1100)
	require.NoError(t, l.LogString(strings.Repeat("z", 1100)))
	dev.CrashAfter(-1)

	// Only the untouched journal slot from formatting remains; the
	// byte-by-byte scan past the empty checkpoint recovers every byte.
	r := reopen(t, dev)
	require.Equal(t, l.DataStart()+1100, r.DataEnd())
}

func TestRecovery_CrashBetweenJournalWrites(t *testing.T) {
	dev, l := newTestLog(t)
	require.NoError(t, l.Init())

	// First checkpoint completes.
	require.NoError(t, l.LogString(strings.Repeat("a", 1100)))

	// The second append records its checkpoint but crashes before the
	// previous entry is invalidated, leaving two live entries. The
	// recovery walk keeps processing to the last valid one.
	dev.CrashAfter(1100 + JournalEntrySize)
	require.NoError(t, l.LogString(strings.Repeat("b", 1100)))
	dev.CrashAfter(-1)

	r := reopen(t, dev)
	require.Equal(t, l.DataStart()+2200, r.DataEnd())
}

func TestRecovery_FullLogStaysValid(t *testing.T) {
	dev := flash.NewMemDevice(1024, 8)
	l, err := New(dev)
	require.NoError(t, err)
	require.NoError(t, l.Init())

	for l.LogString(strings.Repeat("f", 500)) == nil {
	}
	require.True(t, l.IsFull())

	// A full log is still a valid, loadable store.
	r := reopen(t, dev)
	require.Equal(t, l.DataEnd(), r.DataEnd())
}

func TestRecovery_JournalWrap(t *testing.T) {
	// Small cache blocks make checkpoints frequent: one journal page
	// holds 128 entries, and the 160 appends below record one
	// checkpoint each, so the head wraps around.
	opts := []Option{WithJournalPages(1), WithCacheBlockSize(256)}
	dev, l := newTestLog(t, opts...)

	require.NoError(t, l.Init())

	payload := strings.Repeat("w", 700)
	for i := 0; i < 160; i++ {
		require.NoError(t, l.LogString(payload))
	}

	r := reopen(t, dev, opts...)
	require.Equal(t, l.DataEnd(), r.DataEnd())

	require.Len(t, liveJournalEntries(t, dev, l), 1)
}
