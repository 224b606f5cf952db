package cache

import (
	"testing"

	"github.com/arloliu/logfs/flash"
	"github.com/stretchr/testify/require"
)

func newCachedDevice(t *testing.T) (*flash.MemDevice, *BlockCache) {
	t.Helper()
	dev := flash.NewMemDevice(1024, 16)

	return dev, New(dev, 0, 0)
}

func TestNew_Defaults(t *testing.T) {
	_, c := newCachedDevice(t)

	require.Equal(t, uint32(DefaultBlockSize), c.BlockSize())
}

func TestBlockCache_WriteThrough(t *testing.T) {
	dev, c := newCachedDevice(t)

	require.NoError(t, c.Write(100, []byte("hello")))

	// The write is durable on the device, not just cached.
	buf := make([]byte, 5)
	require.NoError(t, dev.Read(buf, 100))
	require.Equal(t, []byte("hello"), buf)

	// And readable back through the cache.
	require.NoError(t, c.Read(buf, 100))
	require.Equal(t, []byte("hello"), buf)
}

func TestBlockCache_ReadSpansBlocks(t *testing.T) {
	_, c := newCachedDevice(t)

	payload := make([]byte, 3000)
	for i := range payload {
		payload[i] = byte(i % 251)
	}
	require.NoError(t, c.Write(512, payload))

	got := make([]byte, 3000)
	require.NoError(t, c.Read(got, 512))
	require.Equal(t, payload, got)
}

func TestBlockCache_WriteReflectsDeviceSemantics(t *testing.T) {
	dev, c := newCachedDevice(t)

	// Preload the cache block, then write a value the flash cannot
	// fully program (bits may only clear). The cached copy must match
	// the device, not the requested value.
	require.NoError(t, c.Write(200, []byte{0xF0}))
	require.NoError(t, c.Write(200, []byte{0x0F}))

	buf := make([]byte, 1)
	require.NoError(t, c.Read(buf, 200))
	require.Equal(t, byte(0x00), buf[0])

	require.NoError(t, dev.Read(buf, 200))
	require.Equal(t, byte(0x00), buf[0])
}

func TestBlockCache_EraseInvalidates(t *testing.T) {
	dev, c := newCachedDevice(t)

	require.NoError(t, c.Write(1024, []byte{0x42}))

	// Erase the page on the device and invalidate the cache; a fresh
	// read must observe the erased state.
	c.Erase(1024)
	require.NoError(t, dev.Erase(1024))

	buf := make([]byte, 1)
	require.NoError(t, c.Read(buf, 1024))
	require.Equal(t, byte(0xFF), buf[0])
}

func TestBlockCache_EraseLeavesOtherPages(t *testing.T) {
	dev, c := newCachedDevice(t)

	require.NoError(t, c.Write(0, []byte{0x01}))
	require.NoError(t, c.Write(1024, []byte{0x02}))

	c.Erase(1024)
	require.NoError(t, dev.Erase(1024))

	// Page 0's cached block is untouched.
	buf := make([]byte, 1)
	require.NoError(t, c.Read(buf, 0))
	require.Equal(t, byte(0x01), buf[0])
}

func TestBlockCache_Clear(t *testing.T) {
	dev, c := newCachedDevice(t)

	require.NoError(t, c.Write(0, []byte{0x01}))

	// Mutate the device behind the cache's back; Clear must drop the
	// stale copy.
	require.NoError(t, dev.Erase(0))
	c.Clear()

	buf := make([]byte, 1)
	require.NoError(t, c.Read(buf, 0))
	require.Equal(t, byte(0xFF), buf[0])
}

func TestBlockCache_EvictionRoundRobin(t *testing.T) {
	_, c := newCachedDevice(t)

	// Touch more blocks than there are slots; every read must still
	// return the right data after evictions.
	for blk := uint32(0); blk < 8; blk++ {
		require.NoError(t, c.Write(blk*DefaultBlockSize, []byte{byte(blk)}))
	}

	buf := make([]byte, 1)
	for blk := uint32(0); blk < 8; blk++ {
		require.NoError(t, c.Read(buf, blk*DefaultBlockSize))
		require.Equal(t, byte(blk), buf[0])
	}
}
