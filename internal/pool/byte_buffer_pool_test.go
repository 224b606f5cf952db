package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(16)

	bb.MustWriteString("a,b")
	bb.MustWriteByte(',')
	bb.MustWrite([]byte("c\n"))

	require.Equal(t, "a,b,c\n", string(bb.Bytes()))
	require.Equal(t, 6, bb.Len())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.MustWriteString("row data")

	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.Equal(t, 16, cap(bb.B))
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(8)

	bb.Grow(1000)
	require.GreaterOrEqual(t, cap(bb.B), 1000)

	// Growing within capacity is a no-op.
	c := cap(bb.B)
	bb.Grow(10)
	require.Equal(t, c, cap(bb.B))
}

func TestByteBufferPool_Reuse(t *testing.T) {
	p := NewByteBufferPool(32, 1024)

	bb := p.Get()
	bb.MustWriteString("data")
	p.Put(bb)

	got := p.Get()
	require.Equal(t, 0, got.Len())
}

func TestByteBufferPool_DiscardsOversized(t *testing.T) {
	p := NewByteBufferPool(32, 64)

	bb := p.Get()
	bb.Grow(1024)
	p.Put(bb) // over threshold: dropped, no panic

	require.NotNil(t, p.Get())
}

func TestDefaultRowPool(t *testing.T) {
	bb := GetRowBuffer()
	require.NotNil(t, bb)
	bb.MustWriteString("k,v\n")
	PutRowBuffer(bb)
	PutRowBuffer(nil)
}
