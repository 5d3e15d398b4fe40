package pool

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_Basic(t *testing.T) {
	bb := NewByteBuffer(16)
	require.Equal(t, 0, bb.Len())
	require.Equal(t, 16, bb.Cap())

	bb.MustWrite([]byte("hello"))
	require.Equal(t, 5, bb.Len())
	require.Equal(t, []byte("hello"), bb.Bytes())

	bb.MustWriteByte(' ')
	bb.MustWrite([]byte("world"))
	require.Equal(t, "hello world", string(bb.Bytes()))

	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.GreaterOrEqual(t, bb.Cap(), 16)
}

func TestByteBufferPool_Reuse(t *testing.T) {
	p := NewByteBufferPool(32, 1024)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("stale data"))
	p.Put(bb)

	reused := p.Get()
	require.Equal(t, 0, reused.Len(), "pooled buffer must come back reset")
	p.Put(reused)

	// Nil put must not panic
	p.Put(nil)
}

func TestByteBufferPool_MaxThreshold(t *testing.T) {
	p := NewByteBufferPool(32, 64)

	bb := p.Get()
	bb.MustWrite([]byte(strings.Repeat("x", 128)))
	require.Greater(t, bb.Cap(), 64)

	// Oversized buffers are dropped instead of pooled; the next Get still works.
	p.Put(bb)
	next := p.Get()
	require.NotNil(t, next)
	require.Equal(t, 0, next.Len())
}

func TestDefaultPools(t *testing.T) {
	eb := GetElementBuffer()
	require.NotNil(t, eb)
	require.Equal(t, 0, eb.Len())
	eb.MustWrite([]byte("element"))
	PutElementBuffer(eb)

	ob := GetOutputBuffer()
	require.NotNil(t, ob)
	require.Equal(t, 0, ob.Len())
	PutOutputBuffer(ob)

	PutElementBuffer(nil)
	PutOutputBuffer(nil)
}
