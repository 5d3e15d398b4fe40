// Package pool provides pooled byte buffers for the splitter's element
// accumulation and output staging.
package pool

import "sync"

// ElementBufferDefaultSize is the default size of the ByteBuffer obtained from the pool.
const (
	ElementBufferDefaultSize  = 1024 * 4        // 4KiB, covers typical array elements
	ElementBufferMaxThreshold = 1024 * 1024     // 1MiB
	OutputBufferDefaultSize   = 1024 * 64       // 64KiB
	OutputBufferMaxThreshold  = 1024 * 1024 * 8 // 8MiB
)

// ByteBuffer is an append-only byte accumulator with amortized growth.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// MustWriteByte appends a single byte to the buffer.
func (bb *ByteBuffer) MustWriteByte(b byte) {
	bb.B = append(bb.B, b)
}

// ByteBufferPool is a pool of ByteBuffers to minimize allocations.
//
// It uses sync.Pool internally to manage the buffers.
// The pool can be configured with a maximum size threshold to avoid retaining
// overly large buffers that could lead to memory bloat.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int // Optional maximum size threshold for buffers
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		// Discard overly large buffers to prevent memory bloat
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	elementDefaultPool = NewByteBufferPool(ElementBufferDefaultSize, ElementBufferMaxThreshold)
	outputDefaultPool  = NewByteBufferPool(OutputBufferDefaultSize, OutputBufferMaxThreshold)
)

// GetElementBuffer retrieves a ByteBuffer from the default element pool.
//
// Element buffers accumulate the raw bytes of one in-progress array element
// and are reset after every emitted element, so they stay hot in the pool.
func GetElementBuffer() *ByteBuffer {
	return elementDefaultPool.Get()
}

// PutElementBuffer returns a ByteBuffer to the default element pool.
func PutElementBuffer(bb *ByteBuffer) {
	elementDefaultPool.Put(bb)
}

// GetOutputBuffer retrieves a ByteBuffer from the default output pool.
func GetOutputBuffer() *ByteBuffer {
	return outputDefaultPool.Get()
}

// PutOutputBuffer returns a ByteBuffer to the default output pool.
func PutOutputBuffer(bb *ByteBuffer) {
	outputDefaultPool.Put(bb)
}
