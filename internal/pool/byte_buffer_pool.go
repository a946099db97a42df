// Package pool provides pooled scratch buffers. The writer's convenience
// wrapper (item.Marshal) draws from the scratch pool; no package in this
// module draws from the bundle pool.
package pool

import (
	"io"
	"sync"
)

// Default and maximum sizes for the two pools this package keeps.
//
// ScratchBufferDefaultSize sizes buffers used to marshal a single value
// (item.Marshal); BundleBufferDefaultSize sizes the larger buffers of the
// bundle pool (GetBundleBuffer).
const (
	ScratchBufferDefaultSize  = 1024 * 4        // 4KiB
	ScratchBufferMaxThreshold = 1024 * 128      // 128KiB
	BundleBufferDefaultSize   = 1024 * 256      // 256KiB
	BundleBufferMaxThreshold  = 1024 * 1024 * 16 // 16MiB
)

// ByteBuffer is a growable byte slice wrapper designed for pooled reuse.
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

// Grow ensures the buffer can hold requiredBytes more bytes without reallocating.
//
// Growth strategy:
//   - For small buffers, grow by the pool's default size to minimize reallocations.
//   - For larger buffers, grow by 25% of current capacity.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := ScratchBufferDefaultSize
	if cap(bb.B) > 4*ScratchBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}

	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends the contents of data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.Grow(len(data))
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool is a sync.Pool-backed pool of ByteBuffers.
//
// It discards overly large buffers on Put to avoid retaining a memory spike
// after one outsized value passes through.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize, maxThreshold int) *ByteBufferPool {
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
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	scratchPool = NewByteBufferPool(ScratchBufferDefaultSize, ScratchBufferMaxThreshold)
	bundlePool  = NewByteBufferPool(BundleBufferDefaultSize, BundleBufferMaxThreshold)
)

// GetScratchBuffer retrieves a ByteBuffer from the default single-value pool.
func GetScratchBuffer() *ByteBuffer {
	return scratchPool.Get()
}

// PutScratchBuffer returns a ByteBuffer to the default single-value pool.
func PutScratchBuffer(bb *ByteBuffer) {
	scratchPool.Put(bb)
}

// GetBundleBuffer retrieves a ByteBuffer from the default bundle/compression pool.
func GetBundleBuffer() *ByteBuffer {
	return bundlePool.Get()
}

// PutBundleBuffer returns a ByteBuffer to the default bundle/compression pool.
func PutBundleBuffer(bb *ByteBuffer) {
	bundlePool.Put(bb)
}
