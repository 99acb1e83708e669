// File: pool/buffer.go
// Author: momentics <momentics@gmail.com>

package pool

// bufState tracks which pool collection a buffer currently belongs to.
type bufState int8

const (
	bufIdle bufState = iota
	bufActive
)

// Buffer is a fixed-capacity byte region used as an I/O transfer unit.
// Capacity never changes after allocation. Buffers are created by and
// belong to a BufferPool; the token identifies the buffer within its
// pool for release.
type Buffer struct {
	storage []byte
	token   int
	state   bufState
}

// Storage returns the full-capacity backing slice, for the reactor to
// fill during a read.
func (b *Buffer) Storage() []byte {
	return b.storage
}

// Cap returns the fixed capacity.
func (b *Buffer) Cap() int {
	return len(b.storage)
}

// Token returns the pool-scoped identity used with BufferPool.Release.
func (b *Buffer) Token() int {
	return b.token
}
