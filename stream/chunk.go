// File: stream/chunk.go
// Author: momentics <momentics@gmail.com>

package stream

import "github.com/momentics/futurestream/pool"

// Chunk is a borrowed view over exactly the written region of a pool
// buffer, delivered once per inbound chunk. The underlying buffer stays
// lent out until Release; a consumer that needs the bytes past its
// callback must Copy them first.
type Chunk struct {
	data     []byte
	pool     *pool.BufferPool
	token    int
	released bool
}

// Bytes returns the chunk's data, or nil after Release.
func (c *Chunk) Bytes() []byte {
	if c.released {
		return nil
	}
	return c.data
}

// Len returns the number of valid bytes in the chunk.
func (c *Chunk) Len() int {
	if c.released {
		return 0
	}
	return len(c.data)
}

// Copy returns a standalone copy of the chunk's bytes.
func (c *Chunk) Copy() []byte {
	if c.released {
		return nil
	}
	out := make([]byte, len(c.data))
	copy(out, c.data)
	return out
}

// Release returns the underlying buffer to its pool. Idempotent; the
// view must not be read afterwards.
func (c *Chunk) Release() {
	if c.released {
		return
	}
	c.released = true
	c.data = nil
	_ = c.pool.Release(c.token)
}
