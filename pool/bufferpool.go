// File: pool/bufferpool.go
// Author: momentics <momentics@gmail.com>
//
// Idle/active buffer pool with token-based release.
//
// Buffers live in a flat arena indexed by token; idle tokens form a FIFO
// so the least recently released buffer is reused first. Release takes
// the token handed out at Acquire time rather than matching on storage
// addresses, which keeps the lookup O(1) and unambiguous.

package pool

import (
	"fmt"
	"sync"
)

// DefaultBufferSize is the fixed capacity of pool-allocated read buffers.
const DefaultBufferSize = 1024

// BufferPool owns a set of fixed-capacity buffers, each of which is
// either idle (available) or active (lent out for an in-flight read).
type BufferPool struct {
	mu      sync.Mutex
	bufSize int
	arena   []*Buffer // token -> buffer, append-only
	idle    []int     // FIFO of idle tokens
	active  int       // count of lent-out buffers
}

// New creates an empty pool allocating buffers of the given capacity.
// size <= 0 selects DefaultBufferSize.
func New(size int) *BufferPool {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &BufferPool{bufSize: size}
}

// Acquire returns a buffer ready for a fixed-capacity inbound transfer:
// the front of the idle list if non-empty, otherwise a fresh allocation.
// The buffer is active until released via its token.
func (p *BufferPool) Acquire() *Buffer {
	p.mu.Lock()
	defer p.mu.Unlock()

	var b *Buffer
	if len(p.idle) > 0 {
		b = p.arena[p.idle[0]]
		p.idle = p.idle[1:]
	} else {
		b = &Buffer{
			storage: make([]byte, p.bufSize),
			token:   len(p.arena),
		}
		p.arena = append(p.arena, b)
	}
	b.state = bufActive
	p.active++
	return b
}

// Release moves the buffer identified by token back to the idle list.
// A token that is out of range or not currently active is reported as an
// error; no other buffer is touched in that case.
func (p *BufferPool) Release(token int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if token < 0 || token >= len(p.arena) {
		return fmt.Errorf("pool: release of unknown token %d", token)
	}
	b := p.arena[token]
	if b.state != bufActive {
		return fmt.Errorf("pool: release of idle token %d", token)
	}
	b.state = bufIdle
	p.idle = append(p.idle, token)
	p.active--
	return nil
}

// Stats aggregates pool accounting for observability.
type Stats struct {
	Allocated int // total buffers ever allocated
	Idle      int
	Active    int
}

// Stats returns a snapshot of the pool's accounting.
func (p *BufferPool) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Stats{
		Allocated: len(p.arena),
		Idle:      len(p.idle),
		Active:    p.active,
	}
}
