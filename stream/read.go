// File: stream/read.go
// Author: momentics <momentics@gmail.com>
//
// Read path: per-chunk delivery with pooled buffers, batch futures,
// restartable read cycles.

package stream

import (
	"github.com/momentics/futurestream/api"
	"github.com/momentics/futurestream/promise"
)

// Read starts the reactor's read mechanism and registers onChunk as the
// per-chunk delivery callback. The returned future settles once per read
// batch: it resolves with the total bytes accumulated when the stream
// reaches end-of-stream, and rejects with a *api.StreamError if the
// reactor reports an error status mid-read. After either outcome the
// stream is idle again and Read may be called to start a fresh batch.
//
// Chunk views handed to onChunk borrow a pool buffer; the consumer must
// Release each chunk (or Copy its bytes first) to return the buffer.
//
// A reactor-level refusal to start the read is returned synchronously,
// with the callback registration rolled back.
func (st BasicStream) Read(onChunk func(*Chunk)) (promise.Future[int], error) {
	s := st.state
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return promise.Future[int]{}, api.ErrStreamClosed
	}
	if s.reading {
		s.mu.Unlock()
		return promise.Future[int]{}, api.ErrAlreadyReading
	}
	s.reading = true
	s.readCB = onChunk
	fut := s.readPromise.Future()
	s.mu.Unlock()

	err := s.reactor.StartRead(s.handle, s.allocBuffer, s.onReadEvent)
	if err != nil {
		s.mu.Lock()
		s.reading = false
		s.readCB = nil
		s.mu.Unlock()
		return promise.Future[int]{}, err
	}
	return fut, nil
}

// StopRead is the caller-initiated cancellation of the current batch.
// The per-chunk callback is cleared unconditionally, so no further chunks
// are delivered even if the reactor's stop failed; the failure is
// returned in that case and the batch future is left unsettled. On a
// successful stop the batch future resolves with the accumulated count.
func (st BasicStream) StopRead() error {
	s := st.state
	err := s.reactor.StopRead(s.handle)
	if err != nil {
		s.mu.Lock()
		s.readCB = nil
		s.mu.Unlock()
		return err
	}
	s.finalizeBatch(nil)
	return nil
}

// allocBuffer is the reactor's allocation callback: one pool buffer per
// inbound chunk, moved idle->active. The reactor's size suggestion is
// ignored; the pool's fixed capacity governs.
func (s *streamState) allocBuffer(_ int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := s.pool.Acquire()
	s.pending = b
	return b.Storage()
}

// onReadEvent is the reactor's data-ready callback.
func (s *streamState) onReadEvent(_ []byte, size int) {
	switch {
	case size == api.StatusEOF:
		// Clean end of stream: halt delivery, settle the batch.
		_ = s.reactor.StopRead(s.handle)
		s.finalizeBatch(nil)
	case size < 0:
		// Transport error mid-read: the batch rejects instead of
		// resolving, then the stream returns to idle like at EOF.
		_ = s.reactor.StopRead(s.handle)
		s.finalizeBatch(api.NewStreamError("read", size))
	case size > 0:
		s.deliverChunk(size)
	default:
		// size == 0: nothing landed, return the buffer straight away.
		s.releasePending()
	}
}

// deliverChunk accounts the chunk and hands a borrowed view to the
// registered callback. If reading stopped between allocation and
// delivery, the buffer is returned and the chunk is dropped.
func (s *streamState) deliverChunk(size int) {
	s.mu.Lock()
	b := s.pending
	s.pending = nil
	cb := s.readCB
	if b == nil {
		s.mu.Unlock()
		return
	}
	if cb == nil {
		_ = s.pool.Release(b.Token())
		s.mu.Unlock()
		return
	}
	s.readCount += size
	s.bytesRead += int64(size)
	m := s.metrics
	p := s.pool
	s.mu.Unlock()

	if m != nil {
		m.Add(MetricBytesRead, int64(size))
	}
	cb(&Chunk{data: b.Storage()[:size], pool: p, token: b.Token()})
}

// finalizeBatch ends the current read batch: pending buffer returned,
// callback cleared, counter zeroed, and the batch promise settled and
// reset so a later Read starts a fresh cycle on the same slot.
func (s *streamState) finalizeBatch(rerr error) {
	s.mu.Lock()
	if s.pending != nil {
		_ = s.pool.Release(s.pending.Token())
		s.pending = nil
	}
	if !s.reading {
		s.mu.Unlock()
		return
	}
	s.reading = false
	s.readCB = nil
	count := s.readCount
	s.readCount = 0
	p := s.readPromise
	s.mu.Unlock()

	if rerr != nil {
		p.Reject(rerr)
	} else {
		p.Resolve(count)
	}
	p.Reset()
}

func (s *streamState) releasePending() {
	s.mu.Lock()
	if s.pending != nil {
		_ = s.pool.Release(s.pending.Token())
		s.pending = nil
	}
	s.mu.Unlock()
}
