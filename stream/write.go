// File: stream/write.go
// Author: momentics <momentics@gmail.com>
//
// Write path: one reactor-level write per call, no queuing layer.

package stream

import (
	"github.com/momentics/futurestream/api"
	"github.com/momentics/futurestream/promise"
)

// writeRequest is the ephemeral per-write record. It lives until the
// completion callback settles its promise and the pass-through
// continuation on the returned future lets go of it.
type writeRequest struct {
	promise promise.Promise[int]
	size    int
}

// Write submits p for transmission and returns a future that resolves
// with the number of bytes written, or rejects with a *api.StreamError on
// a negative completion status. A submission-time refusal is returned
// synchronously and no future is produced.
//
// p must not be mutated until the returned future settles; the stream
// only reads from it. Each Write issues an independent reactor-level
// write; ordering across writes is whatever the transport guarantees.
func (st BasicStream) Write(p []byte) (promise.Future[int], error) {
	s := st.state
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return promise.Future[int]{}, api.ErrStreamClosed
	}
	s.mu.Unlock()
	if p == nil {
		return promise.Future[int]{}, api.ErrInvalidArgument
	}

	req := &writeRequest{promise: promise.New[int](), size: len(p)}
	err := s.reactor.StartWrite(s.handle, p, func(status, _ int) {
		if status < 0 {
			req.promise.Reject(api.NewStreamError("write", status))
			return
		}
		req.promise.Resolve(req.size)
	})
	if err != nil {
		return promise.Future[int]{}, err
	}

	// The pass-through continuation keeps req and the stream state
	// reachable until completion and feeds the byte accounting.
	return promise.Then(req.promise.Future(), func(n int) (int, error) {
		s.addBytesWritten(int64(n))
		return n, nil
	}), nil
}
