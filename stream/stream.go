// File: stream/stream.go
// Author: momentics <momentics@gmail.com>
//
// Shared stream state and the BasicStream handle over it.

package stream

import (
	"sync"

	"github.com/momentics/futurestream/api"
	"github.com/momentics/futurestream/control"
	"github.com/momentics/futurestream/pool"
	"github.com/momentics/futurestream/promise"
)

// Metric keys fed into an attached control.MetricsRegistry.
const (
	MetricBytesRead    = "stream.bytes_read"
	MetricBytesWritten = "stream.bytes_written"
)

// streamState is the durable state of one logical stream. It is shared
// by every BasicStream copy and by every reactor callback the stream has
// registered; the callbacks hold it strongly, so it stays alive for as
// long as the reactor can still call back into it.
//
// All mutation happens on the reactor's single execution context; the
// mutex keeps incidental cross-goroutine inspection (stats, tests) safe.
type streamState struct {
	mu      sync.Mutex
	reactor api.Reactor
	handle  api.Handle
	pool    *pool.BufferPool

	readPromise promise.Promise[int]
	readCB      func(*Chunk)
	pending     *pool.Buffer // buffer lent to the reactor for the in-flight chunk
	readCount   int
	reading     bool

	closed    bool
	closeDone promise.Promise[struct{}]

	bytesRead    int64
	bytesWritten int64
	metrics      *control.MetricsRegistry
}

// BasicStream is a lightweight, copyable handle onto shared stream state.
type BasicStream struct {
	state *streamState
}

// Option configures a stream at construction time.
type Option func(*streamState)

// WithBufferSize sets the fixed capacity of pooled read buffers.
func WithBufferSize(n int) Option {
	return func(s *streamState) {
		s.pool = pool.New(n)
	}
}

// WithMetrics mirrors the stream's byte counters into a registry.
func WithMetrics(m *control.MetricsRegistry) Option {
	return func(s *streamState) {
		s.metrics = m
	}
}

// New creates a stream over a reactor-owned handle.
func New(r api.Reactor, h api.Handle, opts ...Option) BasicStream {
	s := &streamState{
		reactor:     r,
		handle:      h,
		pool:        pool.New(pool.DefaultBufferSize),
		readPromise: promise.New[int](),
		closeDone:   promise.New[struct{}](),
	}
	for _, opt := range opts {
		opt(s)
	}
	return BasicStream{state: s}
}

// Close releases the underlying handle via the reactor's asynchronous
// close, exactly once. Further Close calls return api.ErrStreamClosed.
// Any in-flight read state is discarded without settling the read future.
func (st BasicStream) Close() error {
	s := st.state
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return api.ErrStreamClosed
	}
	s.closed = true
	s.reading = false
	s.readCB = nil
	if s.pending != nil {
		_ = s.pool.Release(s.pending.Token())
		s.pending = nil
	}
	s.mu.Unlock()

	done := s.closeDone
	return s.reactor.Close(s.handle, func() {
		done.Resolve(struct{}{})
	})
}

// Closed returns a future that resolves once the reactor has finished
// releasing the handle's resources.
func (st BasicStream) Closed() promise.Future[struct{}] {
	return st.state.closeDone.Future()
}

// Stats aggregates per-stream accounting.
type Stats struct {
	BytesRead    int64
	BytesWritten int64
	Reading      bool
	Pool         pool.Stats
}

// Stats returns a snapshot of the stream's byte counters and pool state.
func (st BasicStream) Stats() Stats {
	s := st.state
	s.mu.Lock()
	out := Stats{
		BytesRead:    s.bytesRead,
		BytesWritten: s.bytesWritten,
		Reading:      s.reading,
	}
	s.mu.Unlock()
	out.Pool = s.pool.Stats()
	return out
}

// RegisterProbes exposes the stream's stats snapshot under the given
// probe name for debug introspection.
func (st BasicStream) RegisterProbes(dp *control.DebugProbes, name string) {
	dp.RegisterProbe(name, func() any {
		return st.Stats()
	})
}

func (s *streamState) addBytesWritten(n int64) {
	s.mu.Lock()
	s.bytesWritten += n
	m := s.metrics
	s.mu.Unlock()
	if m != nil {
		m.Add(MetricBytesWritten, n)
	}
}
