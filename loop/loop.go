// File: loop/loop.go
// Author: momentics <momentics@gmail.com>
//
// FIFO callback loop with timer support.

package loop

import (
	"sync"
	"time"

	"github.com/eapache/queue"
	"go.uber.org/zap"
)

// Loop executes posted callbacks one at a time, in posting order, on the
// goroutine that calls Run. Post is safe from any goroutine; everything
// a callback touches is then confined to the loop goroutine.
type Loop struct {
	mu      sync.Mutex
	cond    *sync.Cond
	pending *queue.Queue // of func()
	stopped bool
	log     *zap.Logger
}

// Option configures a Loop.
type Option func(*Loop)

// WithLogger attaches a logger for debug-level loop tracing.
func WithLogger(l *zap.Logger) Option {
	return func(lp *Loop) {
		lp.log = l
	}
}

// New creates a stopped-free, runnable loop.
func New(opts ...Option) *Loop {
	lp := &Loop{
		pending: queue.New(),
		log:     zap.NewNop(),
	}
	lp.cond = sync.NewCond(&lp.mu)
	for _, opt := range opts {
		opt(lp)
	}
	return lp
}

// Post enqueues fn for execution on the loop goroutine. Posts after Stop
// are dropped.
func (lp *Loop) Post(fn func()) {
	lp.mu.Lock()
	if lp.stopped {
		lp.mu.Unlock()
		return
	}
	lp.pending.Add(fn)
	lp.cond.Signal()
	lp.mu.Unlock()
}

// Defer is Post under the name the idle-callback idiom uses: run fn on
// the next turn of the loop, after everything already queued.
func (lp *Loop) Defer(fn func()) {
	lp.Post(fn)
}

// After schedules fn to be posted onto the loop after d elapses. The
// returned function cancels the timer if it has not fired yet.
func (lp *Loop) After(d time.Duration, fn func()) (cancel func() bool) {
	t := time.AfterFunc(d, func() {
		lp.Post(fn)
	})
	return t.Stop
}

// Run executes callbacks until Stop is called and the queue is drained.
// It must be called from exactly one goroutine.
func (lp *Loop) Run() {
	lp.log.Debug("loop running")
	for {
		lp.mu.Lock()
		for lp.pending.Length() == 0 && !lp.stopped {
			lp.cond.Wait()
		}
		if lp.pending.Length() == 0 && lp.stopped {
			lp.mu.Unlock()
			lp.log.Debug("loop stopped")
			return
		}
		fn := lp.pending.Remove().(func())
		lp.mu.Unlock()
		fn()
	}
}

// Stop makes Run return once the already-posted callbacks have drained.
func (lp *Loop) Stop() {
	lp.mu.Lock()
	lp.stopped = true
	lp.cond.Broadcast()
	lp.mu.Unlock()
}

// Pending returns the number of callbacks waiting to run.
func (lp *Loop) Pending() int {
	lp.mu.Lock()
	defer lp.mu.Unlock()
	return lp.pending.Length()
}
