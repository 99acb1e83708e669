// File: promise/promise.go
// Author: momentics <momentics@gmail.com>
//
// Shared single-resolution slot, Promise (write side) and Future (read side).

package promise

import (
	"errors"
	"sync"
)

// State enumerates the slot's lifecycle phases.
type State int32

const (
	StatePending State = iota
	StateResolved
	StateRejected
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateResolved:
		return "resolved"
	case StateRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Settling an already-settled promise, or attaching a second continuation
// to a future, is a programmer error. Both panic with these values so the
// bug surfaces at the call site instead of silently dropping a result.
var (
	ErrAlreadySettled = errors.New("promise: settle on non-pending promise, Reset required")
	ErrAlreadyChained = errors.New("promise: future already has a continuation")
)

// continuation is the at-most-one callback pair registered on a slot.
type continuation[T any] struct {
	onValue func(T)
	onError func(error)
}

// slot is the shared single-resolution cell behind a Promise/Future pair.
type slot[T any] struct {
	mu    sync.Mutex
	state State
	value T
	err   error
	cont  *continuation[T]
}

// Promise is the write side of a slot. The zero value is unusable; create
// with New.
type Promise[T any] struct {
	s *slot[T]
}

// Future is the read side of a slot. Futures are small copyable handles;
// every copy refers to the same slot.
type Future[T any] struct {
	s *slot[T]
}

// New creates a pending Promise.
func New[T any]() Promise[T] {
	return Promise[T]{s: &slot[T]{}}
}

// Future returns the read side paired with p.
func (p Promise[T]) Future() Future[T] {
	return Future[T]{s: p.s}
}

// Resolve settles the slot with v. If a continuation is attached it runs
// synchronously on the caller's stack; otherwise v is buffered until one
// is attached. Panics with ErrAlreadySettled if the slot is not pending.
func (p Promise[T]) Resolve(v T) {
	s := p.s
	s.mu.Lock()
	if s.state != StatePending {
		s.mu.Unlock()
		panic(ErrAlreadySettled)
	}
	s.state = StateResolved
	s.value = v
	c := s.cont
	s.cont = nil
	s.mu.Unlock()
	// Invoke outside the lock: the continuation may settle or chain
	// other promises, including this slot after a Reset.
	if c != nil && c.onValue != nil {
		c.onValue(v)
	}
}

// Reject settles the slot with err, driving the error path of any
// attached continuation. Panics with ErrAlreadySettled if not pending.
func (p Promise[T]) Reject(err error) {
	s := p.s
	s.mu.Lock()
	if s.state != StatePending {
		s.mu.Unlock()
		panic(ErrAlreadySettled)
	}
	s.state = StateRejected
	s.err = err
	c := s.cont
	s.cont = nil
	s.mu.Unlock()
	if c != nil && c.onError != nil {
		c.onError(err)
	}
}

// Reset returns the slot to pending, discarding any buffered result and
// any unfired continuation. Only valid when no attached continuation is
// still expecting the prior cycle's value; the streaming read path
// resolves and resets in the same step, which satisfies that.
func (p Promise[T]) Reset() {
	s := p.s
	s.mu.Lock()
	var zero T
	s.state = StatePending
	s.value = zero
	s.err = nil
	s.cont = nil
	s.mu.Unlock()
}

// State reports the slot's current phase.
func (p Promise[T]) State() State {
	return p.Future().State()
}

// attach registers the slot's single continuation, or fires it
// immediately if the slot already settled.
func (s *slot[T]) attach(onValue func(T), onError func(error)) {
	s.mu.Lock()
	switch s.state {
	case StatePending:
		if s.cont != nil {
			s.mu.Unlock()
			panic(ErrAlreadyChained)
		}
		s.cont = &continuation[T]{onValue: onValue, onError: onError}
		s.mu.Unlock()
	case StateResolved:
		v := s.value
		s.mu.Unlock()
		if onValue != nil {
			onValue(v)
		}
	case StateRejected:
		err := s.err
		s.mu.Unlock()
		if onError != nil {
			onError(err)
		}
	}
}

// State reports the slot's current phase.
func (f Future[T]) State() State {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	return f.s.state
}

// Value returns the resolved value, or the zero value while pending or
// rejected. Use State to disambiguate.
func (f Future[T]) Value() T {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	return f.s.value
}

// Err returns the rejection error, or nil while pending or resolved.
func (f Future[T]) Err() error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	return f.s.err
}
