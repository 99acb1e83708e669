// File: emitter/event.go
// Author: momentics <momentics@gmail.com>

package emitter

import (
	"sync"

	"go.uber.org/multierr"
)

// Listener consumes one event payload. A non-nil return does not stop
// dispatch; errors from all listeners are aggregated by Emit.
type Listener[T any] func(T) error

type entry[T any] struct {
	id int
	fn Listener[T]
}

// Event maintains the ordered listener list for a single event.
type Event[T any] struct {
	mu        sync.Mutex
	nextID    int
	listeners []entry[T]
}

// On appends a listener and returns its registration id for Off.
func (e *Event[T]) On(fn Listener[T]) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.nextID++
	e.listeners = append(e.listeners, entry[T]{id: e.nextID, fn: fn})
	return e.nextID
}

// Off removes the listener registered under id. Unknown ids are ignored.
func (e *Event[T]) Off(id int) {
	e.RemoveIf(func(got int) bool { return got == id })
}

// RemoveIf drops every listener whose id satisfies pred.
func (e *Event[T]) RemoveIf(pred func(id int) bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	kept := e.listeners[:0]
	for _, ent := range e.listeners {
		if !pred(ent.id) {
			kept = append(kept, ent)
		}
	}
	e.listeners = kept
}

// Len returns the number of registered listeners.
func (e *Event[T]) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.listeners)
}

// Emit calls every listener with v, in registration order, and returns
// their errors combined. Listeners added or removed during dispatch take
// effect on the next Emit.
func (e *Event[T]) Emit(v T) error {
	e.mu.Lock()
	snapshot := make([]entry[T], len(e.listeners))
	copy(snapshot, e.listeners)
	e.mu.Unlock()

	var err error
	for _, ent := range snapshot {
		err = multierr.Append(err, ent.fn(v))
	}
	return err
}
