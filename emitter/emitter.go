// File: emitter/emitter.go
// Author: momentics <momentics@gmail.com>
//
// String-keyed emitter over untyped payloads, for "data"/"end"/"error"
// style surfaces where the event set is not known at compile time.

package emitter

import "sync"

// Emitter maps event names to ordered listener lists.
type Emitter struct {
	mu     sync.Mutex
	events map[string]*Event[any]
}

// NewEmitter creates an empty emitter.
func NewEmitter() *Emitter {
	return &Emitter{events: make(map[string]*Event[any])}
}

func (em *Emitter) event(name string) *Event[any] {
	em.mu.Lock()
	defer em.mu.Unlock()
	ev, ok := em.events[name]
	if !ok {
		ev = &Event[any]{}
		em.events[name] = ev
	}
	return ev
}

// On registers fn for the named event; the id is scoped to that event.
func (em *Emitter) On(name string, fn Listener[any]) int {
	return em.event(name).On(fn)
}

// Off removes a listener previously registered under id for name.
func (em *Emitter) Off(name string, id int) {
	em.event(name).Off(id)
}

// Emit dispatches v to the named event's listeners in order.
func (em *Emitter) Emit(name string, v any) error {
	return em.event(name).Emit(v)
}

// Listeners returns how many listeners the named event currently has.
func (em *Emitter) Listeners(name string) int {
	return em.event(name).Len()
}
