// File: fake/fakereactor.go
// Author: momentics <momentics@gmail.com>

package fake

import (
	"fmt"
	"sync"

	"github.com/momentics/futurestream/api"
)

type writeOp struct {
	handle   api.Handle
	data     []byte
	complete func(status, written int)
}

type readReg struct {
	alloc  api.AllocFunc
	onData api.DataFunc
}

// Reactor is a scriptable api.Reactor. The zero value accepts every
// operation; set the *Status fields to a negative code to make the
// corresponding reactor call refuse synchronously.
type Reactor struct {
	mu     sync.Mutex
	writes []*writeOp
	reads  map[api.Handle]*readReg
	closed map[api.Handle]bool

	WriteStatus     int // <0: StartWrite refuses
	ReadStartStatus int // <0: StartRead refuses
	StopReadStatus  int // <0: StopRead fails
}

// NewReactor creates an accepting reactor.
func NewReactor() *Reactor {
	return &Reactor{
		reads:  make(map[api.Handle]*readReg),
		closed: make(map[api.Handle]bool),
	}
}

// StartWrite records the write for later completion via CompleteWrite.
func (r *Reactor) StartWrite(h api.Handle, p []byte, onComplete func(status, written int)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.WriteStatus < 0 {
		return api.NewStreamError("write", r.WriteStatus)
	}
	r.writes = append(r.writes, &writeOp{handle: h, data: p, complete: onComplete})
	return nil
}

// StartRead records the callback pair for h.
func (r *Reactor) StartRead(h api.Handle, alloc api.AllocFunc, onData api.DataFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ReadStartStatus < 0 {
		return api.NewStreamError("read_start", r.ReadStartStatus)
	}
	r.reads[h] = &readReg{alloc: alloc, onData: onData}
	return nil
}

// StopRead drops the registration for h.
func (r *Reactor) StopRead(h api.Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.StopReadStatus < 0 {
		return api.NewStreamError("read_stop", r.StopReadStatus)
	}
	delete(r.reads, h)
	return nil
}

// Close marks h closed and fires onClosed. The fake fires synchronously;
// a real reactor would defer it to its loop.
func (r *Reactor) Close(h api.Handle, onClosed func()) error {
	r.mu.Lock()
	r.closed[h] = true
	r.mu.Unlock()
	if onClosed != nil {
		onClosed()
	}
	return nil
}

// PendingWrites reports writes submitted but not yet completed.
func (r *Reactor) PendingWrites() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.writes)
}

// LastWrite returns the most recently submitted payload.
func (r *Reactor) LastWrite() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.writes) == 0 {
		return nil
	}
	return r.writes[len(r.writes)-1].data
}

// CompleteWrite fires the oldest pending write's completion callback
// with the given status.
func (r *Reactor) CompleteWrite(status int) error {
	r.mu.Lock()
	if len(r.writes) == 0 {
		r.mu.Unlock()
		return fmt.Errorf("fake: no pending write to complete")
	}
	op := r.writes[0]
	r.writes = r.writes[1:]
	r.mu.Unlock()
	op.complete(status, len(op.data))
	return nil
}

// Reading reports whether h currently has a read registration.
func (r *Reactor) Reading(h api.Handle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.reads[h]
	return ok
}

// Closed reports whether Close was called for h.
func (r *Reactor) Closed(h api.Handle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed[h]
}

func (r *Reactor) registration(h api.Handle) (*readReg, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	reg, ok := r.reads[h]
	if !ok {
		return nil, fmt.Errorf("fake: no read registered for handle %v", h)
	}
	return reg, nil
}

// Deliver runs one alloc/data cycle for h with the given payload,
// returning the number of bytes that fit the allocated storage.
func (r *Reactor) Deliver(h api.Handle, payload []byte) (int, error) {
	reg, err := r.registration(h)
	if err != nil {
		return 0, err
	}
	buf := reg.alloc(len(payload))
	n := copy(buf, payload)
	reg.onData(buf, n)
	return n, nil
}

// DeliverEOF signals clean end-of-stream on h.
func (r *Reactor) DeliverEOF(h api.Handle) error {
	reg, err := r.registration(h)
	if err != nil {
		return err
	}
	reg.onData(nil, api.StatusEOF)
	return nil
}

// DeliverError signals a mid-read transport error on h. code must be
// negative and not api.StatusEOF.
func (r *Reactor) DeliverError(h api.Handle, code int) error {
	if code >= 0 || api.IsEOF(code) {
		return fmt.Errorf("fake: %d is not an error status", code)
	}
	reg, err := r.registration(h)
	if err != nil {
		return err
	}
	reg.onData(nil, code)
	return nil
}
