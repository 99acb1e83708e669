// File: api/reactor.go
// Author: momentics <momentics@gmail.com>
//
// Defines the abstract interface for the external event reactor that owns
// raw stream handles and drives all callbacks on one logical execution
// context (single-threaded cooperative model).

package api

// Handle is an opaque reactor-owned stream handle. The core never
// inspects it; it is only passed back to the reactor that issued it.
type Handle any

// StatusEOF is the status code a reactor delivers to a DataFunc when the
// remote end of the stream has been closed cleanly. Any other negative
// status is a transport error.
const StatusEOF = -4095

// AllocFunc is invoked by the reactor once per inbound chunk, before data
// is available, to obtain destination storage. The suggested size is
// advisory; the returned slice's full length is offered to the reactor.
type AllocFunc func(suggested int) []byte

// DataFunc is invoked by the reactor once data has landed in the storage
// most recently returned from the paired AllocFunc, or to signal
// end-of-stream or a transport error.
//
// size > 0 means size bytes of buf are valid. size == StatusEOF means
// clean end-of-stream. Any other negative size is an error status.
type DataFunc func(buf []byte, size int)

// Reactor is the event loop boundary the stream core calls into.
//
// Implementations must invoke every callback registered through this
// interface on a single logical execution context, and only while the
// registration that produced the callback is still in effect. Callbacks
// hold strong references to the state they need; a reactor never receives
// raw back-pointers it has to reconstruct.
type Reactor interface {
	// StartWrite submits p for transmission on h. onComplete fires once
	// with the transport status and the number of bytes written. A non-nil
	// return means the submission itself was refused; onComplete will not
	// fire in that case.
	StartWrite(h Handle, p []byte, onComplete func(status, written int)) error

	// StartRead begins the read mechanism on h. For each inbound chunk the
	// reactor calls alloc exactly once, then onData exactly once with the
	// same storage. The two strictly alternate.
	StartRead(h Handle, alloc AllocFunc, onData DataFunc) error

	// StopRead halts chunk delivery on h. Chunks already handed to onData
	// complete normally.
	StopRead(h Handle) error

	// Close releases the OS resources behind h asynchronously and fires
	// onClosed when done. Must be called at most once per handle.
	Close(h Handle, onClosed func()) error
}
