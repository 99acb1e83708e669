// Package loop
// Author: momentics <momentics@gmail.com>
//
// In-memory single-threaded execution context.
//
// Loop runs posted callbacks in FIFO order on one goroutine, which is
// the "single logical execution context" the stream core assumes. It is
// the embedding point for reactor implementations and the driver used by
// the examples; it does no readiness polling of its own.
package loop
