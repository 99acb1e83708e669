// Package api
// Author: momentics <momentics@gmail.com>
//
// Boundary contracts for the futurestream library.
//
// Defines the Reactor interface the stream core calls into, the status
// code conventions shared with reactor implementations, and the stream
// error type surfaced to callers. Everything above this package (stream,
// pool, promise) is reactor-agnostic: any event loop that can deliver
// write-completion, buffer-allocation, data-ready and close callbacks on
// a single logical execution context can drive the core.
package api
