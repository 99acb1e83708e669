// Package emitter
// Author: momentics <momentics@gmail.com>
//
// Ordered event dispatch for stream wrappers.
//
// Event[T] is a typed listener list: listeners run in registration order
// and their errors are aggregated. Emitter is the string-keyed variant
// higher-level stream types use for "data"/"end"/"error" style events.
// Neither is used by the stream core itself; the core's only result
// channel is the promise engine.
package emitter
