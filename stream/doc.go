// Package stream
// Author: momentics <momentics@gmail.com>
//
// Future-based buffered stream over a reactor-owned handle.
//
// BasicStream is a small copyable handle onto shared stream state. Writes
// return a future for the byte count; reads deliver pooled chunk views to
// a per-chunk callback and settle a batch future at end-of-stream or
// explicit stop. All reactor callbacks capture the shared state directly,
// so the state outlives any in-flight callback without user-data
// back-pointer tricks.
package stream
