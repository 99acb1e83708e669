// Package promise
// Author: momentics <momentics@gmail.com>
//
// Single-resolution promise/future engine for reactor-driven code.
//
// A Promise is the write side of a shared slot that settles exactly once,
// to a value or an error, until an explicit Reset. A Future is the read
// side; it accepts at most one continuation, attached via Then/ThenFuture/
// Catch, which runs synchronously on the stack of whoever settles the
// promise. There is no deferred scheduling layer: continuation code runs
// inside the reactor callback that resolved the slot and must not block.
//
// The engine is reentrancy-safe (a continuation may attach to or settle
// other promises, including chaining off its own result) but assumes a
// single logical execution context, as provided by the reactor model.
// Internal state is mutex-guarded so incidental cross-goroutine use in
// tests stays memory-safe; this is not a concurrency feature.
package promise
