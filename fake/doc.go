// Package fake
// Author: momentics <momentics@gmail.com>
//
// Deterministic reactor double for tests and examples.
//
// Reactor records submitted writes and read registrations and lets the
// caller drive completion, chunk delivery, end-of-stream and error
// signals explicitly, on whatever goroutine the test chooses as its
// execution context.
package fake
