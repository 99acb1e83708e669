// Package pool
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity read buffers and their idle/active pool.
//
// The pool backs the single-outstanding-read stream path: one buffer is
// lent out per inbound chunk and returned when the chunk consumer is done
// with it. Growth is monotonic and unbounded; there is no eviction,
// because a stream keeps at most one buffer in flight at a time.
package pool
