// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics and debug introspection for futurestream components.
//
// Streams mirror their byte counters into a MetricsRegistry when one is
// attached; pools and loops can expose snapshot probes through
// DebugProbes. Nothing in here is on the I/O hot path beyond a counter
// increment.
package control
