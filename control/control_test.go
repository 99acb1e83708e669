// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// control_test.go — Unit tests for metrics registry and debug probes.
package control_test

import (
	"testing"

	"github.com/momentics/futurestream/control"
)

// TestMetrics_Counters accumulates Add deltas per key.
func TestMetrics_Counters(t *testing.T) {
	mr := control.NewMetricsRegistry()
	mr.Add("bytes", 10)
	mr.Add("bytes", 5)
	mr.Add("ops", 1)

	if got := mr.Counter("bytes"); got != 15 {
		t.Fatalf("bytes = %d, want 15", got)
	}
	if got := mr.Counter("missing"); got != 0 {
		t.Fatalf("missing counter = %d, want 0", got)
	}

	snap := mr.GetSnapshot()
	if snap["bytes"].(int64) != 15 || snap["ops"].(int64) != 1 {
		t.Fatalf("snapshot = %v", snap)
	}
}

// TestMetrics_SetOverwrites replaces arbitrary values.
func TestMetrics_SetOverwrites(t *testing.T) {
	mr := control.NewMetricsRegistry()
	mr.Set("state", "reading")
	mr.Set("state", "idle")
	if mr.GetSnapshot()["state"] != "idle" {
		t.Fatal("Set did not overwrite")
	}
}

// TestDebugProbes_Dump runs every registered probe.
func TestDebugProbes_Dump(t *testing.T) {
	dp := control.NewDebugProbes()
	dp.RegisterProbe("answer", func() any { return 42 })
	dp.RegisterProbe("name", func() any { return "stream" })

	out := dp.DumpState()
	if out["answer"] != 42 || out["name"] != "stream" {
		t.Fatalf("dump = %v", out)
	}
}
