// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// loop_test.go — Unit tests for the FIFO callback loop.
package loop_test

import (
	"testing"
	"time"

	"github.com/momentics/futurestream/loop"
)

// TestRun_FIFOOrder executes callbacks strictly in posting order.
func TestRun_FIFOOrder(t *testing.T) {
	lp := loop.New()
	var order []int
	for i := 0; i < 20; i++ {
		i := i
		lp.Post(func() { order = append(order, i) })
	}
	lp.Stop()
	lp.Run()

	if len(order) != 20 {
		t.Fatalf("ran %d callbacks, want 20", len(order))
	}
	for i, v := range order {
		if v != i {
			t.Fatalf("order[%d] = %d", i, v)
		}
	}
}

// TestPost_FromOtherGoroutine wakes a waiting loop.
func TestPost_FromOtherGoroutine(t *testing.T) {
	lp := loop.New()
	done := make(chan struct{})

	go func() {
		time.Sleep(5 * time.Millisecond)
		lp.Post(func() {
			close(done)
			lp.Stop()
		})
	}()

	lp.Run()
	select {
	case <-done:
	default:
		t.Fatal("posted callback never ran")
	}
}

// TestDefer_RunsAfterQueued puts deferred work behind already-posted
// callbacks.
func TestDefer_RunsAfterQueued(t *testing.T) {
	lp := loop.New()
	var order []string
	lp.Post(func() {
		lp.Defer(func() { order = append(order, "deferred") })
		order = append(order, "first")
	})
	lp.Post(func() { order = append(order, "second") })
	lp.Post(func() { lp.Stop() })
	lp.Run()

	want := []string{"first", "second", "deferred"}
	if len(order) != 3 || order[0] != want[0] || order[1] != want[1] || order[2] != want[2] {
		t.Fatalf("order = %v, want %v", order, want)
	}
}

// TestAfter_FiresOnLoop schedules a timer callback onto the loop.
func TestAfter_FiresOnLoop(t *testing.T) {
	lp := loop.New()
	fired := make(chan struct{})

	lp.After(5*time.Millisecond, func() {
		close(fired)
		lp.Stop()
	})
	go lp.Run()

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("timer callback never ran")
	}
}

// TestAfter_Cancel stops a timer before it posts.
func TestAfter_Cancel(t *testing.T) {
	lp := loop.New()
	cancel := lp.After(50*time.Millisecond, func() {
		t.Error("canceled timer fired")
	})
	if !cancel() {
		t.Fatal("cancel reported timer already fired")
	}
	time.Sleep(80 * time.Millisecond)
	lp.Stop()
	lp.Run()
}

// TestPost_AfterStopDropped ignores late posts.
func TestPost_AfterStopDropped(t *testing.T) {
	lp := loop.New()
	lp.Stop()
	lp.Post(func() { t.Error("post after stop ran") })
	lp.Run()
	if lp.Pending() != 0 {
		t.Fatalf("pending = %d after stop", lp.Pending())
	}
}
