// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// emitter_test.go — Unit tests for ordered event dispatch.
package emitter_test

import (
	"errors"
	"testing"

	"go.uber.org/multierr"

	"github.com/momentics/futurestream/emitter"
)

// TestEvent_OrderedDispatch calls listeners in registration order.
func TestEvent_OrderedDispatch(t *testing.T) {
	var ev emitter.Event[int]
	var order []string

	ev.On(func(v int) error {
		order = append(order, "a")
		return nil
	})
	ev.On(func(v int) error {
		order = append(order, "b")
		return nil
	})

	if err := ev.Emit(1); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("dispatch order = %v", order)
	}
}

// TestEvent_Off removes exactly the targeted listener.
func TestEvent_Off(t *testing.T) {
	var ev emitter.Event[string]
	seen := map[string]int{}

	id := ev.On(func(v string) error { seen["first"]++; return nil })
	ev.On(func(v string) error { seen["second"]++; return nil })

	ev.Off(id)
	_ = ev.Emit("x")

	if seen["first"] != 0 || seen["second"] != 1 {
		t.Fatalf("after Off: %v", seen)
	}
	if ev.Len() != 1 {
		t.Fatalf("len = %d, want 1", ev.Len())
	}
}

// TestEvent_ErrorAggregation combines every listener error into one.
func TestEvent_ErrorAggregation(t *testing.T) {
	var ev emitter.Event[int]
	e1 := errors.New("first failed")
	e2 := errors.New("second failed")

	ev.On(func(int) error { return e1 })
	ev.On(func(int) error { return nil })
	ev.On(func(int) error { return e2 })

	err := ev.Emit(0)
	errs := multierr.Errors(err)
	if len(errs) != 2 || !errors.Is(errs[0], e1) || !errors.Is(errs[1], e2) {
		t.Fatalf("aggregated = %v", errs)
	}
}

// TestEvent_RemoveIf drops listeners by predicate.
func TestEvent_RemoveIf(t *testing.T) {
	var ev emitter.Event[int]
	var ids []int
	for i := 0; i < 4; i++ {
		ids = append(ids, ev.On(func(int) error { return nil }))
	}
	ev.RemoveIf(func(id int) bool { return id%2 == 0 })
	if ev.Len() != 2 {
		t.Fatalf("len = %d after RemoveIf, want 2", ev.Len())
	}
	_ = ids
}

// TestEmitter_NamedEvents keeps per-name listener lists independent.
func TestEmitter_NamedEvents(t *testing.T) {
	em := emitter.NewEmitter()
	var got []string

	em.On("data", func(v any) error {
		got = append(got, "data:"+v.(string))
		return nil
	})
	em.On("end", func(v any) error {
		got = append(got, "end")
		return nil
	})

	_ = em.Emit("data", "chunk")
	_ = em.Emit("end", nil)
	_ = em.Emit("error", "nobody listening")

	if len(got) != 2 || got[0] != "data:chunk" || got[1] != "end" {
		t.Fatalf("dispatch = %v", got)
	}
	if em.Listeners("data") != 1 || em.Listeners("error") != 0 {
		t.Fatal("listener counts wrong")
	}
}
