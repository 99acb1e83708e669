// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// bufferpool_test.go — Unit tests for the idle/active buffer pool.
package pool_test

import (
	"testing"

	"github.com/momentics/futurestream/pool"
)

// TestAcquireRelease_ReuseScenario walks the canonical sequence: two
// fresh acquisitions, one release, and a reacquisition that must reuse
// the released buffer instead of allocating.
func TestAcquireRelease_ReuseScenario(t *testing.T) {
	p := pool.New(0)

	b1 := p.Acquire()
	b2 := p.Acquire()
	if b1 == b2 || b1.Token() == b2.Token() {
		t.Fatal("expected two distinct buffers")
	}
	if b1.Cap() != pool.DefaultBufferSize || b2.Cap() != pool.DefaultBufferSize {
		t.Fatalf("capacities %d/%d, want %d", b1.Cap(), b2.Cap(), pool.DefaultBufferSize)
	}
	if s := p.Stats(); s.Active != 2 || s.Idle != 0 || s.Allocated != 2 {
		t.Fatalf("after two acquires: %+v", s)
	}

	if err := p.Release(b1.Token()); err != nil {
		t.Fatalf("release: %v", err)
	}
	if s := p.Stats(); s.Active != 1 || s.Idle != 1 {
		t.Fatalf("after release: %+v", s)
	}

	b3 := p.Acquire()
	if b3.Token() != b1.Token() {
		t.Fatalf("reacquire returned token %d, want reused %d", b3.Token(), b1.Token())
	}
	if s := p.Stats(); s.Allocated != 2 {
		t.Fatalf("reacquire allocated a new buffer: %+v", s)
	}
}

// TestConservation checks every buffer stays in exactly one collection
// across an interleaved acquire/release sequence.
func TestConservation(t *testing.T) {
	p := pool.New(64)
	var held []int
	for i := 0; i < 8; i++ {
		held = append(held, p.Acquire().Token())
	}
	for _, tok := range held[:4] {
		if err := p.Release(tok); err != nil {
			t.Fatalf("release %d: %v", tok, err)
		}
	}
	s := p.Stats()
	if s.Idle+s.Active != s.Allocated {
		t.Fatalf("conservation broken: %+v", s)
	}
	if s.Idle != 4 || s.Active != 4 {
		t.Fatalf("unexpected split: %+v", s)
	}
}

// TestRelease_UnknownToken rejects out-of-range and idle tokens without
// disturbing any other buffer.
func TestRelease_UnknownToken(t *testing.T) {
	p := pool.New(0)
	b := p.Acquire()

	if err := p.Release(b.Token() + 100); err == nil {
		t.Error("out-of-range token accepted")
	}
	if err := p.Release(-1); err == nil {
		t.Error("negative token accepted")
	}
	if err := p.Release(b.Token()); err != nil {
		t.Fatalf("valid release failed: %v", err)
	}
	if err := p.Release(b.Token()); err == nil {
		t.Error("double release accepted")
	}
	if s := p.Stats(); s.Idle != 1 || s.Active != 0 || s.Allocated != 1 {
		t.Fatalf("pool disturbed by bad releases: %+v", s)
	}
}

// TestIdleFIFO reuses the least recently released buffer first.
func TestIdleFIFO(t *testing.T) {
	p := pool.New(16)
	a := p.Acquire()
	b := p.Acquire()
	_ = p.Release(a.Token())
	_ = p.Release(b.Token())

	if got := p.Acquire().Token(); got != a.Token() {
		t.Fatalf("first reuse token %d, want %d", got, a.Token())
	}
	if got := p.Acquire().Token(); got != b.Token() {
		t.Fatalf("second reuse token %d, want %d", got, b.Token())
	}
}

// TestStorage_WritableFullCapacity hands out the full backing slice.
func TestStorage_WritableFullCapacity(t *testing.T) {
	p := pool.New(32)
	b := p.Acquire()
	if len(b.Storage()) != 32 {
		t.Fatalf("storage length %d, want 32", len(b.Storage()))
	}
	copy(b.Storage(), []byte("payload"))
	if string(b.Storage()[:7]) != "payload" {
		t.Error("storage not writable in place")
	}
}
