package core

import (
	"testing"
	"time"
)

func TestFixedStepDueCapsBurst(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if n := fs.Due(0); n != 0 {
		t.Fatalf("first call should prime the clock, got %d", n)
	}
	clock = clock.Add(350 * time.Millisecond)
	if n := fs.Due(0); n != 3 {
		t.Fatalf("expected 3 due ticks, got %d", n)
	}
	clock = clock.Add(60 * time.Millisecond)
	if n := fs.Due(0); n != 1 {
		t.Fatalf("expected carried remainder to yield 1 tick, got %d", n)
	}
	clock = clock.Add(5 * time.Second)
	if n := fs.Due(4); n != 4 {
		t.Fatalf("expected burst capped at 4, got %d", n)
	}
}
