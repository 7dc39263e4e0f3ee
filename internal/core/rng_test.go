package core

import "testing"

func TestSampleIndicesDistinct(t *testing.T) {
	rng := NewRNG(7)
	for trial := 0; trial < 1000; trial++ {
		got := rng.SampleIndices(nil, 5, 3)
		if len(got) != 3 {
			t.Fatalf("expected 3 indices, got %v", got)
		}
		seen := map[int]bool{}
		for _, idx := range got {
			if idx < 0 || idx >= 5 || seen[idx] {
				t.Fatalf("invalid sample %v", got)
			}
			seen[idx] = true
		}
	}
	if got := rng.SampleIndices(nil, 1, 2); len(got) != 1 || got[0] != 0 {
		t.Fatalf("expected clamp to single index, got %v", got)
	}
	if got := rng.SampleIndices(nil, 0, 2); len(got) != 0 {
		t.Fatalf("expected empty sample from empty population, got %v", got)
	}
}

func TestIntRangeInclusive(t *testing.T) {
	rng := NewRNG(3)
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		v := rng.IntRange(2, 5)
		if v < 2 || v > 5 {
			t.Fatalf("IntRange out of bounds: %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 4 {
		t.Fatalf("expected all of 2..5 to appear, saw %v", seen)
	}
}
