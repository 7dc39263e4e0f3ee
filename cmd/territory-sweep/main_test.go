package main

import (
	"testing"

	"territory-ca/internal/sims/territory"
)

func TestSweepAveragesEverySet(t *testing.T) {
	base := territory.DefaultConfig()
	base.Size = 16
	base.Factions = 3
	sets := []paramSet{{growthRate: 1, weightAdj: 1}, {growthRate: 50, weightAdj: 10}}

	got := sweep(base, sets, 7, 3, 200, 4)
	if len(got) != len(sets) {
		t.Fatalf("expected %d summaries, got %d", len(sets), len(got))
	}
	for i, s := range got {
		if s.params != sets[i] {
			t.Fatalf("summary %d out of order: %v", i, s.params)
		}
		if s.runs != 3 {
			t.Fatalf("expected 3 runs for %v, got %d", s.params, s.runs)
		}
		if s.meanAlive <= 0 || s.meanAlive > 3 {
			t.Fatalf("mean alive out of range: %f", s.meanAlive)
		}
		if s.meanLargest <= 0 || s.meanLargest > 1 || s.meanCoverage < s.meanLargest {
			t.Fatalf("inconsistent shares for %v: largest=%f coverage=%f", s.params, s.meanLargest, s.meanCoverage)
		}
	}
}

func TestRunScenarioDeterministic(t *testing.T) {
	base := territory.DefaultConfig()
	base.Size = 16
	base.Factions = 2
	j := job{params: paramSet{growthRate: 20, weightAdj: 10}, seed: 99}
	a := runScenario(base, j, 150)
	b := runScenario(base, j, 150)
	if a != b {
		t.Fatalf("same seed produced different results: %+v vs %+v", a, b)
	}
}

func TestCheckFlagsRejectsEmptyBoard(t *testing.T) {
	if err := checkFlags(0, 9, 4, 100); err == nil {
		t.Fatal("expected zero size to be rejected")
	}
	if err := checkFlags(-3, 9, 4, 100); err == nil {
		t.Fatal("expected negative size to be rejected")
	}
	if err := checkFlags(50, 9, 0, 100); err == nil {
		t.Fatal("expected zero runs to be rejected")
	}
	if err := checkFlags(50, 9, 4, 0); err != nil {
		t.Fatalf("zero ticks is a valid sweep: %v", err)
	}
}
