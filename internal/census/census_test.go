package census

import (
	"path/filepath"
	"testing"
	"time"

	"territory-ca/internal/core"
	"territory-ca/internal/sims/territory"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "census.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRunRecordsCheckpoints(t *testing.T) {
	s := openTestStore(t)
	run, err := s.StartRun(RunInfo{Seed: 42, BoardSize: 10, Factions: 2, Iterations: 20})
	if err != nil {
		t.Fatalf("start run: %v", err)
	}
	if run.ID() == "" {
		t.Fatal("run must have an id")
	}

	snaps := []territory.Snapshot{
		{Tick: 10, Years: 0, Factions: []territory.FactionCensus{
			{Faction: 1, Owned: 12, Frontier: 8, Capital: core.Point{X: 3, Y: 4}, HasCapital: true},
			{Faction: 2, Owned: 9, Frontier: 6},
		}},
		{Tick: 20, Years: 1, Factions: []territory.FactionCensus{
			{Faction: 1, Owned: 15, Frontier: 9, Capital: core.Point{X: 3, Y: 4}, HasCapital: true},
			{Faction: 2, Owned: 0, Frontier: 0},
		}},
	}
	for _, snap := range snaps {
		if err := run.Render(snap); err != nil {
			t.Fatalf("render tick %d: %v", snap.Tick, err)
		}
	}
	if err := run.Finish(20, 250*time.Millisecond); err != nil {
		t.Fatalf("finish: %v", err)
	}

	rows, err := s.History(run.ID())
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	first := rows[0]
	if first.Tick != 10 || first.Faction != 1 || first.Owned != 12 || first.Frontier != 8 {
		t.Fatalf("unexpected first row %+v", first)
	}
	if first.CapitalX == nil || *first.CapitalX != 3 || first.CapitalY == nil || *first.CapitalY != 4 {
		t.Fatalf("capital not stored: %+v", first)
	}
	last := rows[3]
	if last.Tick != 20 || last.Year != 1 || last.Faction != 2 || last.Owned != 0 || last.CapitalX != nil {
		t.Fatalf("unexpected last row %+v", last)
	}

	rec, err := s.GetRun(run.ID())
	if err != nil {
		t.Fatalf("get run: %v", err)
	}
	if !rec.Finished || rec.Ticks != 20 || rec.ElapsedMS != 250 || rec.Seed != 42 || rec.BoardSize != 10 {
		t.Fatalf("unexpected run record %+v", rec)
	}
}

func TestRunsAreIsolated(t *testing.T) {
	s := openTestStore(t)
	a, err := s.StartRun(RunInfo{Seed: 1, BoardSize: 5, Factions: 1, Iterations: 1})
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.StartRun(RunInfo{Seed: 2, BoardSize: 5, Factions: 1, Iterations: 1})
	if err != nil {
		t.Fatal(err)
	}
	if a.ID() == b.ID() {
		t.Fatal("runs must get distinct ids")
	}
	snap := territory.Snapshot{Tick: 1, Factions: []territory.FactionCensus{{Faction: 1, Owned: 3, Frontier: 3}}}
	if err := a.Render(snap); err != nil {
		t.Fatal(err)
	}
	rows, err := s.History(b.ID())
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 0 {
		t.Fatalf("run b should have no rows, got %d", len(rows))
	}
	runs, err := s.Runs()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs listed, got %d", len(runs))
	}
	if _, err := s.GetRun("missing"); err == nil {
		t.Fatal("expected error for unknown run")
	}
}

func TestRecordsLiveWorld(t *testing.T) {
	s := openTestStore(t)
	cfg := territory.DefaultConfig()
	cfg.Size = 16
	cfg.Factions = 3
	w := territory.NewWithConfig(cfg)
	w.Reset(4)
	run, err := s.StartRun(RunInfo{Seed: 4, BoardSize: 16, Factions: 3, Iterations: 50})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 50; i++ {
		w.Step()
	}
	if err := run.Render(w.Snapshot()); err != nil {
		t.Fatal(err)
	}
	rows, err := s.History(run.ID())
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected one row per faction, got %d", len(rows))
	}
	for _, row := range rows {
		if row.Owned != w.OwnedCount(territory.Faction(row.Faction)) {
			t.Fatalf("row %+v disagrees with world", row)
		}
	}
}
