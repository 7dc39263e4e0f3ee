package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"territory-ca/internal/census"
)

func TestParseArgsAppliesOverrides(t *testing.T) {
	var stderr bytes.Buffer
	opts, err := parseArgs([]string{"-size", "20", "-factions", "3", "-iterations", "40", "-render-every", "10"}, &stderr)
	if err != nil {
		t.Fatalf("parse: %v (%s)", err, stderr.String())
	}
	if opts.sim.Size != 20 || opts.sim.Factions != 3 {
		t.Fatalf("unexpected sim config %+v", opts.sim)
	}
	if opts.engine.Iterations != 40 || opts.sim.Iterations != 40 || opts.engine.RenderEvery != 10 {
		t.Fatalf("unexpected engine options %+v", opts.engine)
	}
	if opts.sim.ChunkSize != 10 || opts.sim.Params.InitPopulation != 10 {
		t.Fatalf("defaults not preserved: %+v", opts.sim)
	}
}

func TestParseArgsRejectsNonNumeric(t *testing.T) {
	var stderr bytes.Buffer
	if _, err := parseArgs([]string{"-size", "big"}, &stderr); err == nil {
		t.Fatal("expected non-numeric size to fail")
	}
}

func TestParseArgsRejectsFractionalInteger(t *testing.T) {
	for _, args := range [][]string{
		{"-size", "2.5"},
		{"-factions", "3.0"},
		{"-seed", "1e3"},
		{"-weight_adjustment", "0"},
		{"-init_population", "-4"},
	} {
		var stderr bytes.Buffer
		if _, err := parseArgs(args, &stderr); err == nil {
			t.Fatalf("expected %v to be rejected", args)
		}
	}
	var stderr bytes.Buffer
	opts, err := parseArgs([]string{"-weight_adjustment", "2.5", "-seed", "-7"}, &stderr)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opts.sim.Params.WeightAdjustment != 2.5 || opts.sim.Seed != -7 {
		t.Fatalf("overrides not applied: %+v", opts.sim)
	}
}

func TestRunRendersAndRecordsCensus(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "census.db")
	var stdout, stderr bytes.Buffer
	args := []string{"-size", "12", "-factions", "2", "-iterations", "30", "-render-every", "10", "-mode", "clear", "-db", dbPath}
	if err := run(context.Background(), args, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v\n%s", err, stderr.String())
	}
	out := stdout.String()
	if got := strings.Count(out, "Tick: "); got != 3 {
		t.Fatalf("expected 3 frames, got %d", got)
	}
	if !strings.Contains(out, "TOTAL RUNTIME:") {
		t.Fatal("summary missing from output")
	}
	if !strings.Contains(stderr.String(), "run finished") {
		t.Fatalf("expected completion log, got %q", stderr.String())
	}

	store, err := census.Open(dbPath)
	if err != nil {
		t.Fatalf("reopen census: %v", err)
	}
	defer store.Close()
	runs, err := store.Runs()
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected one recorded run, got %d", len(runs))
	}
	if !runs[0].Finished || runs[0].Ticks != 30 {
		t.Fatalf("run not finished correctly: %+v", runs[0])
	}
	rows, err := store.History(runs[0].ID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(rows) != 3*2 {
		t.Fatalf("expected 6 census rows, got %d", len(rows))
	}
}

func TestRunRejectsUnknownMode(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), []string{"-mode", "sideways", "-iterations", "1"}, &stdout, &stderr); err == nil {
		t.Fatal("expected unknown mode to fail")
	}
}
