package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"territory-ca/internal/sims/territory"
)

type paramSet struct {
	growthRate int
	weightAdj  float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("growth=%d weight=%s", p.growthRate, humanize.Ftoa(p.weightAdj))
}

type job struct {
	params paramSet
	seed   int64
}

type scenarioResult struct {
	params       paramSet
	seed         int64
	alive        int
	largestShare float64
	claimed      int
}

type summary struct {
	params       paramSet
	runs         int
	meanAlive    float64
	meanLargest  float64
	meanCoverage float64
}

func main() {
	ticks := flag.Int("ticks", 20000, "ticks to simulate per scenario")
	runs := flag.Int("runs", 4, "seeds per parameter set")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	size := flag.Int("size", 50, "board edge length")
	factions := flag.Int("factions", 9, "number of factions")
	seed := flag.Int64("seed", 1337, "first seed; later runs use consecutive seeds")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := checkFlags(*size, *factions, *runs, *ticks); err != nil {
		logger.Error("invalid flags", "err", err)
		os.Exit(2)
	}

	base := territory.DefaultConfig()
	base.Size = *size
	base.Factions = *factions

	growthOptions := []int{1, 5, 20, 50}
	weightOptions := []float64{1, 10, 100}

	var sets []paramSet
	for _, g := range growthOptions {
		for _, w := range weightOptions {
			sets = append(sets, paramSet{growthRate: g, weightAdj: w})
		}
	}

	logger.Info("sweep started",
		"sets", len(sets), "runs", *runs, "workers", *workers, "ticks", humanize.Comma(int64(*ticks)))

	start := time.Now()
	summaries := sweep(base, sets, *seed, *runs, *ticks, *workers)
	elapsed := time.Since(start)

	sort.Slice(summaries, func(i, j int) bool { return summaries[i].meanAlive > summaries[j].meanAlive })

	fmt.Printf("%d scenarios in %s\n", len(sets)*(*runs), elapsed.Round(time.Millisecond))
	for i, s := range summaries {
		fmt.Printf("%2d) %-24s alive=%s largest=%s%% coverage=%s%%\n",
			i+1, s.params, humanize.FtoaWithDigits(s.meanAlive, 2),
			humanize.FtoaWithDigits(100*s.meanLargest, 1), humanize.FtoaWithDigits(100*s.meanCoverage, 1))
	}
}

// checkFlags rejects settings that would make the averages meaningless.
func checkFlags(size, factions, runs, ticks int) error {
	switch {
	case size <= 0:
		return fmt.Errorf("-size must be positive, got %d", size)
	case factions <= 0:
		return fmt.Errorf("-factions must be positive, got %d", factions)
	case runs <= 0:
		return fmt.Errorf("-runs must be positive, got %d", runs)
	case ticks < 0:
		return fmt.Errorf("-ticks must not be negative, got %d", ticks)
	}
	return nil
}

// sweep runs every parameter set against runs consecutive seeds on a pool of
// workers and averages the outcomes per set. Results follow the order of sets.
func sweep(base territory.Config, sets []paramSet, firstSeed int64, runs, ticks, workers int) []summary {
	if workers < 1 {
		workers = 1
	}
	jobs := make(chan job)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- runScenario(base, j, ticks)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			for r := 0; r < runs; r++ {
				jobs <- job{params: params, seed: firstSeed + int64(r)}
			}
		}
		close(jobs)
	}()

	bySet := make(map[paramSet]*summary, len(sets))
	for _, p := range sets {
		bySet[p] = &summary{params: p}
	}
	for res := range results {
		s := bySet[res.params]
		s.runs++
		s.meanAlive += float64(res.alive)
		s.meanLargest += res.largestShare
		s.meanCoverage += float64(res.claimed) / float64(base.Size*base.Size)
	}

	out := make([]summary, 0, len(sets))
	for _, p := range sets {
		s := *bySet[p]
		if s.runs > 0 {
			n := float64(s.runs)
			s.meanAlive /= n
			s.meanLargest /= n
			s.meanCoverage /= n
		}
		out = append(out, s)
	}
	return out
}

func runScenario(base territory.Config, j job, ticks int) scenarioResult {
	cfg := base
	cfg.Seed = j.seed
	cfg.Iterations = ticks
	cfg.Params.GrowthRate = j.params.growthRate
	cfg.Params.WeightAdjustment = j.params.weightAdj

	world := territory.NewWithConfig(cfg)
	world.Reset(j.seed)
	for t := 0; t < ticks; t++ {
		world.Step()
	}

	res := scenarioResult{params: j.params, seed: j.seed}
	area := float64(cfg.Size * cfg.Size)
	for _, fc := range world.Census() {
		if fc.Owned == 0 {
			continue
		}
		res.alive++
		res.claimed += fc.Owned
		if share := float64(fc.Owned) / area; share > res.largestShare {
			res.largestShare = share
		}
	}
	return res
}
