package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/google/uuid"

	"territory-ca/internal/census"
	"territory-ca/internal/engine"
	"territory-ca/internal/render"
	"territory-ca/internal/sims/territory"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		slog.Error("territory failed", "err", err)
		os.Exit(1)
	}
}

type options struct {
	sim     territory.Config
	engine  engine.Options
	mode    string
	dbPath  string
	verbose bool
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	opts := options{sim: territory.DefaultConfig(), engine: engine.DefaultOptions()}
	fs := flag.NewFlagSet("territory", flag.ContinueOnError)
	fs.SetOutput(stderr)

	overrides := map[string]string{}
	simFlag := func(key, usage string, def string) {
		fs.Func(key, usage+" (default "+def+")", func(v string) error {
			overrides[key] = v
			return nil
		})
	}
	d := opts.sim
	simFlag("size", "board edge length in cells", strconv.Itoa(d.Size))
	simFlag("chunk", "chunk edge length in cells", strconv.Itoa(d.ChunkSize))
	simFlag("factions", "number of competing factions", strconv.Itoa(d.Factions))
	simFlag("seed", "random seed", strconv.FormatInt(d.Seed, 10))
	simFlag("growth_rate", "base growth percentage", strconv.Itoa(d.Params.GrowthRate))
	simFlag("weight_adjustment", "direction weight exponent", strconv.FormatFloat(d.Params.WeightAdjustment, 'g', -1, 64))
	simFlag("init_population", "seed placements per faction", strconv.Itoa(d.Params.InitPopulation))
	simFlag("spawn_jitter", "maximum seed offset per axis", strconv.Itoa(d.Params.SpawnJitter))
	simFlag("substeps_low", "minimum sub-steps per tick (derived from size when unset)", "derived")
	simFlag("substeps_high", "maximum sub-steps per tick (derived from size when unset)", "derived")
	simFlag("frontier_sample", "largest frontier sample per sub-step", strconv.Itoa(d.Params.FrontierSample))

	opts.engine.Bind(fs)
	fs.StringVar(&opts.mode, "mode", string(render.ModeSequential), "terminal render mode: sequential or clear")
	fs.StringVar(&opts.dbPath, "db", "", "optional SQLite path for the census log")
	fs.BoolVar(&opts.verbose, "v", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	for key, v := range overrides {
		if err := checkOverride(key, v); err != nil {
			return opts, err
		}
	}
	opts.sim = territory.FromMap(overrides)
	// The engine flag owns the tick count; keep the config in step for logging.
	opts.sim.Iterations = opts.engine.Iterations
	return opts, nil
}

// checkOverride rejects values FromMap would silently ignore.
func checkOverride(key, v string) error {
	var err error
	switch key {
	case "weight_adjustment":
		var f float64
		if f, err = strconv.ParseFloat(v, 64); err == nil && f <= 0 {
			return fmt.Errorf("-%s must be positive, got %s", key, v)
		}
	case "seed":
		_, err = strconv.ParseInt(v, 10, 64)
	default:
		var n int
		if n, err = strconv.Atoi(v); err == nil && n < 0 {
			return fmt.Errorf("-%s must not be negative, got %s", key, v)
		}
	}
	if err != nil {
		return fmt.Errorf("invalid value %q for -%s", v, key)
	}
	return nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}
	mode, err := render.ParseMode(opts.mode)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	world := territory.NewWithConfig(opts.sim)
	world.Reset(opts.sim.Seed)

	term := render.NewTerminal(stdout, mode)
	renderers := []engine.Renderer{term}

	runID := uuid.NewString()
	var rec *census.Run
	if opts.dbPath != "" {
		store, err := census.Open(opts.dbPath)
		if err != nil {
			return err
		}
		defer store.Close()
		cfg := world.Config()
		rec, err = store.StartRun(census.RunInfo{
			Seed:       cfg.Seed,
			BoardSize:  cfg.Size,
			Factions:   cfg.Factions,
			Iterations: opts.engine.Iterations,
		})
		if err != nil {
			return err
		}
		runID = rec.ID()
		renderers = append(renderers, rec)
	}

	logger = logger.With("run", runID)
	logger.Info("configured", world.Parameters().LogAttrs()...)

	runner := engine.NewRunner(world, opts.engine, renderers...)
	runner.SetLogger(logger)

	if err := term.Begin(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	res, runErr := runner.Run(ctx)
	if err := term.Close(); err != nil && runErr == nil {
		runErr = fmt.Errorf("terminal: %w", err)
	}
	if rec != nil {
		if err := rec.Finish(res.Ticks, res.Elapsed); err != nil && runErr == nil {
			runErr = err
		}
	}
	if runErr != nil {
		return runErr
	}
	return term.Summary(res.Final, res.Elapsed)
}
