// Package engine drives a territory world through its fixed tick schedule and
// hands snapshots to renderers at checkpoints.
package engine

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"time"

	"territory-ca/internal/core"
	"territory-ca/internal/sims/territory"
)

// ctxCheckInterval is how many ticks pass between cancellation checks.
const ctxCheckInterval = 1024

// Renderer receives read-only snapshots at checkpoints. Returning an error
// stops the run.
type Renderer interface {
	Render(snap territory.Snapshot) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(snap territory.Snapshot) error

// Render calls f(snap).
func (f RendererFunc) Render(snap territory.Snapshot) error { return f(snap) }

// Options controls the outer loop.
type Options struct {
	Iterations  int
	RenderEvery int
	RenderFinal bool
	// TPS throttles the loop to the given ticks per second; zero runs flat out.
	TPS int
}

// DefaultOptions mirrors the standard schedule: 350000 ticks, a checkpoint
// every 5000, and a final render.
func DefaultOptions() Options {
	return Options{Iterations: 350000, RenderEvery: 5000, RenderFinal: true}
}

// Bind attaches the options to the provided FlagSet.
func (o *Options) Bind(fs *flag.FlagSet) {
	fs.IntVar(&o.Iterations, "iterations", o.Iterations, "number of ticks to simulate")
	fs.IntVar(&o.RenderEvery, "render-every", o.RenderEvery, "render every N completed ticks (0 disables)")
	fs.BoolVar(&o.RenderFinal, "render-final", o.RenderFinal, "always render the final tick")
	fs.IntVar(&o.TPS, "tps", o.TPS, "ticks per second limit (0 = unthrottled)")
}

// Result summarises a finished run.
type Result struct {
	Ticks   int
	Renders int
	Elapsed time.Duration
	Final   territory.Snapshot
}

// Runner advances a single world. It is not safe for concurrent use.
type Runner struct {
	world     *territory.World
	opts      Options
	renderers []Renderer
	logger    *slog.Logger
}

// NewRunner constructs a Runner that fans snapshots out to renderers in order.
func NewRunner(world *territory.World, opts Options, renderers ...Renderer) *Runner {
	return &Runner{world: world, opts: opts, renderers: renderers, logger: slog.Default()}
}

// SetLogger replaces the logger used for run progress.
func (r *Runner) SetLogger(l *slog.Logger) {
	if l != nil {
		r.logger = l
	}
}

// Run performs Options.Iterations ticks on the world. It stops early only
// when ctx is cancelled or a renderer fails; the partial result is returned
// alongside the error.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	var res Result

	var pacer *core.FixedStep
	budget := 0
	if r.opts.TPS > 0 {
		pacer = core.NewFixedStep(r.opts.TPS)
		pacer.Due(0)
	}

	r.logger.Info("run started",
		"iterations", r.opts.Iterations,
		"render_every", r.opts.RenderEvery,
		"factions", r.world.FactionCount(),
	)

	for t := 1; t <= r.opts.Iterations; t++ {
		if t%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				res.Elapsed = time.Since(start)
				res.Final = r.world.Snapshot()
				return res, fmt.Errorf("run interrupted at tick %d: %w", res.Ticks, err)
			}
		}
		if pacer != nil {
			if budget == 0 {
				budget = pacer.Wait(r.opts.TPS)
			}
			budget--
		}

		r.world.Step()
		res.Ticks = t

		if !r.checkpoint(t) {
			continue
		}
		snap := r.world.Snapshot()
		if err := r.render(snap); err != nil {
			res.Elapsed = time.Since(start)
			res.Final = snap
			return res, err
		}
		res.Renders++
	}

	res.Elapsed = time.Since(start)
	res.Final = r.world.Snapshot()
	r.logger.Info("run finished",
		"ticks", res.Ticks,
		"renders", res.Renders,
		"alive", res.Final.Alive(),
		"elapsed", res.Elapsed,
	)
	return res, nil
}

func (r *Runner) checkpoint(t int) bool {
	if r.opts.RenderEvery > 0 && t%r.opts.RenderEvery == 0 {
		return true
	}
	return r.opts.RenderFinal && t == r.opts.Iterations
}

func (r *Runner) render(snap territory.Snapshot) error {
	last := r.world.LastStep()
	r.logger.Debug("checkpoint", "tick", snap.Tick, "years", snap.Years, "alive", snap.Alive(),
		"substeps", last.SubSteps, "sampled", last.Sampled)
	for _, rd := range r.renderers {
		if err := rd.Render(snap); err != nil {
			return fmt.Errorf("render tick %d: %w", snap.Tick, err)
		}
	}
	return nil
}
