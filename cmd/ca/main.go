//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"territory-ca/internal/app"
	"territory-ca/internal/core"
	_ "territory-ca/internal/sims/territory"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		slog.Error("unknown sim", "sim", cfg.Sim, "available", core.SimNames())
		os.Exit(1)
	}

	sim := factory(cfg.SimArgs())
	sim.Reset(cfg.Seed)
	if p, ok := sim.(core.ParameterProvider); ok {
		slog.Info("configured", p.Parameters().LogAttrs()...)
	}

	game := app.New(sim, cfg.Scale, cfg.TPS, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("territory-ca: " + sim.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		slog.Error("game exited", "err", err)
		os.Exit(1)
	}
}
