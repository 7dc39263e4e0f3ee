package territory

import (
	"fmt"

	"territory-ca/internal/core"
)

// Parameters describes the configuration for logs and the GUI overlay.
func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	lo, hi := w.SubStepRange()
	groups := []core.ParameterGroup{
		{
			Name:    "Board",
			Summary: fmt.Sprintf("%dx%d, %d factions", w.cfg.Size, w.cfg.Size, w.cfg.Factions),
			Params: []core.Parameter{
				core.IntParam("size", "Board size", w.cfg.Size),
				core.IntParam("chunk", "Chunk size", w.cfg.ChunkSize),
				core.IntParam("factions", "Factions", w.cfg.Factions),
				core.Int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name:    "Growth",
			Summary: fmt.Sprintf("%d%% base, exponent %g", params.GrowthRate, params.WeightAdjustment),
			Params: []core.Parameter{
				core.IntParam("growth_rate", "Growth rate", params.GrowthRate),
				core.FloatParam("weight_adjustment", "Weight adjustment", params.WeightAdjustment),
				core.IntParam("init_population", "Initial population", params.InitPopulation),
				core.IntParam("spawn_jitter", "Spawn jitter", params.SpawnJitter),
			},
		},
		{
			Name:    "Schedule",
			Summary: fmt.Sprintf("%d-%d sub-steps per tick", lo, hi),
			Params: []core.Parameter{
				core.IntParam("iterations", "Iterations", w.cfg.Iterations),
				core.IntParam("substeps_low", "Sub-steps low", lo),
				core.IntParam("substeps_high", "Sub-steps high", hi),
				core.IntParam("frontier_sample", "Frontier sample", params.FrontierSample),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}
