// Package territory simulates competing factions expanding across a chunked
// square board. Frontier tiles grow probabilistically into orthogonal
// neighbours, favouring directions surrounded by friendly or empty cells.
package territory

import (
	"image/color"

	"territory-ca/internal/core"
)

// Faction identifies a cell owner. Empty marks an unowned cell; factions are
// numbered from 1.
type Faction uint8

// Empty is the value of an unowned cell.
const Empty Faction = 0

var orthogonal = [4]core.Point{{X: -1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 1}}

var moore = [8]core.Point{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

type factionState struct {
	owned      tileSet
	frontier   tileSet
	capital    core.Point
	hasCapital bool
}

// World is the complete simulation context: the board, every faction's cached
// tile sets, and the random source. It is not safe for concurrent use.
type World struct {
	cfg Config

	board    *core.ChunkGrid
	factions []factionState // indexed by Faction; slot 0 is unused

	subLow, subHigh int

	tick  int
	years int
	last  StepStats

	rng     *core.RNG
	display []uint8
	palette []color.RGBA

	candidates []core.Point
	weights    []int
	sample     []int
	batch      []core.Point
}

// New returns a territory simulation with the provided board size using defaults.
func New(size int) *World {
	cfg := DefaultConfig()
	cfg.Size = size
	return NewWithConfig(cfg)
}

// NewWithConfig returns a world configured from the provided options. The
// board starts empty until Reset seeds it.
func NewWithConfig(cfg Config) *World {
	cfg = cfg.normalized()
	w := &World{
		cfg:        cfg,
		board:      core.NewChunkGrid(cfg.Size, cfg.ChunkSize),
		factions:   make([]factionState, cfg.Factions+1),
		rng:        core.NewRNG(cfg.Seed),
		display:    make([]uint8, cfg.Size*cfg.Size),
		candidates: make([]core.Point, 0, len(orthogonal)),
		weights:    make([]int, 0, len(orthogonal)),
	}
	for i := range w.factions {
		w.factions[i].owned = newTileSet()
		w.factions[i].frontier = newTileSet()
	}
	w.subLow, w.subHigh = cfg.SubSteps()
	w.palette = buildPalette(cfg.Seed, cfg.Factions)
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "territory" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Size, H: w.cfg.Size} }

// Config returns the normalized configuration in use.
func (w *World) Config() Config { return w.cfg }

// Cells returns a row-major copy of the board suitable for display.
func (w *World) Cells() []uint8 {
	w.display = w.board.Flatten(w.display)
	return w.display
}

// FactionCount returns the number of factions on the board.
func (w *World) FactionCount() int { return w.cfg.Factions }

// Tick returns the number of completed ticks since the last Reset.
func (w *World) Tick() int { return w.tick }

// Years returns the cosmetic year counter.
func (w *World) Years() int { return w.years }

// SubStepRange returns the inclusive bounds on sub-steps per tick.
func (w *World) SubStepRange() (int, int) { return w.subLow, w.subHigh }

// InBounds reports whether (x, y) lies on the board.
func (w *World) InBounds(x, y int) bool { return w.board.InBounds(x, y) }

// Cell returns the owner of (x, y). It panics off the board.
func (w *World) Cell(x, y int) Faction { return Faction(w.board.Get(x, y)) }

// Reset clears the board and seeds the initial populations. A zero seed uses
// the configured seed.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng.Reseed(effective)
	w.palette = buildPalette(effective, w.cfg.Factions)
	w.board.Clear()
	for i := range w.factions {
		st := &w.factions[i]
		st.owned.clear()
		st.frontier.clear()
		st.hasCapital = false
		st.capital = core.Point{}
	}
	w.tick = 0
	w.years = 0
	w.last = StepStats{}
	w.seedPopulations()
}

// StepStats describes the work done by the most recent tick.
type StepStats struct {
	SubSteps int
	// Sampled counts the frontier tiles attempted across all sub-steps.
	Sampled int
	// MaxSample is the largest frontier sample taken by a single sub-step.
	MaxSample int
}

// LastStep reports what the most recent Step did.
func (w *World) LastStep() StepStats { return w.last }

// Step advances the simulation by one tick: a random number of sub-steps, each
// letting one random faction grow from up to FrontierSample of its frontier
// tiles.
func (w *World) Step() {
	stats := StepStats{SubSteps: w.rng.IntRange(w.subLow, w.subHigh)}
	for s := 0; s < stats.SubSteps; s++ {
		f := Faction(1 + w.rng.IntN(w.cfg.Factions))
		n := w.growFrom(f)
		stats.Sampled += n
		stats.MaxSample = max(stats.MaxSample, n)
	}
	w.last = stats
	w.tick++
	if w.tick%w.cfg.Params.YearTicks == 0 {
		w.years++
	}
}

// growFrom runs one sub-step for f and returns how many frontier tiles it
// attempted.
func (w *World) growFrom(f Faction) int {
	st := &w.factions[f]
	k := w.rng.IntN(w.cfg.Params.FrontierSample + 1)
	w.sample = w.rng.SampleIndices(w.sample[:0], st.frontier.len(), k)
	if len(w.sample) == 0 {
		return 0
	}
	// Growth mutates the frontier set, so resolve indices before acting.
	w.batch = w.batch[:0]
	for _, i := range w.sample {
		w.batch = append(w.batch, st.frontier.at(i))
	}
	for _, p := range w.batch {
		w.AttemptGrowth(p.X, p.Y, f)
	}
	return len(w.batch)
}

func (w *World) cellAt(p core.Point) Faction {
	return Faction(w.board.Get(p.X, p.Y))
}

// Claim gives p to faction f outside of the growth rule, keeping every cached
// set consistent. It reports whether the cell changed hands.
func (w *World) Claim(p core.Point, f Faction) bool {
	if !w.board.InBounds(p.X, p.Y) || int(f) > w.cfg.Factions {
		return false
	}
	if !w.transfer(p, f) {
		return false
	}
	w.refreshAround(p)
	return true
}

// transfer moves ownership of p to f. Capitals sitting on p are relocated
// after the previous owner has lost the tile.
func (w *World) transfer(p core.Point, f Faction) bool {
	prev := w.cellAt(p)
	if prev == f {
		return false
	}
	if prev != Empty {
		st := &w.factions[prev]
		st.owned.remove(p)
		st.frontier.remove(p)
	}
	w.relocateCapitalAt(p)
	w.board.Set(p.X, p.Y, uint8(f))
	if f != Empty {
		w.factions[f].owned.add(p)
	}
	return true
}

func init() {
	core.Register("territory", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return NewWithConfig(c)
	})
}
