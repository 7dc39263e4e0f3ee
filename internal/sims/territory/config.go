package territory

import (
	"strconv"
)

const (
	maxSubStepsLow  = 15
	maxSubStepsHigh = 30
	maxFactions     = 255
)

// Params holds the tunable growth and scheduling constants.
type Params struct {
	// GrowthRate is the base percentage chance for a frontier tile to act.
	GrowthRate int
	// WeightAdjustment is the exponent applied to direction weights before
	// sampling. Large values make selection nearly greedy. It must be
	// positive: a zero-weight direction is never chosen.
	WeightAdjustment float64
	// InitPopulation is the number of seed placements per faction.
	InitPopulation int
	// SpawnJitter is the maximum per-axis offset of a seed from its region
	// centre.
	SpawnJitter int
	// SubStepsLow and SubStepsHigh bound the inclusive number of sub-steps per
	// tick. Negative values are derived from the board size.
	SubStepsLow  int
	SubStepsHigh int
	// FrontierSample is the largest number of frontier tiles processed per
	// sub-step; the actual count is uniform in [0, FrontierSample].
	FrontierSample int
	// YearTicks is how many ticks make up one cosmetic year.
	YearTicks int
}

// Config controls the territory simulation dimensions and schedule.
type Config struct {
	Size       int
	ChunkSize  int
	Factions   int
	Iterations int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size:       50,
		ChunkSize:  10,
		Factions:   9,
		Iterations: 350000,
		Seed:       1337,
		Params: Params{
			GrowthRate:       1,
			WeightAdjustment: 100.0,
			InitPopulation:   10,
			SpawnJitter:      2,
			SubStepsLow:      -1,
			SubStepsHigh:     -1,
			FrontierSample:   2,
			YearTicks:        12,
		},
	}
}

// DeriveSubSteps returns the per-tick sub-step bounds for a board edge length:
// 5% and 10% of the size, capped at 15 and 30.
func DeriveSubSteps(size int) (int, int) {
	base := float64(size) * 0.05
	return min(int(base), maxSubStepsLow), min(int(base*2), maxSubStepsHigh)
}

// SubSteps resolves the configured sub-step bounds, deriving any negative
// bound from the board size.
func (c Config) SubSteps() (int, int) {
	lo, hi := DeriveSubSteps(c.Size)
	if c.Params.SubStepsLow >= 0 {
		lo = c.Params.SubStepsLow
	}
	if c.Params.SubStepsHigh >= 0 {
		hi = c.Params.SubStepsHigh
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

func (c Config) normalized() Config {
	if c.Size <= 0 {
		c.Size = 1
	}
	if c.ChunkSize <= 0 {
		c.ChunkSize = c.Size
	}
	if c.Factions < 1 {
		c.Factions = 1
	}
	if c.Factions > maxFactions {
		c.Factions = maxFactions
	}
	if c.Iterations < 0 {
		c.Iterations = 0
	}
	if c.Params.InitPopulation < 0 {
		c.Params.InitPopulation = 0
	}
	if c.Params.SpawnJitter < 0 {
		c.Params.SpawnJitter = 0
	}
	if c.Params.FrontierSample < 0 {
		c.Params.FrontierSample = 0
	}
	if c.Params.WeightAdjustment <= 0 {
		c.Params.WeightAdjustment = DefaultConfig().Params.WeightAdjustment
	}
	if c.Params.YearTicks <= 0 {
		c.Params.YearTicks = 12
	}
	return c
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unknown keys and unparsable values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["chunk"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.ChunkSize = parsed
		}
	}
	if v, ok := cfg["factions"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= maxFactions {
			c.Factions = parsed
		}
	}
	if v, ok := cfg["iterations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Iterations = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["growth_rate"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Params.GrowthRate = parsed
		}
	}
	if v, ok := cfg["weight_adjustment"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.WeightAdjustment = parsed
		}
	}
	if v, ok := cfg["init_population"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.InitPopulation = parsed
		}
	}
	if v, ok := cfg["spawn_jitter"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.SpawnJitter = parsed
		}
	}
	if v, ok := cfg["substeps_low"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.SubStepsLow = parsed
		}
	}
	if v, ok := cfg["substeps_high"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.SubStepsHigh = parsed
		}
	}
	if v, ok := cfg["frontier_sample"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.FrontierSample = parsed
		}
	}
	return c
}
