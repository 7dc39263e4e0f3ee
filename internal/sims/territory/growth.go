package territory

import (
	"math"

	"territory-ca/internal/core"
)

// AttemptGrowth lets faction f try to expand from the tile at (x, y). The
// tile acts with probability (GrowthRate + 2*CountFriendly)%; it then picks an
// orthogonal neighbour weighted by that neighbour's friendly count raised to
// WeightAdjustment and takes it over when it is not already f's. Frontier
// membership is refreshed for every tile whose classification may have
// changed. It reports whether a cell changed hands; failed rolls and
// directionless tiles are ordinary no-ops.
func (w *World) AttemptGrowth(x, y int, f Faction) bool {
	p := w.cfg.Params.GrowthRate + 2*w.CountFriendly(x, y, f)
	if w.rng.IntN(100) >= p {
		return false
	}

	w.candidates = w.candidates[:0]
	w.weights = w.weights[:0]
	total := 0
	for _, d := range orthogonal {
		c := core.Point{X: x + d.X, Y: y + d.Y}
		if !w.board.InBounds(c.X, c.Y) {
			continue
		}
		weight := 0
		if w.cellAt(c) != f {
			weight = w.CountFriendly(c.X, c.Y, f)
		}
		w.candidates = append(w.candidates, c)
		w.weights = append(w.weights, weight)
		total += weight
	}
	if total == 0 {
		return false
	}

	target := w.candidates[WeightedIndex(w.rng, w.weights, w.cfg.Params.WeightAdjustment)]
	changed := false
	if w.cellAt(target) != f {
		changed = w.transfer(target, f)
	}

	w.RefreshFrontier(x, y)
	for _, c := range w.candidates {
		w.RefreshFrontier(c.X, c.Y)
	}
	if changed {
		w.refreshAround(target)
	}
	return changed
}

// WeightedIndex picks an index with probability proportional to
// weights[i]^exponent. It draws u in [0, 1) and returns the first index whose
// cumulative probability exceeds u, falling back to the last index when
// rounding leaves u uncovered. It returns -1 when no weight is positive.
func WeightedIndex(rng *core.RNG, weights []int, exponent float64) int {
	maxWeight := 0
	for _, wt := range weights {
		if wt > maxWeight {
			maxWeight = wt
		}
	}
	if maxWeight == 0 {
		return -1
	}

	// Scaling by the largest weight leaves the distribution unchanged and
	// keeps large exponents finite.
	var buf [8]float64
	probs := buf[:0]
	total := 0.0
	for _, wt := range weights {
		v := 0.0
		if wt > 0 {
			v = math.Pow(float64(wt)/float64(maxWeight), exponent)
		}
		probs = append(probs, v)
		total += v
	}

	u := rng.Float64()
	sum := 0.0
	for i, v := range probs {
		sum += v / total
		if sum > u {
			return i
		}
	}
	return len(weights) - 1
}
