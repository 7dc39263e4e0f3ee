package territory

import (
	"math"

	"territory-ca/internal/core"
)

// SpawnCenters splits a size*size board into a near-square grid of regions,
// one per faction in row-major order, and returns each region's centre.
func SpawnCenters(size, factions int) []core.Point {
	if factions <= 0 {
		return nil
	}
	rows := int(math.Ceil(math.Sqrt(float64(factions))))
	cols := int(math.Ceil(float64(factions) / float64(rows)))
	sectionW := size / cols
	sectionH := size / rows

	centers := make([]core.Point, factions)
	for i := range centers {
		col := i % cols
		row := i / cols
		centers[i] = core.Point{
			X: col*sectionW + sectionW/2,
			Y: row*sectionH + sectionH/2,
		}
	}
	return centers
}

// seedPopulations scatters InitPopulation cells around each faction's region
// centre. Placements that land off the board are skipped. Each faction's first
// placement becomes its capital.
func (w *World) seedPopulations() {
	jitter := w.cfg.Params.SpawnJitter
	var seeded []core.Point
	for i, center := range SpawnCenters(w.cfg.Size, w.cfg.Factions) {
		f := Faction(i + 1)
		for n := 0; n < w.cfg.Params.InitPopulation; n++ {
			p := core.Point{
				X: center.X + w.rng.IntRange(-jitter, jitter),
				Y: center.Y + w.rng.IntRange(-jitter, jitter),
			}
			if !w.board.InBounds(p.X, p.Y) {
				continue
			}
			w.transfer(p, f)
			w.factions[f].frontier.add(p)
			seeded = append(seeded, p)
			if !w.factions[f].hasCapital {
				w.DesignateCapital(f, p)
			}
		}
	}
	// Interior seeds are only frontier until their neighbours are known.
	for _, p := range seeded {
		w.refreshAround(p)
	}
}
