package territory

import (
	"image/color"

	"territory-ca/internal/core"
)

var emptyColor = color.RGBA{R: 20, G: 20, B: 24, A: 255}

// Palette exposes the colour for each cell value; index 0 is empty ground.
func (w *World) Palette() []color.RGBA {
	return w.palette
}

// buildPalette draws one random opaque colour per faction. It uses its own
// stream so colours never perturb the simulation's random sequence.
func buildPalette(seed int64, factions int) []color.RGBA {
	rng := core.NewRNG(seed + 400)
	palette := make([]color.RGBA, factions+1)
	palette[0] = emptyColor
	for i := 1; i < len(palette); i++ {
		palette[i] = color.RGBA{
			R: uint8(rng.IntN(256)),
			G: uint8(rng.IntN(256)),
			B: uint8(rng.IntN(256)),
			A: 255,
		}
	}
	return palette
}
