package territory

import (
	"image/color"

	"territory-ca/internal/core"
)

// FactionCensus summarises one faction's holdings.
type FactionCensus struct {
	Faction    Faction
	Owned      int
	Frontier   int
	Capital    core.Point
	HasCapital bool
}

// Snapshot is a read-only copy of the world handed to renderers. Mutating
// the world afterwards does not affect it.
type Snapshot struct {
	Size     int
	Tick     int
	Years    int
	Cells    []uint8
	Factions []FactionCensus
	Palette  []color.RGBA
}

// At returns the owner of (x, y) in the snapshot.
func (s Snapshot) At(x, y int) Faction {
	return Faction(s.Cells[y*s.Size+x])
}

// Alive returns how many factions still hold at least one tile.
func (s Snapshot) Alive() int {
	n := 0
	for _, fc := range s.Factions {
		if fc.Owned > 0 {
			n++
		}
	}
	return n
}

// Snapshot captures the current board, counters and census.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Size:     w.cfg.Size,
		Tick:     w.tick,
		Years:    w.years,
		Cells:    w.board.Flatten(nil),
		Factions: w.Census(),
		Palette:  append([]color.RGBA(nil), w.palette...),
	}
}

// Census reports every faction's owned and frontier counts and capital.
func (w *World) Census() []FactionCensus {
	out := make([]FactionCensus, 0, w.cfg.Factions)
	for i := 1; i < len(w.factions); i++ {
		st := &w.factions[i]
		out = append(out, FactionCensus{
			Faction:    Faction(i),
			Owned:      st.owned.len(),
			Frontier:   st.frontier.len(),
			Capital:    st.capital,
			HasCapital: st.hasCapital,
		})
	}
	return out
}
