package territory

import "territory-ca/internal/core"

// RefreshFrontier reclassifies the tile at (x, y) for its owner's frontier
// set. Off-board and empty tiles are ignored. Calling it repeatedly on an
// unchanged tile has no further effect.
func (w *World) RefreshFrontier(x, y int) {
	if !w.board.InBounds(x, y) {
		return
	}
	owner := Faction(w.board.Get(x, y))
	if owner == Empty {
		return
	}
	p := core.Point{X: x, Y: y}
	st := &w.factions[owner]
	if w.bordersOther(x, y, owner) {
		st.frontier.add(p)
	} else {
		st.frontier.remove(p)
	}
}

// bordersOther reports whether any on-board orthogonal neighbour is empty or
// held by a faction other than owner.
func (w *World) bordersOther(x, y int, owner Faction) bool {
	for _, d := range orthogonal {
		nx, ny := x+d.X, y+d.Y
		if !w.board.InBounds(nx, ny) {
			continue
		}
		if Faction(w.board.Get(nx, ny)) != owner {
			return true
		}
	}
	return false
}

func (w *World) refreshAround(p core.Point) {
	w.RefreshFrontier(p.X, p.Y)
	for _, d := range orthogonal {
		w.RefreshFrontier(p.X+d.X, p.Y+d.Y)
	}
}

// IsFrontier reports whether p is currently in f's frontier set.
func (w *World) IsFrontier(f Faction, p core.Point) bool {
	if !w.valid(f) {
		return false
	}
	return w.factions[f].frontier.contains(p)
}

// Frontier returns a copy of f's frontier tiles in no particular order.
func (w *World) Frontier(f Faction) []core.Point {
	if !w.valid(f) {
		return nil
	}
	return w.factions[f].frontier.points()
}

// FrontierCount returns the size of f's frontier set.
func (w *World) FrontierCount(f Faction) int {
	if !w.valid(f) {
		return 0
	}
	return w.factions[f].frontier.len()
}

// Owned returns a copy of f's owned tiles in no particular order.
func (w *World) Owned(f Faction) []core.Point {
	if !w.valid(f) {
		return nil
	}
	return w.factions[f].owned.points()
}

// OwnedCount returns how many cells f holds.
func (w *World) OwnedCount(f Faction) int {
	if !w.valid(f) {
		return 0
	}
	return w.factions[f].owned.len()
}

func (w *World) valid(f Faction) bool {
	return f != Empty && int(f) <= w.cfg.Factions
}
