package territory

import "territory-ca/internal/core"

// Capital returns f's capital tile, if it has one.
func (w *World) Capital(f Faction) (core.Point, bool) {
	if !w.valid(f) {
		return core.Point{}, false
	}
	st := &w.factions[f]
	return st.capital, st.hasCapital
}

// DesignateCapital marks p as f's capital. p must already belong to f.
func (w *World) DesignateCapital(f Faction, p core.Point) bool {
	if !w.valid(f) || !w.factions[f].owned.contains(p) {
		return false
	}
	w.factions[f].capital = p
	w.factions[f].hasCapital = true
	return true
}

// relocateCapitalAt moves any capital located at p to a random tile its
// faction still owns, or clears it when nothing is left. The acting faction's
// own capital is not exempt.
func (w *World) relocateCapitalAt(p core.Point) {
	for i := 1; i < len(w.factions); i++ {
		st := &w.factions[i]
		if !st.hasCapital || st.capital != p {
			continue
		}
		if st.owned.len() == 0 {
			st.hasCapital = false
			st.capital = core.Point{}
			continue
		}
		st.capital = st.owned.at(w.rng.IntN(st.owned.len()))
	}
}
