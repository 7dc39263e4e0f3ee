package territory

// CountFriendly returns how many of the eight cells around (x, y) are either
// empty or owned by f. Off-board neighbours are skipped. It does not require
// (x, y) itself to be on the board.
func (w *World) CountFriendly(x, y int, f Faction) int {
	n := 0
	for _, d := range moore {
		nx, ny := x+d.X, y+d.Y
		if !w.board.InBounds(nx, ny) {
			continue
		}
		if c := Faction(w.board.Get(nx, ny)); c == Empty || c == f {
			n++
		}
	}
	return n
}
