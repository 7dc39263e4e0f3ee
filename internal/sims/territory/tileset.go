package territory

import "territory-ca/internal/core"

// tileSet is an unordered set of board points with O(1) add, remove,
// membership and indexed access, so random samples need no copying.
type tileSet struct {
	items []core.Point
	index map[core.Point]int
}

func newTileSet() tileSet {
	return tileSet{index: make(map[core.Point]int)}
}

func (s *tileSet) add(p core.Point) bool {
	if _, ok := s.index[p]; ok {
		return false
	}
	s.index[p] = len(s.items)
	s.items = append(s.items, p)
	return true
}

// remove swaps the last element into the vacated slot.
func (s *tileSet) remove(p core.Point) bool {
	i, ok := s.index[p]
	if !ok {
		return false
	}
	last := len(s.items) - 1
	if i != last {
		moved := s.items[last]
		s.items[i] = moved
		s.index[moved] = i
	}
	s.items = s.items[:last]
	delete(s.index, p)
	return true
}

func (s *tileSet) contains(p core.Point) bool {
	_, ok := s.index[p]
	return ok
}

func (s *tileSet) len() int { return len(s.items) }

func (s *tileSet) at(i int) core.Point { return s.items[i] }

func (s *tileSet) clear() {
	s.items = s.items[:0]
	clear(s.index)
}

func (s *tileSet) points() []core.Point {
	return append([]core.Point(nil), s.items...)
}
