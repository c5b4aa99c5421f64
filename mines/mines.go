// Package mines generates and reshuffles the hidden mine set. Mines
// live only on the middle rows and never side by side within a row.
package mines

import (
	"sort"

	"lukechampine.com/frand"

	"github.com/domino14/minecheckers/board"
)

// DefaultCount is the number of mines in play.
const DefaultCount = 4

// A MineSet is a set of cells both sides must avoid landing on.
type MineSet map[board.Coord]struct{}

// Contains returns whether c is a mine.
func (m MineSet) Contains(c board.Coord) bool {
	_, ok := m[c]
	return ok
}

// Intersects returns whether the two sets share any mine.
func (m MineSet) Intersects(o MineSet) bool {
	for c := range m {
		if o.Contains(c) {
			return true
		}
	}
	return false
}

// Coords returns the mine coordinates in row-major order.
func (m MineSet) Coords() []board.Coord {
	coords := make([]board.Coord, 0, len(m))
	for c := range m {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Row != coords[j].Row {
			return coords[i].Row < coords[j].Row
		}
		return coords[i].Col < coords[j].Col
	})
	return coords
}

// Generate places count mines by rejection sampling: a candidate row is
// drawn from [1, Rows-2] and a column from [0, Cols-1], and the
// candidate is kept only if that cell is empty and neither same-row
// neighbor column already holds a mine. The loop has no attempt bound;
// with the fixed board dimensions and the default count there is always
// room, so it terminates. Degenerate configurations (count approaching
// the capacity of the middle rows under the adjacency rule) are not
// reachable through the config validation.
func Generate(b *board.GameBoard, count int, rng *frand.RNG) MineSet {
	m := make(MineSet, count)
	for len(m) < count {
		c := board.Coord{
			Row: 1 + rng.Intn(board.Rows-2),
			Col: rng.Intn(board.Cols),
		}
		if !b.IsEmpty(c) {
			continue
		}
		if m.Contains(board.Coord{Row: c.Row, Col: c.Col - 1}) ||
			m.Contains(board.Coord{Row: c.Row, Col: c.Col + 1}) {
			continue
		}
		m[c] = struct{}{}
	}
	return m
}

// Shuffle generates a replacement mine set sharing no position with the
// old one. It simply regenerates until the new set is disjoint.
func Shuffle(b *board.GameBoard, old MineSet, count int, rng *frand.RNG) MineSet {
	m := Generate(b, count, rng)
	for m.Intersects(old) {
		m = Generate(b, count, rng)
	}
	return m
}
