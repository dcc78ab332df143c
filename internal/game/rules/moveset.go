package rules

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/Riroaki/Auto-Reversi/internal/game/core"
)

// MoveSet maps each legal destination cell to the directions along
// which placing there captures at least one opponent run. Keys are
// unique by construction: one entry per playable cell.
type MoveSet map[core.Coord][]core.Direction

// Contains reports whether the cell is a legal destination.
func (ms MoveSet) Contains(c core.Coord) bool {
	_, ok := ms[c]
	return ok
}

// Ordered returns the destinations in row-major scan order. Map
// iteration order is random in Go, so every consumer that needs
// reproducible tie-breaking (the searcher in particular) must go
// through this.
func (ms MoveSet) Ordered() []core.Coord {
	coords := maps.Keys(ms)
	slices.SortFunc(coords, func(a, b core.Coord) int {
		if a.Less(b) {
			return -1
		}
		if b.Less(a) {
			return 1
		}
		return 0
	})
	return coords
}
