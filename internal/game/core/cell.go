package core

// Cell is the state of a single board cell.
// Empty means the cell has not been played yet.
type Cell int8

const (
	Empty Cell = iota
	Black
	White
)

// Opponent returns the opposing color. Calling it on Empty returns Empty.
func (c Cell) Opponent() Cell {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func (c Cell) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}
