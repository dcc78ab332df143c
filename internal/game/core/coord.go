package core

import "fmt"

// Coord is a zero-indexed board position, row before column.
type Coord struct {
	Row, Col int
}

// Add returns the coordinate one step away in the given direction.
func (c Coord) Add(d Direction) Coord {
	return Coord{Row: c.Row + d.DR, Col: c.Col + d.DC}
}

// Less orders coordinates in row-major scan order. The legal-move map
// is iterated in this order so that search tie-breaking is reproducible.
func (c Coord) Less(other Coord) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Direction is one of the eight compass offsets used for capture
// scanning and flip application.
type Direction struct {
	DR, DC int
}

// Directions lists all eight compass offsets in fixed scan order.
var Directions = [8]Direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}
