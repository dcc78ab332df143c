package core

// Size is the side length of the square board.
const Size = 8

// Board is a fixed-size Reversi board, row-major and zero-indexed.
// It is a value type: plain assignment produces an independent deep
// copy, which is what the searcher relies on when simulating moves.
type Board [Size][Size]Cell

// Counts holds the number of cells per state.
type Counts struct {
	Black int
	White int
	Empty int
}

// Total returns the number of cells accounted for; it is always Size*Size.
func (c Counts) Total() int {
	return c.Black + c.White + c.Empty
}

// InBounds reports whether the coordinate lies on the board.
func (b *Board) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// At returns the cell at the coordinate. The coordinate must be in bounds.
func (b *Board) At(c Coord) Cell {
	return b[c.Row][c.Col]
}

// Set overwrites the cell at the coordinate.
func (b *Board) Set(c Coord, cell Cell) {
	b[c.Row][c.Col] = cell
}

// Count tallies the board from scratch.
func (b *Board) Count() Counts {
	var counts Counts
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			switch b[row][col] {
			case Black:
				counts.Black++
			case White:
				counts.White++
			default:
				counts.Empty++
			}
		}
	}
	return counts
}

// SetOpening places the four center pieces: one diagonal pair takes
// first, the other takes second. Which color sits on which diagonal is
// the caller's choice (the engine flips a coin).
func (b *Board) SetOpening(first, second Cell) {
	mid := Size / 2
	b[mid-1][mid-1] = first
	b[mid][mid] = first
	b[mid-1][mid] = second
	b[mid][mid-1] = second
}
