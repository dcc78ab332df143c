package rules

import "github.com/Riroaki/Auto-Reversi/internal/game/core"

// LegalMoves scans every empty cell and collects the directions along
// which mover would capture. A cell with at least one capturing
// direction is a legal move.
func LegalMoves(board *core.Board, mover core.Cell) MoveSet {
	moves := make(MoveSet)
	for row := 0; row < core.Size; row++ {
		for col := 0; col < core.Size; col++ {
			c := core.Coord{Row: row, Col: col}
			if board.At(c) != core.Empty {
				continue
			}
			if dirs := captureDirections(board, c, mover); len(dirs) > 0 {
				moves[c] = dirs
			}
		}
	}
	return moves
}

// HasAnyMove reports whether mover has at least one legal move. It
// short-circuits on the first capturing cell, which keeps the
// evaluator's mobility check cheaper than building a full MoveSet.
func HasAnyMove(board *core.Board, mover core.Cell) bool {
	for row := 0; row < core.Size; row++ {
		for col := 0; col < core.Size; col++ {
			c := core.Coord{Row: row, Col: col}
			if board.At(c) != core.Empty {
				continue
			}
			if len(captureDirections(board, c, mover)) > 0 {
				return true
			}
		}
	}
	return false
}

// captureDirections walks outward from c in each of the 8 directions,
// crossing contiguous opponent cells. A direction captures when the
// run is non-empty and terminates in-bounds on mover's own color.
func captureDirections(board *core.Board, c core.Coord, mover core.Cell) []core.Direction {
	opponent := mover.Opponent()
	var dirs []core.Direction
	for _, d := range core.Directions {
		cur := c.Add(d)
		crossed := 0
		for board.InBounds(cur) && board.At(cur) == opponent {
			cur = cur.Add(d)
			crossed++
		}
		if crossed > 0 && board.InBounds(cur) && board.At(cur) == mover {
			dirs = append(dirs, d)
		}
	}
	return dirs
}
