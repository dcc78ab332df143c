package testutil

import (
	"fmt"

	"github.com/Riroaki/Auto-Reversi/internal/game/core"
)

// BoardFromStrings builds a board from one string per row, with 'B'
// for black, 'W' for white and '.' for empty. Rows must match the
// board size exactly; panics otherwise since fixtures are authored by
// hand and a malformed one is a test bug.
func BoardFromStrings(rows []string) core.Board {
	if len(rows) != core.Size {
		panic(fmt.Sprintf("expected %d rows, got %d", core.Size, len(rows)))
	}

	var board core.Board
	for r, row := range rows {
		if len(row) != core.Size {
			panic(fmt.Sprintf("row %d: expected %d cells, got %d", r, core.Size, len(row)))
		}
		for c, ch := range row {
			switch ch {
			case 'B':
				board[r][c] = core.Black
			case 'W':
				board[r][c] = core.White
			case '.':
				board[r][c] = core.Empty
			default:
				panic(fmt.Sprintf("row %d col %d: unknown cell %q", r, c, ch))
			}
		}
	}
	return board
}

// OpeningBoard returns the classic Othello start: white on the main
// diagonal, black on the anti-diagonal. Tests that must not depend on
// the engine's coin flip use this fixed assignment.
func OpeningBoard() core.Board {
	var board core.Board
	board.SetOpening(core.White, core.Black)
	return board
}
