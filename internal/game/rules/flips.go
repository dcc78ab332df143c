package rules

import "github.com/Riroaki/Auto-Reversi/internal/game/core"

// ApplyFlips places mover's piece at c and flips the opponent runs
// along each capturing direction. The directions must come from a
// legality scan of the same position: each run is then guaranteed to
// terminate on mover's own color, so no bounds re-check is needed.
func ApplyFlips(board *core.Board, c core.Coord, dirs []core.Direction, mover core.Cell) {
	opponent := mover.Opponent()
	board.Set(c, mover)
	for _, d := range dirs {
		cur := c.Add(d)
		for board.At(cur) == opponent {
			board.Set(cur, mover)
			cur = cur.Add(d)
		}
	}
}
