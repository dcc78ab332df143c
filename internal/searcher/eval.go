package searcher

import (
	"github.com/Riroaki/Auto-Reversi/internal/game/core"
	"github.com/Riroaki/Auto-Reversi/internal/game/rules"
)

// Evaluator scores a board from self's perspective; higher is better
// for self.
type Evaluator func(board *core.Board, self core.Cell) int

// Positional weights
const (
	scoreCorner = 100 // corners can never be flipped back
	scoreAround = -10 // cells near a corner hand it to the opponent
	scoreEdge   = 10
	scoreNormal = 1

	// freedomBonus rewards positions where the opponent is out of
	// moves and penalizes ones where self is.
	freedomBonus = 100
)

// cellWeights is the positional weight grid, built once at startup.
var cellWeights = buildWeights()

func buildWeights() [core.Size][core.Size]int {
	var weights [core.Size][core.Size]int
	corner := map[int]bool{0: true, core.Size - 1: true}
	around := map[int]bool{0: true, 1: true, core.Size - 2: true, core.Size - 1: true}

	for row := 0; row < core.Size; row++ {
		for col := 0; col < core.Size; col++ {
			switch {
			case row > 0 && row < core.Size-1 && col > 0 && col < core.Size-1:
				weights[row][col] = scoreNormal
			case corner[row] && corner[col]:
				weights[row][col] = scoreCorner
			case around[row] && around[col]:
				weights[row][col] = scoreAround
			default:
				weights[row][col] = scoreEdge
			}
		}
	}
	return weights
}

// EvaluatePosition is the default static evaluator: a weighted cell
// tally plus a mobility bonus for locking the opponent out of moves.
// It is antisymmetric: EvaluatePosition(b, x) == -EvaluatePosition(b,
// x.Opponent()).
func EvaluatePosition(board *core.Board, self core.Cell) int {
	opponent := self.Opponent()

	cellScore := 0
	for row := 0; row < core.Size; row++ {
		for col := 0; col < core.Size; col++ {
			switch board[row][col] {
			case self:
				cellScore += cellWeights[row][col]
			case opponent:
				cellScore -= cellWeights[row][col]
			}
		}
	}

	freedomScore := 0
	if !rules.HasAnyMove(board, opponent) {
		freedomScore += freedomBonus
	}
	if !rules.HasAnyMove(board, self) {
		freedomScore -= freedomBonus
	}

	return cellScore + freedomScore
}
