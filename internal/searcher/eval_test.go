package searcher

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Riroaki/Auto-Reversi/internal/game/core"
	"github.com/Riroaki/Auto-Reversi/internal/testutil"
)

func TestBuildWeights(t *testing.T) {
	tests := []struct {
		name     string
		coord    core.Coord
		expected int
	}{
		{"corner top-left", core.Coord{Row: 0, Col: 0}, scoreCorner},
		{"corner bottom-right", core.Coord{Row: 7, Col: 7}, scoreCorner},
		{"edge next to corner", core.Coord{Row: 0, Col: 1}, scoreAround},
		{"edge below corner", core.Coord{Row: 1, Col: 0}, scoreAround},
		{"edge near bottom corner", core.Coord{Row: 7, Col: 6}, scoreAround},
		{"plain top edge", core.Coord{Row: 0, Col: 3}, scoreEdge},
		{"plain left edge", core.Coord{Row: 4, Col: 0}, scoreEdge},
		{"x-square is interior", core.Coord{Row: 1, Col: 1}, scoreNormal},
		{"center", core.Coord{Row: 3, Col: 4}, scoreNormal},
		{"interior near edge", core.Coord{Row: 1, Col: 4}, scoreNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cellWeights[tt.coord.Row][tt.coord.Col])
		})
	}
}

func TestEvaluatePosition_Antisymmetry(t *testing.T) {
	boards := map[string]core.Board{
		"opening": testutil.OpeningBoard(),
		"midgame": midgameBoard(),
		"lopsided": testutil.BoardFromStrings([]string{
			"BBBBBBBB",
			"BBBBBBBB",
			"W.......",
			"........",
			"........",
			"........",
			"........",
			"........",
		}),
	}

	for name, board := range boards {
		t.Run(name, func(t *testing.T) {
			black := EvaluatePosition(&board, core.Black)
			white := EvaluatePosition(&board, core.White)
			assert.Equal(t, black, -white)
		})
	}
}

func TestEvaluatePosition_CornerDominates(t *testing.T) {
	withCorner := testutil.BoardFromStrings([]string{
		"B.......",
		"........",
		"........",
		"...BW...",
		"...WB...",
		"........",
		"........",
		"........",
	})
	withoutCorner := testutil.BoardFromStrings([]string{
		"........",
		"........",
		"..B.....",
		"...BW...",
		"...WB...",
		"........",
		"........",
		"........",
	})

	assert.Greater(t,
		EvaluatePosition(&withCorner, core.Black),
		EvaluatePosition(&withoutCorner, core.Black))
}

func TestEvaluatePosition_FreedomBonus(t *testing.T) {
	// White has a single piece boxed in with no reply anywhere, so
	// black's score carries the +100 mobility bonus on top of the
	// cell tally.
	board := testutil.BoardFromStrings([]string{
		"BBBB....",
		"........",
		"........",
		"........",
		"........",
		"W.......",
		"B.......",
		"B.......",
	})

	cellScore := 0
	for row := 0; row < core.Size; row++ {
		for col := 0; col < core.Size; col++ {
			switch board[row][col] {
			case core.Black:
				cellScore += cellWeights[row][col]
			case core.White:
				cellScore -= cellWeights[row][col]
			}
		}
	}

	assert.Equal(t, cellScore+freedomBonus, EvaluatePosition(&board, core.Black))
}
