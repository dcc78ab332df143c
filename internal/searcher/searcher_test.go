package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Riroaki/Auto-Reversi/internal/game/core"
	"github.com/Riroaki/Auto-Reversi/internal/game/rules"
	"github.com/Riroaki/Auto-Reversi/internal/testutil"
)

// naiveNegamax is an unpruned reference search with the same pass
// handling and tie-break rule as the real one. Pruning must never
// change the chosen move, only the amount of work.
func naiveNegamax(board core.Board, self core.Cell, depth int, isMax bool) (core.Coord, int, bool) {
	sign := 1
	if !isMax {
		sign = -1
	}
	if depth <= 0 {
		return core.Coord{}, sign * EvaluatePosition(&board, self), false
	}

	mover := self
	if !isMax {
		mover = self.Opponent()
	}
	moves := rules.LegalMoves(&board, mover)
	if len(moves) == 0 {
		if !rules.HasAnyMove(&board, mover.Opponent()) {
			return core.Coord{}, sign * EvaluatePosition(&board, self), false
		}
		_, score, _ := naiveNegamax(board, self, depth-1, !isMax)
		return core.Coord{}, -score, false
	}

	bestMove := core.Coord{}
	bestScore := math.MinInt32
	for _, move := range moves.Ordered() {
		child := board
		rules.ApplyFlips(&child, move, moves[move], mover)
		_, score, _ := naiveNegamax(child, self, depth-1, !isMax)
		if score = -score; score > bestScore {
			bestMove, bestScore = move, score
		}
	}
	return bestMove, bestScore, true
}

func midgameBoard() core.Board {
	return testutil.BoardFromStrings([]string{
		"........",
		"..W.....",
		"..BWW...",
		"..WBWB..",
		"..WWBB..",
		"....BW..",
		"........",
		"........",
	})
}

func TestChooseMove_OpeningDepthOne(t *testing.T) {
	board := testutil.OpeningBoard()
	s := New(WithDepth(1), WithLogger(testutil.NopLogger()))

	move, ok := s.ChooseMove(board, core.Black)
	require.True(t, ok)

	// All four openings score the same by symmetry; the first one in
	// board scan order wins the tie.
	openings := []core.Coord{{Row: 2, Col: 3}, {Row: 3, Col: 2}, {Row: 4, Col: 5}, {Row: 5, Col: 4}}
	assert.Contains(t, openings, move)
	assert.Equal(t, core.Coord{Row: 2, Col: 3}, move)
}

func TestChooseMove_NoLegalMove(t *testing.T) {
	// Black has no piece adjacent to a capturable white run.
	board := testutil.BoardFromStrings([]string{
		"W.......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	})
	s := New(WithDepth(3), WithLogger(testutil.NopLogger()))

	_, ok := s.ChooseMove(board, core.Black)
	assert.False(t, ok)
}

func TestChooseMove_NonPositiveDepthPanics(t *testing.T) {
	s := &Searcher{evaluate: EvaluatePosition, logger: testutil.NopLogger()}
	assert.Panics(t, func() { s.ChooseMove(core.Board{}, core.Black) })
}

func TestChooseMove_InvalidColorPanics(t *testing.T) {
	s := New(WithDepth(1), WithLogger(testutil.NopLogger()))
	assert.Panics(t, func() { s.ChooseMove(core.Board{}, core.Empty) })
}

func TestChooseMove_TakesCorner(t *testing.T) {
	// Black can take the (0,0) corner; at depth 1 the corner weight
	// dominates every alternative.
	board := testutil.BoardFromStrings([]string{
		".WB.....",
		"........",
		"..WWW...",
		"..WBWB..",
		"..WWBB..",
		"....BW..",
		"........",
		"........",
	})
	s := New(WithDepth(1), WithLogger(testutil.NopLogger()))

	move, ok := s.ChooseMove(board, core.Black)
	require.True(t, ok)
	assert.Equal(t, core.Coord{Row: 0, Col: 0}, move)
}

func TestChooseMove_MatchesUnprunedSearch(t *testing.T) {
	tests := []struct {
		name  string
		board core.Board
		self  core.Cell
		depth int
	}{
		{"opening black depth 2", testutil.OpeningBoard(), core.Black, 2},
		{"opening white depth 3", testutil.OpeningBoard(), core.White, 3},
		{"midgame black depth 3", midgameBoard(), core.Black, 3},
		{"midgame white depth 4", midgameBoard(), core.White, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(WithDepth(tt.depth), WithLogger(testutil.NopLogger()))
			pruned, ok := s.ChooseMove(tt.board, tt.self)
			require.True(t, ok)

			expected, _, ok := naiveNegamax(tt.board, tt.self, tt.depth, true)
			require.True(t, ok)

			assert.Equal(t, expected, pruned)
		})
	}
}

func TestChooseMove_PassPly(t *testing.T) {
	// After black caps the top row, white must pass inside the search
	// tree; deeper searches have to cross that pass without crashing
	// or flipping signs.
	board := testutil.BoardFromStrings([]string{
		"BWW.....",
		"........",
		"........",
		"........",
		"........",
		"W.......",
		"B.......",
		"B.......",
	})
	for depth := 1; depth <= 4; depth++ {
		s := New(WithDepth(depth), WithLogger(testutil.NopLogger()))
		pruned, ok := s.ChooseMove(board, core.Black)
		require.True(t, ok, "depth %d", depth)

		expected, _, _ := naiveNegamax(board, core.Black, depth, true)
		assert.Equal(t, expected, pruned, "depth %d", depth)
	}
}

func TestChooseMove_CollectsStats(t *testing.T) {
	stats := &Stats{}
	s := New(WithDepth(3), WithLogger(testutil.NopLogger()), WithStats(stats))

	_, ok := s.ChooseMove(testutil.OpeningBoard(), core.Black)
	require.True(t, ok)

	assert.Positive(t, stats.Nodes)
	assert.Positive(t, stats.Leaves)

	// A second search starts from a clean slate.
	first := *stats
	_, _ = s.ChooseMove(testutil.OpeningBoard(), core.Black)
	assert.Equal(t, first, *stats)
}
