package searcher

import (
	"math"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Riroaki/Auto-Reversi/internal/game/core"
	"github.com/Riroaki/Auto-Reversi/internal/game/rules"
)

// DefaultDepth is the search depth used when none is configured.
const DefaultDepth = 5

// Searcher picks moves by depth-limited negamax with alpha-beta
// pruning. It only ever works on value copies of the board it is
// given, so the caller's board is never touched.
type Searcher struct {
	depth    int
	evaluate Evaluator
	logger   zerolog.Logger
	stats    *Stats
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithDepth sets the search depth in plies.
func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

// WithEvaluator replaces the static evaluation function.
func WithEvaluator(evaluate Evaluator) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

// WithLogger sets the searcher's logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Searcher) {
		s.logger = logger
	}
}

// WithStats attaches a stats collector; node and cutoff counts are
// accumulated there and summarized after every ChooseMove.
func WithStats(stats *Stats) Option {
	return func(s *Searcher) {
		s.stats = stats
	}
}

// New creates a searcher with the default positional evaluator.
func New(options ...Option) *Searcher {
	s := &Searcher{
		depth:    DefaultDepth,
		evaluate: EvaluatePosition,
		logger:   log.Logger,
	}
	for _, option := range options {
		option(s)
	}
	s.logger = s.logger.With().Str("component", "searcher").Logger()
	return s
}

// ChooseMove returns the best move for self on the given board
// snapshot, or false when self has no legal move at the root. The
// configured depth must be positive; a non-positive depth is a
// contract violation.
func (s *Searcher) ChooseMove(board core.Board, self core.Cell) (core.Coord, bool) {
	if s.depth <= 0 {
		panic("searcher: depth must be positive")
	}
	if self != core.Black && self != core.White {
		panic("searcher: self must be black or white")
	}

	if s.stats != nil {
		s.stats.Reset()
	}

	move, score, ok := s.negamax(board, self, s.depth, math.MinInt32, math.MaxInt32, true)

	logEvent := s.logger.Debug().
		Str("self", self.String()).
		Int("depth", s.depth).
		Bool("has_move", ok)
	if ok {
		logEvent = logEvent.Str("move", move.String()).Int("score", score)
	}
	if s.stats != nil {
		logEvent = s.stats.withFields(logEvent)
	}
	logEvent.Msg("Search complete")

	return move, ok
}

// negamax evaluates the board from the perspective of whoever is to
// act at this ply. isMax is true when that is self; the mover and the
// sign of leaf evaluations swap with it each ply. Scores reported to
// the parent are always from the current mover's perspective, so the
// parent negates them.
func (s *Searcher) negamax(board core.Board, self core.Cell, depth, alpha, beta int, isMax bool) (core.Coord, int, bool) {
	sign := 1
	if !isMax {
		sign = -1
	}

	if depth <= 0 {
		if s.stats != nil {
			s.stats.Leaves++
		}
		return core.Coord{}, sign * s.evaluate(&board, self), false
	}
	if s.stats != nil {
		s.stats.Nodes++
	}

	mover := self
	if !isMax {
		mover = self.Opponent()
	}

	moves := rules.LegalMoves(&board, mover)
	if len(moves) == 0 {
		if !rules.HasAnyMove(&board, mover.Opponent()) {
			// Neither side can move: the position is effectively final.
			if s.stats != nil {
				s.stats.Leaves++
			}
			return core.Coord{}, sign * s.evaluate(&board, self), false
		}
		// Pass: the other side plays on with the window swapped. The
		// pass spends one depth unit, the same trade-off a real move
		// makes; there is no move to report at this node.
		if s.stats != nil {
			s.stats.Passes++
		}
		_, score, _ := s.negamax(board, self, depth-1, -beta, -alpha, !isMax)
		return core.Coord{}, -score, false
	}

	bestMove := core.Coord{}
	bestScore := math.MinInt32
	for _, move := range moves.Ordered() {
		child := board // value copy owned by this candidate
		rules.ApplyFlips(&child, move, moves[move], mover)

		_, score, _ := s.negamax(child, self, depth-1, -beta, -alpha, !isMax)
		score = -score

		if score > alpha {
			if score >= beta {
				if s.stats != nil {
					s.stats.BetaCuts++
				}
				return move, score, true
			}
			alpha = score
		}
		// Strictly greater: the first move reaching a score keeps
		// priority, which pins down tie-breaking to board scan order.
		if score > bestScore {
			bestMove, bestScore = move, score
		}
	}
	return bestMove, bestScore, true
}
