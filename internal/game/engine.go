package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Riroaki/Auto-Reversi/internal/game/core"
	"github.com/Riroaki/Auto-Reversi/internal/game/events"
	"github.com/Riroaki/Auto-Reversi/internal/game/rules"
)

// Engine owns the canonical board and game state. All mutation goes
// through Start and ApplyMove; everything handed out to callers is a
// value snapshot, so the searcher can never alias the live board.
type Engine struct {
	id     uuid.UUID
	board  core.Board
	status Status
	legal  rules.MoveSet
	counts core.Counts

	// noMoveRounds counts consecutive side switches where the side to
	// move had no legal move. Two in a row ends the game.
	noMoveRounds int
	turn         int
	startedAt    time.Time

	rng      *rand.Rand
	logger   zerolog.Logger
	bus      events.Publisher
	winCheck *rules.WinConditionChecker
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine's logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithEventBus attaches an event publisher; the engine publishes
// lifecycle and move events to it.
func WithEventBus(bus events.Publisher) Option {
	return func(e *Engine) {
		e.bus = bus
	}
}

// NewEngine creates an engine in the initializing state. rng drives
// the center-piece coin flip; nil falls back to a time-based seed.
func NewEngine(rng *rand.Rand, opts ...Option) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	e := &Engine{
		id:     uuid.New(),
		status: StatusInitializing,
		rng:    rng,
		logger: log.Logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With().Str("component", "engine").Str("game_id", e.id.String()).Logger()
	e.winCheck = rules.NewWinConditionChecker(e.logger)
	return e
}

// Start places the four center pieces and opens play. Which color sits
// on which center diagonal is decided by a fair coin flip; who moves
// first is decided by blackFirst. Calling Start twice, or on a running
// game, is a contract violation.
func (e *Engine) Start(blackFirst bool) {
	if e.status != StatusInitializing {
		panic("game: Start called in status " + e.status.String())
	}

	first, second := core.Black, core.White
	if e.rng.Intn(2) == 0 {
		first, second = second, first
	}
	e.board.SetOpening(first, second)
	e.counts = e.board.Count()

	if blackFirst {
		e.status = StatusRunningBlack
	} else {
		e.status = StatusRunningWhite
	}
	e.legal = rules.LegalMoves(&e.board, e.status.Player())
	e.startedAt = time.Now()

	e.logger.Info().
		Bool("black_first", blackFirst).
		Str("main_diagonal", first.String()).
		Msg("Game started")
	if e.bus != nil {
		e.bus.Publish(events.NewGameStartedEvent(e.id.String(), e.status.Player(), e.counts))
	}
}

// ApplyMove plays the current side's piece at (row,col). A cell
// outside the legal-move map yields core.ErrIllegalMove and leaves
// every piece of state untouched. Calling it when no game is running
// is a contract violation.
func (e *Engine) ApplyMove(row, col int) error {
	if !e.status.IsRunning() {
		panic("game: ApplyMove called in status " + e.status.String())
	}

	move := core.Coord{Row: row, Col: col}
	dirs, ok := e.legal[move]
	if !ok {
		e.logger.Warn().
			Str("player", e.status.Player().String()).
			Str("move", move.String()).
			Msg("Illegal move rejected")
		if e.bus != nil {
			e.bus.Publish(events.NewMoveRejectedEvent(e.id.String(), e.status.Player(), move))
		}
		return fmt.Errorf("%w: %s", core.ErrIllegalMove, move)
	}

	mover := e.status.Player()
	rules.ApplyFlips(&e.board, move, dirs, mover)
	e.counts = e.board.Count()
	e.turn++

	e.logger.Debug().
		Str("player", mover.String()).
		Str("move", move.String()).
		Int("turn", e.turn).
		Int("black", e.counts.Black).
		Int("white", e.counts.White).
		Msg("Move applied")
	if e.bus != nil {
		e.bus.Publish(events.NewMoveAppliedEvent(e.id.String(), mover, move, e.turn, e.counts))
	}

	if e.counts.Empty == 0 {
		e.end()
		return nil
	}
	e.switchSide()
	return nil
}

// switchSide hands the turn to the other color. A side with no legal
// move forfeits its turn without ever being exposed as the side to
// move; if both sides are stuck in succession the game ends.
func (e *Engine) switchSide() {
	for i := 0; i < 2; i++ {
		e.status = e.status.Toggled()
		mover := e.status.Player()

		moves := rules.LegalMoves(&e.board, mover)
		if len(moves) > 0 {
			e.noMoveRounds = 0
			e.legal = moves
			return
		}

		e.noMoveRounds++
		e.logger.Info().
			Str("player", mover.String()).
			Int("no_move_rounds", e.noMoveRounds).
			Msg("No legal moves, turn forfeited")
		if e.bus != nil {
			e.bus.Publish(events.NewTurnForfeitedEvent(e.id.String(), mover))
		}

		if e.noMoveRounds >= 2 {
			e.end()
			return
		}
	}
}

// end moves the game to its terminal status based on piece counts.
func (e *Engine) end() {
	winner := e.winCheck.Decide(e.counts)
	e.status = statusForWinner(winner)
	e.legal = nil

	if e.bus != nil {
		e.bus.Publish(events.NewGameEndedEvent(
			e.id.String(), winner, e.counts, e.turn, time.Since(e.startedAt)))
	}
}

// LegalMoves returns the legal-move map for the side currently to
// move. Callers must treat it as read-only. Calling it when no game is
// running is a contract violation.
func (e *Engine) LegalMoves() rules.MoveSet {
	if !e.status.IsRunning() {
		panic("game: LegalMoves called in status " + e.status.String())
	}
	return e.legal
}

// Board returns a value snapshot of the current board.
func (e *Engine) Board() core.Board { return e.board }

// Status returns the current game status.
func (e *Engine) Status() Status { return e.status }

// Counts returns the piece counts as of the last applied move.
func (e *Engine) Counts() core.Counts { return e.counts }

// Turn returns the number of moves applied so far.
func (e *Engine) Turn() int { return e.turn }

// GameID returns the unique identifier of this game.
func (e *Engine) GameID() string { return e.id.String() }
