package events

import (
	"time"

	"github.com/Riroaki/Auto-Reversi/internal/game/core"
)

// Event type constants
const (
	TypeGameStarted   = "game.started"
	TypeGameEnded     = "game.ended"
	TypeMoveApplied   = "move.applied"
	TypeMoveRejected  = "move.rejected"
	TypeTurnForfeited = "turn.forfeited"
)

// GameStartedEvent is published when a new game begins
type GameStartedEvent struct {
	BaseEvent
	FirstMover core.Cell
	Counts     core.Counts
}

// NewGameStartedEvent creates a new GameStartedEvent
func NewGameStartedEvent(gameID string, firstMover core.Cell, counts core.Counts) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeGameStarted,
			Time:      time.Now(),
			Game:      gameID,
		},
		FirstMover: firstMover,
		Counts:     counts,
	}
}

// GameEndedEvent is published when a game ends
type GameEndedEvent struct {
	BaseEvent
	Winner    core.Cell // core.Empty for a draw
	Counts    core.Counts
	FinalTurn int
	Duration  time.Duration
}

// NewGameEndedEvent creates a new GameEndedEvent
func NewGameEndedEvent(gameID string, winner core.Cell, counts core.Counts, finalTurn int, duration time.Duration) *GameEndedEvent {
	return &GameEndedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeGameEnded,
			Time:      time.Now(),
			Game:      gameID,
		},
		Winner:    winner,
		Counts:    counts,
		FinalTurn: finalTurn,
		Duration:  duration,
	}
}

// MoveAppliedEvent is published after a legal move has been applied
type MoveAppliedEvent struct {
	BaseEvent
	Player core.Cell
	Move   core.Coord
	Turn   int
	Counts core.Counts
}

// NewMoveAppliedEvent creates a new MoveAppliedEvent
func NewMoveAppliedEvent(gameID string, player core.Cell, move core.Coord, turn int, counts core.Counts) *MoveAppliedEvent {
	return &MoveAppliedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeMoveApplied,
			Time:      time.Now(),
			Game:      gameID,
		},
		Player: player,
		Move:   move,
		Turn:   turn,
		Counts: counts,
	}
}

// MoveRejectedEvent is published when a requested cell is not a legal move
type MoveRejectedEvent struct {
	BaseEvent
	Player core.Cell
	Move   core.Coord
}

// NewMoveRejectedEvent creates a new MoveRejectedEvent
func NewMoveRejectedEvent(gameID string, player core.Cell, move core.Coord) *MoveRejectedEvent {
	return &MoveRejectedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeMoveRejected,
			Time:      time.Now(),
			Game:      gameID,
		},
		Player: player,
		Move:   move,
	}
}

// TurnForfeitedEvent is published when a side has no legal move and
// its turn is skipped
type TurnForfeitedEvent struct {
	BaseEvent
	Player core.Cell
}

// NewTurnForfeitedEvent creates a new TurnForfeitedEvent
func NewTurnForfeitedEvent(gameID string, player core.Cell) *TurnForfeitedEvent {
	return &TurnForfeitedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeTurnForfeited,
			Time:      time.Now(),
			Game:      gameID,
		},
		Player: player,
	}
}
