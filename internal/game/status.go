package game

import "github.com/Riroaki/Auto-Reversi/internal/game/core"

// Status is the lifecycle state of a game. Exactly one of the two
// running values holds while either side still has moves to make; the
// win/draw values are terminal.
type Status int

const (
	StatusInitializing Status = iota
	StatusRunningBlack
	StatusRunningWhite
	StatusWinBlack
	StatusWinWhite
	StatusDraw
)

// IsRunning reports whether a side is currently to move.
func (s Status) IsRunning() bool {
	return s == StatusRunningBlack || s == StatusRunningWhite
}

// IsFinished reports whether the game reached a terminal state.
func (s Status) IsFinished() bool {
	return s == StatusWinBlack || s == StatusWinWhite || s == StatusDraw
}

// Player returns the color to move. It is derived from the status on
// every call rather than cached, so the two can never drift apart.
// Non-running statuses have no mover and yield core.Empty.
func (s Status) Player() core.Cell {
	switch s {
	case StatusRunningBlack:
		return core.Black
	case StatusRunningWhite:
		return core.White
	default:
		return core.Empty
	}
}

// Opponent returns the color waiting for its turn.
func (s Status) Opponent() core.Cell {
	return s.Player().Opponent()
}

// Toggled returns the running status with the side to move swapped.
// It must only be called on a running status.
func (s Status) Toggled() Status {
	switch s {
	case StatusRunningBlack:
		return StatusRunningWhite
	case StatusRunningWhite:
		return StatusRunningBlack
	default:
		panic("game: Toggled called on non-running status " + s.String())
	}
}

// statusForWinner maps a winning color (core.Empty for a draw) to the
// terminal status.
func statusForWinner(winner core.Cell) Status {
	switch winner {
	case core.Black:
		return StatusWinBlack
	case core.White:
		return StatusWinWhite
	default:
		return StatusDraw
	}
}

func (s Status) String() string {
	switch s {
	case StatusInitializing:
		return "initializing"
	case StatusRunningBlack:
		return "running-black"
	case StatusRunningWhite:
		return "running-white"
	case StatusWinBlack:
		return "win-black"
	case StatusWinWhite:
		return "win-white"
	case StatusDraw:
		return "draw"
	default:
		return "unknown"
	}
}
