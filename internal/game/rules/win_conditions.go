package rules

import (
	"github.com/rs/zerolog"

	"github.com/Riroaki/Auto-Reversi/internal/game/core"
)

// WinConditionChecker decides the outcome of a finished game.
type WinConditionChecker struct {
	logger zerolog.Logger
}

// NewWinConditionChecker creates a new win condition checker.
func NewWinConditionChecker(logger zerolog.Logger) *WinConditionChecker {
	return &WinConditionChecker{
		logger: logger.With().Str("component", "WinConditionChecker").Logger(),
	}
}

// Decide compares piece counts and returns the winning color, or
// core.Empty for a draw. It is only meaningful once neither side can
// move or the board is full.
func (wc *WinConditionChecker) Decide(counts core.Counts) core.Cell {
	var winner core.Cell
	switch {
	case counts.Black > counts.White:
		winner = core.Black
	case counts.White > counts.Black:
		winner = core.White
	default:
		winner = core.Empty
	}

	wc.logger.Info().
		Int("black", counts.Black).
		Int("white", counts.White).
		Str("winner", winner.String()).
		Msg("Game outcome decided")

	return winner
}
