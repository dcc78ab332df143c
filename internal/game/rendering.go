package game

import (
	"strings"

	"github.com/Riroaki/Auto-Reversi/internal/game/core"
)

// This file contains all board rendering functionality for the game engine.

// ANSI color codes for board rendering
const (
	ColorReset  = "\033[0m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
	ColorGray   = "\033[90m"
)

const (
	emptySymbol = "_"
	blackSymbol = "*"
	whiteSymbol = "O"
	hintSymbol  = "."
)

// Render returns a string representation of the board with row/column
// headers. When hints is true, empty cells that are legal moves for
// the side to move are marked. When colored is true the output uses
// ANSI colors.
func (e *Engine) Render(hints, colored bool) string {
	var sb strings.Builder
	// 2 chars per cell plus headers; ANSI codes roughly triple a row.
	sb.Grow((core.Size*2 + 4) * (core.Size + 2) * 3)

	sb.WriteString("   ")
	for col := 0; col < core.Size; col++ {
		sb.WriteString(core.IntToStringFixedWidth(col, 2))
	}
	sb.WriteString("\n")

	for row := 0; row < core.Size; row++ {
		sb.WriteString(core.IntToStringFixedWidth(row, 2))
		sb.WriteString(" ")
		for col := 0; col < core.Size; col++ {
			sb.WriteString(" ")
			c := core.Coord{Row: row, Col: col}
			if hints && e.status.IsRunning() && e.legal.Contains(c) {
				writeColored(&sb, hintSymbol, ColorYellow, colored)
				continue
			}
			switch e.board.At(c) {
			case core.Black:
				writeColored(&sb, blackSymbol, ColorCyan, colored)
			case core.White:
				sb.WriteString(whiteSymbol)
			default:
				writeColored(&sb, emptySymbol, ColorGray, colored)
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func writeColored(sb *strings.Builder, symbol, color string, colored bool) {
	if !colored {
		sb.WriteString(symbol)
		return
	}
	sb.WriteString(color)
	sb.WriteString(symbol)
	sb.WriteString(ColorReset)
}
