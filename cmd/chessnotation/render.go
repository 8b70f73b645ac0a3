package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lgbarn/chessnotation-go/internal/chess"
)

var (
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	whitePieceStyle = lipgloss.NewStyle().Bold(true)
	emptyStyle      = lipgloss.NewStyle().Faint(true)
	captionStyle    = lipgloss.NewStyle().Italic(true)
)

// renderBoard draws board rank 8 first, with file letters underneath and
// an optional caption below the frame.
func renderBoard(board *chess.Board, caption string) string {
	var sb strings.Builder
	for rank := chess.LastRank; rank >= chess.FirstRank; rank-- {
		sb.WriteByte(byte(rank))
		for col := chess.FirstCol; col <= chess.LastCol; col++ {
			sb.WriteByte(' ')
			sb.WriteString(renderSquare(board.At(col, rank)))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(" ")
	for col := chess.FirstCol; col <= chess.LastCol; col++ {
		sb.WriteByte(' ')
		sb.WriteByte(byte(col))
	}

	out := boardStyle.Render(sb.String())
	if caption != "" {
		out += "\n" + captionStyle.Render(caption)
	}
	return out
}

func renderSquare(cp chess.ColouredPiece) string {
	switch {
	case cp == chess.Empty:
		return emptyStyle.Render(cp.String())
	case cp.Colour() == chess.White:
		return whitePieceStyle.Render(cp.String())
	default:
		return cp.String()
	}
}

// positionCaption summarises the game state FEN carries beyond the board.
func positionCaption(pos *chess.Position) string {
	caption := fmt.Sprintf("%s to move, move %d, half-move clock %d", pos.ToMove, pos.MoveNumber, pos.HalfmoveClock)
	if pos.HasEnPassant() {
		caption += ", en passant " + pos.EnPassant.String()
	}
	return caption
}
