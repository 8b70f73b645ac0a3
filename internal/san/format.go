package san

import (
	"strings"

	"github.com/lgbarn/chessnotation-go/internal/chess"
)

// Format returns the SAN text of m. For any move produced by Decode,
// Decode(Format(m)) yields m again.
func Format(m chess.Move) string {
	var sb strings.Builder
	sb.Grow(8)

	switch {
	case m.QueensideCastle:
		sb.WriteString("O-O-O")
	case m.KingsideCastle:
		sb.WriteString("O-O")
	default:
		if m.Piece != chess.Pawn && m.Piece != chess.NoPiece {
			sb.WriteByte(m.Piece.Letter())
		}
		if m.FromCol != chess.NoCol {
			sb.WriteByte(byte(m.FromCol))
		}
		if m.FromRank != chess.NoRank {
			sb.WriteByte(byte(m.FromRank))
		}
		if m.Capture {
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if m.Promotion != chess.NoPiece {
			sb.WriteByte('=')
			sb.WriteByte(m.Promotion.Letter())
		}
	}

	switch {
	case m.Checkmate:
		sb.WriteByte('#')
	case m.Check:
		sb.WriteByte('+')
	}
	return sb.String()
}
