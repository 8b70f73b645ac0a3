// Package san decodes single Standard Algebraic Notation move tokens.
//
// Decoding is purely syntactic. A token such as "Kd1#" or "a3=Q" is accepted
// even though no position could produce it.
package san

import (
	"github.com/lgbarn/chessnotation-go/internal/chess"
	chesserrors "github.com/lgbarn/chessnotation-go/internal/errors"
)

// production is one SAN token shape. Pattern characters:
//
//	P  piece letter N B R Q K        c  source file
//	n  source rank                   h  source file or rank
//	f  destination file              r  destination rank
//	Q  promotion piece N B R Q       x  capture
//
// Any other character must appear literally.
type production struct {
	name    string
	pattern string
	castle  chess.CastlingAbility
}

// productions in the order they are tried. Longer shapes come first where a
// shorter shape would match a prefix, e.g. "O-O" inside "O-O-O".
var productions = []production{
	{name: "queenside castle", pattern: "O-O-O", castle: chess.QueenSide},
	{name: "kingside castle", pattern: "O-O", castle: chess.KingSide},
	{name: "pawn capture with promotion", pattern: "cxfr=Q"},
	{name: "pawn promotion", pattern: "fr=Q"},
	{name: "pawn capture", pattern: "cxfr"},
	{name: "pawn move", pattern: "fr"},
	{name: "piece capture from square", pattern: "Pcnxfr"},
	{name: "piece move from square", pattern: "Pcnfr"},
	{name: "piece capture with hint", pattern: "Phxfr"},
	{name: "piece move with hint", pattern: "Phfr"},
	{name: "piece capture", pattern: "Pxfr"},
	{name: "piece move", pattern: "Pfr"},
}

// match applies p to the front of text. It does not look at the check suffix.
func (p *production) match(text string) (chess.Move, bool) {
	if len(text) < len(p.pattern) {
		return chess.Move{}, false
	}

	m := chess.Move{Piece: chess.Pawn}
	var to chess.Square

	for i := 0; i < len(p.pattern); i++ {
		c := text[i]
		switch p.pattern[i] {
		case 'P':
			piece, ok := pieceFromLetter(c)
			if !ok {
				return chess.Move{}, false
			}
			m.Piece = piece
		case 'c':
			if !chess.Col(c).Valid() {
				return chess.Move{}, false
			}
			m.FromCol = chess.Col(c)
		case 'n':
			if !chess.Rank(c).Valid() {
				return chess.Move{}, false
			}
			m.FromRank = chess.Rank(c)
		case 'h':
			switch {
			case chess.Col(c).Valid():
				m.FromCol = chess.Col(c)
			case chess.Rank(c).Valid():
				m.FromRank = chess.Rank(c)
			default:
				return chess.Move{}, false
			}
		case 'f':
			if !chess.Col(c).Valid() {
				return chess.Move{}, false
			}
			to.Col = chess.Col(c)
		case 'r':
			if !chess.Rank(c).Valid() {
				return chess.Move{}, false
			}
			to.Rank = chess.Rank(c)
		case 'Q':
			promotion, ok := promotionFromLetter(c)
			if !ok {
				return chess.Move{}, false
			}
			m.Promotion = promotion
		case 'x':
			if c != 'x' {
				return chess.Move{}, false
			}
			m.Capture = true
		default:
			if c != p.pattern[i] {
				return chess.Move{}, false
			}
		}
	}

	switch p.castle {
	case chess.QueenSide:
		m.Piece = chess.King
		m.QueensideCastle = true
	case chess.KingSide:
		m.Piece = chess.King
		m.KingsideCastle = true
	default:
		m.To = to
	}
	return m, true
}

// Decode reads one move token from the front of text and returns the move
// and the number of characters it consumed, including a trailing '+' or '#'.
// Characters after the token are left for the caller.
func Decode(text string) (chess.Move, int, error) {
	m, n, _, err := decode(text)
	return m, n, err
}

// Production returns the name of the token shape that text decodes as.
func Production(text string) (string, error) {
	_, _, p, err := decode(text)
	if err != nil {
		return "", err
	}
	return p.name, nil
}

func decode(text string) (chess.Move, int, *production, error) {
	for i := range productions {
		p := &productions[i]
		m, ok := p.match(text)
		if !ok {
			continue
		}
		n := len(p.pattern)
		if n < len(text) {
			switch text[n] {
			case '+':
				m.Check = true
				n++
			case '#':
				m.Check = true
				m.Checkmate = true
				n++
			}
		}
		return m, n, p, nil
	}

	if text == "" {
		return chess.Move{}, 0, nil, chesserrors.NewParseError(chesserrors.ErrInvalidMove, chesserrors.KindTooFew, "",
			"empty move token").At(0)
	}
	return chess.Move{}, 0, nil, chesserrors.NewParseError(chesserrors.ErrInvalidMove, chesserrors.KindStructure, "",
		"no move matches %q", token(text)).At(0)
}

// token returns the leading run of text up to whitespace, for error messages.
func token(text string) string {
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case ' ', '\t', '\r', '\n':
			return text[:i]
		}
	}
	return text
}

func pieceFromLetter(c byte) (chess.Piece, bool) {
	if c == 'P' {
		return chess.NoPiece, false
	}
	return chess.PieceFromLetter(c)
}

func promotionFromLetter(c byte) (chess.Piece, bool) {
	switch c {
	case 'N':
		return chess.Knight, true
	case 'B':
		return chess.Bishop, true
	case 'R':
		return chess.Rook, true
	case 'Q':
		return chess.Queen, true
	}
	return chess.NoPiece, false
}
