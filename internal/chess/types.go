// Package chess provides the position model shared by the notation codecs.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a chess piece kind without colour.
type Piece int

const (
	NoPiece Piece = iota // Sentinel, never a real piece
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single uppercase letter of a piece, or '?' for NoPiece.
func (p Piece) Letter() byte {
	letters := []byte{'?', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceFromLetter converts an uppercase piece letter to a piece.
func PieceFromLetter(c byte) (Piece, bool) {
	switch c {
	case 'P':
		return Pawn, true
	case 'N':
		return Knight, true
	case 'B':
		return Bishop, true
	case 'R':
		return Rook, true
	case 'Q':
		return Queen, true
	case 'K':
		return King, true
	}
	return NoPiece, false
}

// ColouredPiece is a piece kind combined with a colour, or Empty.
// All White values precede all Black values.
type ColouredPiece uint8

const (
	Empty ColouredPiece = iota
	WhitePawn
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	numColouredPieces
)

// MakeColouredPiece creates a coloured piece value.
// It panics when piece is NoPiece or out of range.
func MakeColouredPiece(colour Colour, piece Piece) ColouredPiece {
	if piece < Pawn || piece > King {
		panic(fmt.Sprintf("chess: cannot colour piece %d", piece))
	}
	if colour == White {
		return ColouredPiece(piece)
	}
	return ColouredPiece(piece) + WhiteKing
}

// W creates a white piece.
func W(piece Piece) ColouredPiece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) ColouredPiece {
	return MakeColouredPiece(Black, piece)
}

// Split returns the piece kind and colour of cp.
// Calling it on Empty is a programming error and panics.
func (cp ColouredPiece) Split() (Piece, Colour) {
	switch {
	case cp == Empty || cp >= numColouredPieces:
		panic(fmt.Sprintf("chess: Split called on non-piece value %d", cp))
	case cp >= BlackPawn:
		return Piece(cp - WhiteKing), Black
	default:
		return Piece(cp), White
	}
}

// Piece returns the piece kind of cp. It panics on Empty.
func (cp ColouredPiece) Piece() Piece {
	p, _ := cp.Split()
	return p
}

// Colour returns the colour of cp. It panics on Empty.
func (cp ColouredPiece) Colour() Colour {
	_, c := cp.Split()
	return c
}

// Letter returns the FEN letter of cp: uppercase for White, lowercase for Black.
// It panics on Empty.
func (cp ColouredPiece) Letter() byte {
	p, c := cp.Split()
	letter := p.Letter()
	if c == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns the FEN letter of cp, or "." for Empty.
func (cp ColouredPiece) String() string {
	if cp == Empty || cp >= numColouredPieces {
		return "."
	}
	return string(cp.Letter())
}

// ColouredPieceFromLetter converts a FEN piece letter to a coloured piece.
func ColouredPieceFromLetter(c byte) (ColouredPiece, bool) {
	if c >= 'a' && c <= 'z' {
		if p, ok := PieceFromLetter(c - ('a' - 'A')); ok {
			return B(p), true
		}
		return Empty, false
	}
	if p, ok := PieceFromLetter(c); ok {
		return W(p), true
	}
	return Empty, false
}

// CastlingAbility is the set of castling rights held by one colour.
type CastlingAbility uint8

const (
	QueenSide CastlingAbility = 1 << iota
	KingSide

	NoCastling   CastlingAbility = 0
	BothCastling                 = QueenSide | KingSide
)

// Has reports whether all flags in flag are set.
func (a CastlingAbility) Has(flag CastlingAbility) bool {
	return a&flag == flag
}

// Rank represents a chess rank (row) - '1' to '8'. Zero means no rank.
type Rank byte

// Col represents a chess file (column) - 'a' to 'h'. Zero means no file.
type Col byte

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	RankBase  = '1'
	ColBase   = 'a'
	FirstRank = Rank(RankBase)
	LastRank  = Rank(RankBase + BoardSize - 1)
	FirstCol  = Col(ColBase)
	LastCol   = Col(ColBase + BoardSize - 1)

	NoRank Rank = 0
	NoCol  Col  = 0
)

// Valid reports whether r is one of '1'..'8'.
func (r Rank) Valid() bool {
	return r >= FirstRank && r <= LastRank
}

// Valid reports whether c is one of 'a'..'h'.
func (c Col) Valid() bool {
	return c >= FirstCol && c <= LastCol
}

// Upper returns the uppercase file letter.
func (c Col) Upper() byte {
	return byte(c) - ('a' - 'A')
}

// Square is a (file, rank) pair. NoSquare is the invalid sentinel.
type Square struct {
	Col  Col
	Rank Rank
}

// NoSquare is the "no square" sentinel; both components are out of range.
var NoSquare = Square{}

// NewSquare creates a square from file and rank characters.
func NewSquare(col Col, rank Rank) Square {
	return Square{Col: col, Rank: rank}
}

// ParseSquare decodes a two-character square such as "e3".
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return NoSquare, false
	}
	sq := Square{Col: Col(s[0]), Rank: Rank(s[1])}
	if !sq.Valid() {
		return NoSquare, false
	}
	return sq, true
}

// Valid reports whether both components are in range.
func (s Square) Valid() bool {
	return s.Col.Valid() && s.Rank.Valid()
}

// Index returns the linear index rank*8+file used for board storage.
// It panics on an invalid square.
func (s Square) Index() int {
	if !s.Valid() {
		panic(fmt.Sprintf("chess: index of invalid square %q", s.String()))
	}
	return int(s.Rank-FirstRank)*BoardSize + int(s.Col-FirstCol)
}

// SquareFromIndex is the inverse of Square.Index.
func SquareFromIndex(i int) Square {
	return Square{
		Col:  FirstCol + Col(i%BoardSize),
		Rank: FirstRank + Rank(i/BoardSize),
	}
}

// String returns the algebraic name of the square, or "-" for an invalid one.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(s.Col), byte(s.Rank)})
}
