package chess

// Comment represents a PGN brace comment.
type Comment struct {
	Text string
}

// Move is a decoded SAN token. It records only what the text says: nothing
// here asserts that the move is legal on any board.
type Move struct {
	// The piece being moved, Pawn when the token has no piece letter.
	Piece Piece

	// Source hints, NoCol/NoRank when absent.
	FromCol  Col
	FromRank Rank

	// Destination square, NoSquare for castling.
	To Square

	// The piece promoted to, NoPiece if not a promotion.
	Promotion Piece

	Capture         bool
	QueensideCastle bool
	KingsideCastle  bool

	// Check and checkmate hints taken from a trailing '+' or '#'.
	Check     bool
	Checkmate bool
}

// NewCastle creates a castling move. Checkmate implies check.
func NewCastle(queenside, check, checkmate bool) Move {
	return Move{
		Piece:           King,
		To:              NoSquare,
		QueensideCastle: queenside,
		KingsideCastle:  !queenside,
		Check:           check || checkmate,
		Checkmate:       checkmate,
	}
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.QueensideCastle || m.KingsideCastle
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoPiece
}

// HasDestination reports whether the move names a destination square.
func (m Move) HasDestination() bool {
	return m.To.Valid()
}

// Valid reports whether the move satisfies the structural invariants:
// exactly one of destination or castle, and checkmate implies check.
func (m Move) Valid() bool {
	if m.QueensideCastle && m.KingsideCastle {
		return false
	}
	if m.HasDestination() == m.IsCastle() {
		return false
	}
	if m.Checkmate && !m.Check {
		return false
	}
	switch m.Promotion {
	case NoPiece, Knight, Bishop, Rook, Queen:
	default:
		return false
	}
	return m.Piece >= Pawn && m.Piece <= King
}
