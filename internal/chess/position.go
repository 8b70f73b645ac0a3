package chess

// Position is a full board snapshot: the piece grid plus the game state carried by FEN.
type Position struct {
	Board Board

	// Who has the next move.
	ToMove Colour

	// Castling rights still held by each side.
	WhiteCastling CastlingAbility
	BlackCastling CastlingAbility

	// En passant target square, NoSquare when there is none.
	EnPassant Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The full-move counter, starting at 1.
	MoveNumber uint
}

// NewPosition creates an empty position with White to move on move 1.
func NewPosition() *Position {
	return &Position{
		ToMove:     White,
		EnPassant:  NoSquare,
		MoveNumber: 1,
	}
}

// NewInitialPosition creates the standard starting position.
func NewInitialPosition() *Position {
	p := NewPosition()
	p.Board.SetupInitialPosition()
	p.WhiteCastling = BothCastling
	p.BlackCastling = BothCastling
	return p
}

// Castling returns the castling rights of colour.
func (p *Position) Castling(colour Colour) CastlingAbility {
	if colour == White {
		return p.WhiteCastling
	}
	return p.BlackCastling
}

// SetCastling replaces the castling rights of colour.
func (p *Position) SetCastling(colour Colour, ability CastlingAbility) {
	if colour == White {
		p.WhiteCastling = ability
	} else {
		p.BlackCastling = ability
	}
}

// HasEnPassant reports whether an en passant target is set.
func (p *Position) HasEnPassant() bool {
	return p.EnPassant.Valid()
}

// Copy creates a deep copy of the position.
func (p *Position) Copy() *Position {
	c := *p
	return &c
}

// Equal reports whether two positions hold the same board and game state.
func (p *Position) Equal(other *Position) bool {
	return *p == *other
}
