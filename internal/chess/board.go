package chess

import (
	"fmt"

	chesserrors "github.com/lgbarn/chessnotation-go/internal/errors"
)

// Board is the 8x8 piece grid stored as a flat arena indexed by Square.Index.
type Board struct {
	squares [NumSquares]ColouredPiece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// standardBackRank is the rank 1 layout of the regular starting position.
var standardBackRank = [BoardSize]Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// SetupInitialPosition places the pieces of the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()
	for i, piece := range standardBackRank {
		col := FirstCol + Col(i)
		b.Set(NewSquare(col, '1'), W(piece))
		b.Set(NewSquare(col, '2'), W(Pawn))
		b.Set(NewSquare(col, '7'), B(Pawn))
		b.Set(NewSquare(col, '8'), B(piece))
	}
}

// Clear empties every square.
func (b *Board) Clear() {
	b.squares = [NumSquares]ColouredPiece{}
}

// Get returns the piece on sq.
func (b *Board) Get(sq Square) ColouredPiece {
	return b.squares[sq.Index()]
}

// Set places cp on sq. Use Empty to clear a square.
func (b *Board) Set(sq Square, cp ColouredPiece) {
	b.squares[sq.Index()] = cp
}

// At is Get with file and rank characters.
func (b *Board) At(col Col, rank Rank) ColouredPiece {
	return b.Get(NewSquare(col, rank))
}

// SetPieces replaces all 64 squares at once. Entries are in Square.Index order.
// The board is left untouched when len(pieces) is not 64.
func (b *Board) SetPieces(pieces []ColouredPiece) error {
	if len(pieces) != NumSquares {
		return fmt.Errorf("%w: board needs %d squares, got %d", chesserrors.ErrInvalidInput, NumSquares, len(pieces))
	}
	for i, cp := range pieces {
		if cp >= numColouredPieces {
			return fmt.Errorf("%w: square %s holds unknown piece value %d",
				chesserrors.ErrInvalidInput, SquareFromIndex(i), cp)
		}
	}
	copy(b.squares[:], pieces)
	return nil
}

// Pieces returns a copy of all 64 squares in Square.Index order.
func (b *Board) Pieces() []ColouredPiece {
	pieces := make([]ColouredPiece, NumSquares)
	copy(pieces, b.squares[:])
	return pieces
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Equal reports whether both boards hold the same pieces.
func (b *Board) Equal(other *Board) bool {
	return b.squares == other.squares
}

// Count returns how many squares hold cp.
func (b *Board) Count(cp ColouredPiece) int {
	n := 0
	for _, sq := range b.squares {
		if sq == cp {
			n++
		}
	}
	return n
}

// String renders the board as eight lines, rank 8 first, using "." for empty squares.
func (b *Board) String() string {
	buf := make([]byte, 0, NumSquares+BoardSize)
	for rank := LastRank; rank >= FirstRank; rank-- {
		for col := FirstCol; col <= LastCol; col++ {
			buf = append(buf, b.At(col, rank).String()...)
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
