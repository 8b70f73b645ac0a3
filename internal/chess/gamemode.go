package chess

import (
	"fmt"

	chesserrors "github.com/lgbarn/chessnotation-go/internal/errors"
)

// GameMode selects the castling-rights alphabet used by FEN.
// The variant set is closed: RegularChess and *Chess960.
type GameMode interface {
	// Initialized reports whether the rook files are known.
	Initialized() bool
	// RookFiles returns the queenside and kingside rook files.
	RookFiles() (queenside, kingside Col)

	gameMode()
}

// RegularChess is the standard game with rooks on the a and h files.
type RegularChess struct{}

// Regular is the RegularChess descriptor.
var Regular GameMode = RegularChess{}

// Initialized always returns true.
func (RegularChess) Initialized() bool { return true }

// RookFiles returns 'a' and 'h'.
func (RegularChess) RookFiles() (Col, Col) { return 'a', 'h' }

func (RegularChess) gameMode() {}

// String returns "regular".
func (RegularChess) String() string { return "regular" }

// Chess960 is the Fischer random game mode. Its rook files are learned
// either at construction or from the first initial position decoded, and
// are fixed from then on.
type Chess960 struct {
	queenside   Col
	kingside    Col
	initialized bool
}

// NewChess960 creates an initialized descriptor with the given rook files.
func NewChess960(queenside, kingside Col) (*Chess960, error) {
	if err := validateRookFiles(queenside, kingside); err != nil {
		return nil, err
	}
	return &Chess960{queenside: queenside, kingside: kingside, initialized: true}, nil
}

// NewUninitializedChess960 creates a descriptor whose rook files will be
// discovered by decoding an initial position.
func NewUninitializedChess960() *Chess960 {
	return &Chess960{}
}

// Initialize sets the rook files. It fails when they are already set.
func (c *Chess960) Initialize(queenside, kingside Col) error {
	if c.initialized {
		return fmt.Errorf("%w: chess960 rook files are already set to %c/%c",
			chesserrors.ErrInvalidInput, c.queenside, c.kingside)
	}
	if err := validateRookFiles(queenside, kingside); err != nil {
		return err
	}
	c.queenside = queenside
	c.kingside = kingside
	c.initialized = true
	return nil
}

// Initialized reports whether the rook files are known.
func (c *Chess960) Initialized() bool { return c.initialized }

// RookFiles returns the queenside and kingside rook files.
// Both are NoCol before initialization.
func (c *Chess960) RookFiles() (Col, Col) { return c.queenside, c.kingside }

func (c *Chess960) gameMode() {}

// String returns "chess960" plus the rook files once they are known.
func (c *Chess960) String() string {
	if !c.initialized {
		return "chess960 (uninitialized)"
	}
	return fmt.Sprintf("chess960 (%c%c)", c.queenside, c.kingside)
}

func validateRookFiles(queenside, kingside Col) error {
	if !queenside.Valid() || !kingside.Valid() {
		return fmt.Errorf("%w: rook files must be a-h, got %q and %q",
			chesserrors.ErrInvalidInput, rune(queenside), rune(kingside))
	}
	if queenside >= kingside {
		return fmt.Errorf("%w: queenside rook file %c must be left of kingside rook file %c",
			chesserrors.ErrInvalidInput, queenside, kingside)
	}
	return nil
}

// CastlingLetters returns the castling-rights characters of mode in the
// order White king side, White queen side, Black king side, Black queen side.
func CastlingLetters(mode GameMode) (wK, wQ, bK, bQ byte, err error) {
	switch m := mode.(type) {
	case RegularChess:
		return 'K', 'Q', 'k', 'q', nil
	case *Chess960:
		if m == nil {
			return 0, 0, 0, 0, chesserrors.ErrUnsupportedGameMode
		}
		if !m.initialized {
			return 0, 0, 0, 0, chesserrors.ErrUninitializedGameMode
		}
		return m.kingside.Upper(), m.queenside.Upper(), byte(m.kingside), byte(m.queenside), nil
	default:
		return 0, 0, 0, 0, chesserrors.ErrUnsupportedGameMode
	}
}
