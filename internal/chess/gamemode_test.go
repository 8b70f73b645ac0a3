package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chessnotation-go/internal/errors"
)

func TestCastlingLetters(t *testing.T) {
	c960, err := NewChess960('b', 'g')
	if err != nil {
		t.Fatalf("NewChess960() error = %v", err)
	}

	tests := []struct {
		name    string
		mode    GameMode
		want    string
		wantErr error
	}{
		{"regular", Regular, "KQkq", nil},
		{"chess960", c960, "GBgb", nil},
		{"uninitialized chess960", NewUninitializedChess960(), "", chesserrors.ErrUninitializedGameMode},
		{"nil", nil, "", chesserrors.ErrUnsupportedGameMode},
		{"nil chess960", (*Chess960)(nil), "", chesserrors.ErrUnsupportedGameMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wK, wQ, bK, bQ, err := CastlingLetters(tt.mode)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("CastlingLetters() error = %v; want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got := string([]byte{wK, wQ, bK, bQ}); got != tt.want {
				t.Errorf("CastlingLetters() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestChess960Initialize(t *testing.T) {
	c := NewUninitializedChess960()
	if c.Initialized() {
		t.Fatal("new descriptor reports initialized")
	}

	if err := c.Initialize('d', 'g'); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	q, k := c.RookFiles()
	if q != 'd' || k != 'g' {
		t.Errorf("RookFiles() = %c, %c; want d, g", q, k)
	}

	if err := c.Initialize('a', 'h'); err == nil {
		t.Error("second Initialize() returned nil error")
	}
	q, k = c.RookFiles()
	if q != 'd' || k != 'g' {
		t.Errorf("RookFiles() after rejected Initialize = %c, %c; want d, g", q, k)
	}
}

func TestNewChess960Invalid(t *testing.T) {
	tests := []struct {
		name string
		q, k Col
	}{
		{"same file", 'c', 'c'},
		{"reversed", 'g', 'b'},
		{"off board", 'a', 'i'},
		{"missing", NoCol, 'h'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewChess960(tt.q, tt.k); !errors.Is(err, chesserrors.ErrInvalidInput) {
				t.Errorf("NewChess960(%q, %q) error = %v; want ErrInvalidInput", tt.q, tt.k, err)
			}
		})
	}
}

func TestRegularChess(t *testing.T) {
	if !Regular.Initialized() {
		t.Error("Regular.Initialized() = false")
	}
	q, k := Regular.RookFiles()
	if q != 'a' || k != 'h' {
		t.Errorf("Regular.RookFiles() = %c, %c; want a, h", q, k)
	}
}

func TestMoveValid(t *testing.T) {
	e4 := Move{Piece: Pawn, To: NewSquare('e', '4')}
	tests := []struct {
		name string
		move Move
		want bool
	}{
		{"pawn push", e4, true},
		{"castle", NewCastle(true, false, false), true},
		{"castle with mate", NewCastle(false, false, true), true},
		{"castle with destination", Move{Piece: King, KingsideCastle: true, To: NewSquare('g', '1')}, false},
		{"no destination", Move{Piece: Knight}, false},
		{"mate without check", Move{Piece: Pawn, To: NewSquare('e', '4'), Checkmate: true}, false},
		{"king promotion", Move{Piece: Pawn, To: NewSquare('e', '8'), Promotion: King}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.move.Valid(); got != tt.want {
				t.Errorf("Valid() = %v; want %v", got, tt.want)
			}
		})
	}

	if m := NewCastle(false, false, true); !m.Check || !m.KingsideCastle || m.HasDestination() {
		t.Errorf("NewCastle(kingside, mate) = %+v", m)
	}
}

func TestNAG(t *testing.T) {
	tests := []struct {
		nag    NAG
		str    string
		symbol string
	}{
		{NullNAG, "", ""},
		{GoodMove, "$1", "!"},
		{VeryPoorMove, "$4", "??"},
		{QuestionableMove, "$6", "?!"},
		{ForcedMove, "$7", ""},
		{NAG(145), "$145", ""},
	}

	for _, tt := range tests {
		if got := tt.nag.String(); got != tt.str {
			t.Errorf("NAG(%d).String() = %q; want %q", tt.nag, got, tt.str)
		}
		if got := tt.nag.Symbol(); got != tt.symbol {
			t.Errorf("NAG(%d).Symbol() = %q; want %q", tt.nag, got, tt.symbol)
		}
	}
}
