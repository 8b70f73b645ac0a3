package fen_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/lgbarn/chessnotation-go/internal/chess"
	chesserrors "github.com/lgbarn/chessnotation-go/internal/errors"
	"github.com/lgbarn/chessnotation-go/internal/fen"
	"github.com/lgbarn/chessnotation-go/internal/testutil"
)

const startPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

func TestDecodePlacement(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantKind error
	}{
		{"start position", startPlacement, nil},
		{"empty board", "8/8/8/8/8/8/8/8", nil},
		{"adjacent digits", "rnbqkbnr/pppppppp/44/8/8/8/PPPPPPPP/RNBQKBNR", chesserrors.ErrCardinality},
		{"rank exceeds 8 files", "rnbqkbnr/ppppppp2/8/8/8/8/PPPPPPPP/RNBQKBNR", chesserrors.ErrCardinality},
		{"short rank", "rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", chesserrors.ErrCardinality},
		{"invalid piece", "rnbqkbnr/pppppppp/8/8/4X3/8/PPPPPPPP/RNBQKBNR", chesserrors.ErrAlphabet},
		{"zero digit", "rnbqkbnr/pppppppp/8/8/08/8/PPPPPPPP/RNBQKBNR", chesserrors.ErrAlphabet},
		{"nine digit", "rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR", chesserrors.ErrAlphabet},
		{"missing separator", "rnbqkbnrpppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", chesserrors.ErrStructure},
		{"truncated", "rnbqkbnr/pppppppp/8/8", chesserrors.ErrTooFewCharacters},
		{"empty", "", chesserrors.ErrTooFewCharacters},
		{"trailing separator", startPlacement + "/", chesserrors.ErrTooManyCharacters},
		{"trailing fields", startPlacement + " w KQkq - 0 1", chesserrors.ErrTooManyCharacters},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := chess.NewBoard()
			err := fen.DecodePlacement(board, tt.text)
			if tt.wantKind == nil {
				testutil.AssertNoError(t, err)
				return
			}
			if !errors.Is(err, chesserrors.ErrInvalidFEN) {
				t.Errorf("DecodePlacement(%q) error = %v; want ErrInvalidFEN", tt.text, err)
			}
			if !errors.Is(err, tt.wantKind) {
				t.Errorf("DecodePlacement(%q) error = %v; want kind %v", tt.text, err, tt.wantKind)
			}
			testutil.AssertEqual(t, board.Count(chess.Empty), chess.NumSquares, "board modified by failed decode")
		})
	}
}

func TestDecodePlacementStartLayout(t *testing.T) {
	board := chess.NewBoard()
	testutil.AssertNoError(t, fen.DecodePlacement(board, startPlacement))

	want := chess.NewBoard()
	want.SetupInitialPosition()
	testutil.AssertEqual(t, board.Pieces(), want.Pieces())
}

func TestDecodePlacementReasons(t *testing.T) {
	tests := []struct {
		text   string
		reason string
	}{
		{"rnbqkbnr/pppppppp/44/8/8/8/PPPPPPPP/RNBQKBNR", "multiple empty specifiers in rank 6"},
		{"rnbqkbnr/ppppppp2/8/8/8/8/PPPPPPPP/RNBQKBNR", "too many empty squares in rank 7: '2'"},
		{"rnbqkbnr/pppppppp/8/8/4X3/8/PPPPPPPP/RNBQKBNR", "invalid piece in rank 4: 'X'"},
		{"rnbqkbnr-pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", "rank 8 ending is invalid: '-'"},
	}

	for _, tt := range tests {
		err := fen.DecodePlacement(chess.NewBoard(), tt.text)
		testutil.AssertError(t, err, tt.text)
		if err != nil {
			testutil.AssertContains(t, err.Error(), tt.reason)
		}
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantKind error
	}{
		{"initial", fen.InitialFEN, nil},
		{"after e4", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", nil},
		{"no castling", "4k3/8/8/8/8/8/8/4K3 w - - 12 40", nil},
		{"partial castling", "r3k2r/8/8/8/8/8/8/R3K2R b Kq - 3 17", nil},
		{"half-move clock at limit", "4k3/8/8/8/8/8/8/4K3 w - - 100 80", nil},
		{"half-move clock over limit", "4k3/8/8/8/8/8/8/4K3 w - - 101 80", chesserrors.ErrRange},
		{"full-move counter zero", "4k3/8/8/8/8/8/8/4K3 w - - 0 0", chesserrors.ErrRange},
		{"full-move counter overflow", "4k3/8/8/8/8/8/8/4K3 w - - 0 99999999999", chesserrors.ErrRange},
		{"bad side", "4k3/8/8/8/8/8/8/4K3 x - - 0 1", chesserrors.ErrAlphabet},
		{"uppercase side", "4k3/8/8/8/8/8/8/4K3 W - - 0 1", chesserrors.ErrAlphabet},
		{"white rights after black", "r3k2r/8/8/8/8/8/8/R3K2R w kK - 0 1", chesserrors.ErrStructure},
		{"duplicate right", "r3k2r/8/8/8/8/8/8/R3K2R w KK - 0 1", chesserrors.ErrCardinality},
		{"chess960 letters in regular game", "r3k2r/8/8/8/8/8/8/R3K2R w HAha - 0 1", chesserrors.ErrAlphabet},
		{"empty castling field", "4k3/8/8/8/8/8/8/4K3 w  - 0 1", chesserrors.ErrStructure},
		{"dash without space", "4k3/8/8/8/8/8/8/4K3 w -- - 0 1", chesserrors.ErrStructure},
		{"en passant bad file", "4k3/8/8/8/8/8/8/4K3 w - i3 0 1", chesserrors.ErrAlphabet},
		{"en passant bad rank", "4k3/8/8/8/8/8/8/4K3 w - e9 0 1", chesserrors.ErrAlphabet},
		{"double space", "4k3/8/8/8/8/8/8/4K3  w - - 0 1", chesserrors.ErrAlphabet},
		{"missing full-move counter", "4k3/8/8/8/8/8/8/4K3 w - - 0", chesserrors.ErrStructure},
		{"empty full-move counter", "4k3/8/8/8/8/8/8/4K3 w - - 0 ", chesserrors.ErrTooFewCharacters},
		{"trailing space", "4k3/8/8/8/8/8/8/4K3 w - - 0 1 ", chesserrors.ErrAlphabet},
		{"signed counter", "4k3/8/8/8/8/8/8/4K3 w - - -1 1", chesserrors.ErrAlphabet},
		{"truncated after placement", "4k3/8/8/8/8/8/8/4K3", chesserrors.ErrTooFewCharacters},
		{"truncated after side", "4k3/8/8/8/8/8/8/4K3 w", chesserrors.ErrTooFewCharacters},
		{"truncated castling", "r3k2r/8/8/8/8/8/8/R3K2R w KQ", chesserrors.ErrTooFewCharacters},
		{"too long", fen.InitialFEN + strings.Repeat(" ", fen.MaxLength), chesserrors.ErrTooManyCharacters},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := chess.NewPosition()
			err := fen.Decode(chess.Regular, pos, tt.text)
			if tt.wantKind == nil {
				testutil.AssertNoError(t, err)
				return
			}
			if !errors.Is(err, tt.wantKind) {
				t.Errorf("Decode(%q) error = %v; want kind %v", tt.text, err, tt.wantKind)
			}
			testutil.AssertPositionsEqual(t, pos, chess.NewPosition(), "position modified by failed decode")
		})
	}
}

func TestDecodeFields(t *testing.T) {
	pos := chess.NewPosition()
	err := fen.Decode(chess.Regular, pos, "r3k2r/8/8/3pP3/8/8/8/R3K2R w Kq d6 7 31")
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, pos.ToMove, chess.White)
	testutil.AssertEqual(t, pos.WhiteCastling, chess.KingSide)
	testutil.AssertEqual(t, pos.BlackCastling, chess.QueenSide)
	testutil.AssertEqual(t, pos.EnPassant, chess.NewSquare('d', '6'))
	testutil.AssertEqual(t, pos.HalfmoveClock, uint(7))
	testutil.AssertEqual(t, pos.MoveNumber, uint(31))
	testutil.AssertEqual(t, pos.Board.At('e', '5'), chess.W(chess.Pawn))
	testutil.AssertEqual(t, pos.Board.At('d', '5'), chess.B(chess.Pawn))
	testutil.AssertEqual(t, pos.Board.At('h', '8'), chess.B(chess.Rook))
}

func TestDecodeFailureKeepsPosition(t *testing.T) {
	pos := fen.Initial()
	before := pos.Copy()

	err := fen.Decode(chess.Regular, pos, "4k3/8/8/8/8/8/8/4K3 b - - 0 0")
	testutil.AssertError(t, err)
	testutil.AssertTrue(t, pos.Equal(before), "failed decode modified the position")
}

func TestHalfmoveLimitOption(t *testing.T) {
	const text = "4k3/8/8/8/8/8/8/4K3 w - - 100 80"

	strict := fen.NewCodec(fen.WithHalfmoveLimit(99))
	err := strict.Decode(chess.Regular, chess.NewPosition(), text)
	if !errors.Is(err, chesserrors.ErrRange) {
		t.Errorf("Decode() with limit 99 error = %v; want ErrRange", err)
	}

	lenient := fen.NewCodec(fen.WithHalfmoveLimit(150))
	testutil.AssertNoError(t, lenient.Decode(chess.Regular, chess.NewPosition(), text))
	testutil.AssertEqual(t, fen.NewCodec().HalfmoveLimit(), uint(fen.DefaultHalfmoveLimit))
}

func TestDecodeUnsupportedMode(t *testing.T) {
	err := fen.Decode(nil, chess.NewPosition(), fen.InitialFEN)
	if !errors.Is(err, chesserrors.ErrUnsupportedGameMode) {
		t.Errorf("Decode(nil mode) error = %v; want ErrUnsupportedGameMode", err)
	}
	err = fen.Decode(chess.Regular, nil, fen.InitialFEN)
	if !errors.Is(err, chesserrors.ErrInvalidInput) {
		t.Errorf("Decode(nil position) error = %v; want ErrInvalidInput", err)
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"initial", fen.InitialFEN},
		{"en passant", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"},
		{"no castling", "4k3/8/8/8/8/8/8/4K3 w - - 12 40"},
		{"mixed rights", "r3k2r/8/8/8/8/8/8/R3K2R b Qk - 3 17"},
		{"full board", "rnbqkbnr/pppppppp/pppppppp/pppppppp/PPPPPPPP/PPPPPPPP/PPPPPPPP/RNBQKBNR w - - 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := testutil.MustDecodeFEN(t, tt.text)
			got, err := fen.Encode(chess.Regular, pos)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.text)
		})
	}
}

func TestEncodeCanonicalCastlingOrder(t *testing.T) {
	pos := testutil.MustDecodeFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w QKqk - 0 1")
	got, err := fen.Encode(chess.Regular, pos)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		fen.InitialFEN,
		"r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"4k3/8/8/8/8/8/8/4K3 b Qk - 100 999",
	}

	for _, text := range inputs {
		t.Run(text, func(t *testing.T) {
			first := testutil.MustDecodeFEN(t, text)
			encoded, err := fen.Encode(chess.Regular, first)
			testutil.AssertNoError(t, err)

			second := testutil.MustDecodeFEN(t, encoded)
			testutil.AssertPositionsEqual(t, second, first, "decode(encode(p))")

			again, err := fen.Encode(chess.Regular, second)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, again, encoded)
		})
	}
}

func TestEncodeUninitializedChess960(t *testing.T) {
	_, err := fen.Encode(chess.NewUninitializedChess960(), fen.Initial())
	if !errors.Is(err, chesserrors.ErrUninitializedGameMode) {
		t.Errorf("Encode() error = %v; want ErrUninitializedGameMode", err)
	}
}

func TestEncodePlacement(t *testing.T) {
	testutil.AssertEqual(t, fen.EncodePlacement(&fen.Initial().Board), startPlacement)
	testutil.AssertEqual(t, fen.EncodePlacement(chess.NewBoard()), "8/8/8/8/8/8/8/8")
}
