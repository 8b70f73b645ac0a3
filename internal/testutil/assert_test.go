package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lgbarn/chessnotation-go/internal/chess"
	chesserrors "github.com/lgbarn/chessnotation-go/internal/errors"
	"github.com/lgbarn/chessnotation-go/internal/fen"
)

// The helpers cannot be run against a failing *testing.T, so these tests
// cover the passing paths and the message formatting.

func TestAssertEqual(t *testing.T) {
	AssertEqual(t, chess.NewSquare('e', '4'), chess.NewSquare('e', '4'))
	AssertEqual(t, []chess.NAG{chess.GoodMove, chess.PoorMove}, []chess.NAG{1, 2})
	AssertEqual(t, map[string]string{"clk": "0:05:00"}, map[string]string{"clk": "0:05:00"}, "commands of ply %d", 1)
	AssertEqual(t, nil, nil)
}

func TestAssertErrors(t *testing.T) {
	AssertNoError(t, nil)
	AssertError(t, errors.New("boom"), "decode %s", "e4")

	err := fmt.Errorf("wrapped: %w", chesserrors.NewParseError(chesserrors.ErrInvalidFEN, chesserrors.KindRange, "halfmove clock", "too large").At(12))
	AssertErrorIs(t, err, chesserrors.ErrInvalidFEN, chesserrors.ErrRange)

	pe := AssertParseError(t, err, chesserrors.KindRange, "halfmove clock")
	AssertEqual(t, pe.Offset, 12)
}

func TestAssertPositionsEqual(t *testing.T) {
	pos, err := fen.Parse(fen.InitialFEN)
	AssertNoError(t, err)
	AssertPositionsEqual(t, pos, fen.Initial())

	other := pos.Copy()
	other.ToMove = chess.Black
	AssertFalse(t, other.Equal(pos), "side to move differs")
	AssertEqual(t, describePosition(other), "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1")
}

func TestAssertStrings(t *testing.T) {
	AssertContains(t, "1. e4 e5 1-0", "e5")
	AssertContains(t, "e4", "")
	AssertNotContains(t, "1. e4 e5 1-0", "Nf3")
}

func TestAssertBooleansAndNil(t *testing.T) {
	AssertTrue(t, chess.White.Opposite() == chess.Black)
	AssertFalse(t, chess.NoSquare.Valid())

	var comment *chess.Comment
	var commands map[string]string
	AssertNil(t, comment)
	AssertNil(t, commands)
	AssertNil(t, nil)
	AssertNotNil(t, &chess.Comment{Text: "best"})
	AssertNotNil(t, []chess.Move{{}})
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"empty args", []interface{}{}, ""},
		{"single string", []interface{}{"castling"}, "castling"},
		{"single value", []interface{}{42}, "42"},
		{"format string", []interface{}{"ply %d of %s", 3, "game 1"}, "ply 3 of game 1"},
		{"non-string format", []interface{}{7, "ignored"}, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatMessage(tt.args...)
			if got != tt.want {
				t.Errorf("formatMessage(%v) = %q; want %q", tt.args, got, tt.want)
			}
		})
	}
}
