package testutil

import (
	"testing"

	"github.com/lgbarn/chessnotation-go/internal/chess"
	"github.com/lgbarn/chessnotation-go/internal/fen"
)

func TestMustDecodeFEN(t *testing.T) {
	pos := MustDecodeFEN(t, fen.InitialFEN)
	AssertTrue(t, pos.Equal(chess.NewInitialPosition()), "initial FEN should decode to the initial position")
}

func TestMustParsePGN(t *testing.T) {
	tests := []struct {
		name  string
		pgn   string
		plies int
	}{
		{"scholars mate", ScholarsMate, 7},
		{"annotated", AnnotatedGame, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := MustParsePGN(t, tt.pgn)
			AssertEqual(t, doc.Len(), tt.plies)
			AssertDocumentsEqual(t, doc, doc)
		})
	}
}
