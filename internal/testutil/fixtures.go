package testutil

import (
	"testing"

	"github.com/lgbarn/chessnotation-go/internal/chess"
	"github.com/lgbarn/chessnotation-go/internal/fen"
	"github.com/lgbarn/chessnotation-go/internal/pgn"
)

// ScholarsMate is a short complete game used across tests.
const ScholarsMate = `[Event "Casual"]
[Site "London"]
[Date "2024.01.01"]
[Round "1"]
[White "Alice"]
[Black "Bob"]
[Result "1-0"]

1. e4 e5 2. Bc4 Nc6 3. Qh5 Nf6 4. Qxf7# 1-0`

// AnnotatedGame carries NAGs, comments and embedded commands.
const AnnotatedGame = `[Event "Club Championship"]
[White "Carol"]
[Black "Dave"]
[Result "1/2-1/2"]

1. d4 {[%clk 0:05:00]} 1... Nf6 $1 {[%clk 0:04:58] [%eval 0.17]} 2. c4 e6 $6
3. Nc3 Bb4 4. Qc2 O-O 5. a3 Bxc3+ 6. Qxc3 d5 1/2-1/2`

// MustDecodeFEN decodes a regular-chess FEN or fails the test.
func MustDecodeFEN(t *testing.T, text string) *chess.Position {
	t.Helper()
	pos, err := fen.Parse(text)
	if err != nil {
		t.Fatalf("failed to decode FEN %q: %v", text, err)
	}
	return pos
}

// MustParsePGN parses a single PGN document or fails the test.
func MustParsePGN(t *testing.T, text string) *pgn.Document {
	t.Helper()
	doc, err := pgn.Parse(text)
	if err != nil {
		t.Fatalf("failed to parse PGN: %v\n%s", err, text)
	}
	return doc
}

// AssertDocumentsEqual compares the tags, plies and termination of two documents.
func AssertDocumentsEqual(t *testing.T, got, want *pgn.Document) {
	t.Helper()
	AssertEqual(t, got.Tags().Names(), want.Tags().Names(), "tag order")
	AssertEqual(t, got.Tags().Map(), want.Tags().Map(), "tag values")
	AssertEqual(t, got.Plies(), want.Plies(), "plies")
	AssertEqual(t, got.Termination(), want.Termination(), "termination")
}
