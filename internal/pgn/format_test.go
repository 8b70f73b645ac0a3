package pgn_test

import (
	"strings"
	"testing"

	"github.com/lgbarn/chessnotation-go/internal/chess"
	"github.com/lgbarn/chessnotation-go/internal/pgn"
	"github.com/lgbarn/chessnotation-go/internal/testutil"
)

func TestFormatScholarsMate(t *testing.T) {
	doc := testutil.MustParsePGN(t, testutil.ScholarsMate)
	testutil.AssertEqual(t, pgn.Format(doc), testutil.ScholarsMate)
}

func TestFormatRoundTrip(t *testing.T) {
	inputs := map[string]string{
		"scholars mate": testutil.ScholarsMate,
		"annotated":     testutil.AnnotatedGame,
		"escaped tags":  "[Event \"The \\\"Big\\\" Open\"]\n[Site \"C:\\\\chess\"]\n\n1. e4 *",
		"no result":     "[Event \"x\"]\n\n1. e4 e5 2. O-O-O",
		"crlf":          "[Event \"x\"]\r\n\r\n1. e4\r\ne5 0-1",
	}

	for name, text := range inputs {
		t.Run(name, func(t *testing.T) {
			doc := testutil.MustParsePGN(t, text)
			again := testutil.MustParsePGN(t, pgn.Format(doc))
			testutil.AssertDocumentsEqual(t, again, doc)
		})
	}
}

func TestFormatWrapsLines(t *testing.T) {
	doc := testutil.MustParsePGN(t, testutil.AnnotatedGame)

	out := pgn.FormatWidth(doc, 40)
	_, movetext, _ := strings.Cut(out, "\n\n")
	for _, line := range strings.Split(movetext, "\n") {
		if len(line) > 40 {
			t.Errorf("line %q longer than 40 columns", line)
		}
	}
	testutil.AssertDocumentsEqual(t, testutil.MustParsePGN(t, out), doc)

	unwrapped := pgn.FormatWidth(doc, 0)
	_, movetext, _ = strings.Cut(unwrapped, "\n\n")
	testutil.AssertNotContains(t, movetext, "\n")
}

func TestFormatBuiltDocument(t *testing.T) {
	tags := pgn.NewTags()
	testutil.AssertNoError(t, tags.Add(chess.EventTag, "Built"))
	testutil.AssertError(t, tags.Add(chess.EventTag, "Again"), "duplicate tag accepted")
	testutil.AssertError(t, tags.Add("", "x"), "empty tag accepted")

	plies := []pgn.Ply{
		{Move: chess.Move{Piece: chess.Pawn, To: chess.NewSquare('e', '4')}, NAG: chess.GoodMove},
		{Move: chess.Move{Piece: chess.Knight, To: chess.NewSquare('f', '6')}, Comment: &chess.Comment{Text: "solid"}},
	}
	doc := pgn.NewDocument(tags, plies, pgn.Draw)

	testutil.AssertEqual(t, pgn.Format(doc), "[Event \"Built\"]\n\n1. e4 $1 Nf6 {solid} 1/2-1/2")
}
