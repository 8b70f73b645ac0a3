package pgn

import (
	"strconv"
	"strings"

	"github.com/lgbarn/chessnotation-go/internal/chess"
	"github.com/lgbarn/chessnotation-go/internal/san"
)

// DefaultLineLength is the movetext wrap width used by Format.
const DefaultLineLength = 80

// Format writes d as PGN text with movetext wrapped at DefaultLineLength.
func Format(d *Document) string {
	return FormatWidth(d, DefaultLineLength)
}

// FormatWidth writes d as PGN text, wrapping movetext lines at width
// columns. A width of zero or less disables wrapping. Parsing the result
// yields a document equal to d.
func FormatWidth(d *Document, width int) string {
	var sb strings.Builder

	for _, name := range d.tags.Names() {
		sb.WriteByte('[')
		sb.WriteString(name)
		sb.WriteString(` "`)
		sb.WriteString(escapeTagValue(d.tags.Value(name)))
		sb.WriteString("\"]\n")
	}
	sb.WriteByte('\n')

	w := &lineWriter{sb: &sb, width: width}
	for i, ply := range d.plies {
		number, colour := MoveNumber(i)
		if colour == chess.White {
			w.write(strconv.Itoa(number) + ".")
		}
		w.write(san.Format(ply.Move))
		if ply.NAG != 0 {
			w.write(ply.NAG.String())
		}
		if ply.Comment != nil {
			w.write("{" + ply.Comment.Text + "}")
		}
	}
	w.write(d.termination.String())

	return sb.String()
}

// lineWriter joins tokens with spaces and breaks lines before a token
// that would overflow the width.
type lineWriter struct {
	sb     *strings.Builder
	width  int
	column int
}

func (w *lineWriter) write(tok string) {
	if w.column > 0 {
		if w.width > 0 && w.column+1+len(tok) > w.width {
			w.sb.WriteByte('\n')
			w.column = 0
		} else {
			w.sb.WriteByte(' ')
			w.column++
		}
	}
	w.sb.WriteString(tok)
	if i := strings.LastIndexByte(tok, '\n'); i != -1 {
		w.column = len(tok) - i - 1
	} else {
		w.column += len(tok)
	}
}
