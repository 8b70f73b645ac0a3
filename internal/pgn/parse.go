package pgn

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chessnotation-go/internal/chess"
	chesserrors "github.com/lgbarn/chessnotation-go/internal/errors"
	"github.com/lgbarn/chessnotation-go/internal/san"
)

const (
	fieldTags     = "tags"
	fieldMovetext = "movetext"
)

// maxNAG is the largest numeric annotation glyph.
const maxNAG = 255

func pgnError(kind chesserrors.Kind, field string, offset int, format string, args ...interface{}) error {
	return chesserrors.NewParseError(chesserrors.ErrInvalidPGN, kind, field, format, args...).At(offset)
}

// parser walks a PGN document from front to back.
type parser struct {
	text string
	pos  int
}

// Parse reads a single PGN document. Trailing whitespace is not
// permitted after the termination token; callers trim it beforehand.
func Parse(text string) (*Document, error) {
	p := &parser{text: text}

	tags, err := p.parseTags()
	if err != nil {
		return nil, err
	}

	plies, termination, err := p.parseMovetext()
	if err != nil {
		return nil, err
	}

	return &Document{tags: tags, plies: plies, termination: termination}, nil
}

func (p *parser) rest() string {
	return p.text[p.pos:]
}

// parseTags consumes tag lines up to and including the empty line
// that separates them from the movetext.
func (p *parser) parseTags() (*Tags, error) {
	tags := NewTags()
	for {
		rest := p.rest()
		lf := strings.IndexByte(rest, '\n')
		if lf == -1 {
			return nil, pgnError(chesserrors.KindStructure, fieldTags, len(p.text), "missing newline while reading tags")
		}

		lineEnd, sepLen := lf, 1
		if lf > 0 && rest[lf-1] == '\r' {
			lineEnd, sepLen = lf-1, 2
		}

		lineStart := p.pos
		line := rest[:lineEnd]
		p.pos += lineEnd + sepLen
		if line == "" {
			break
		}

		name, value, err := parseTagLine(line, lineStart)
		if err != nil {
			return nil, err
		}
		if _, dup := tags.Get(name); dup {
			return nil, pgnError(chesserrors.KindCardinality, fieldTags, lineStart, "duplicate tag %q", name)
		}
		if err := tags.Add(name, value); err != nil {
			return nil, pgnError(chesserrors.KindStructure, fieldTags, lineStart, "%v", err)
		}
	}

	if tags.Len() == 0 {
		return nil, pgnError(chesserrors.KindCardinality, fieldTags, 0, "missing tags")
	}
	return tags, nil
}

func (p *parser) parseMovetext() ([]Ply, Termination, error) {
	var plies []Ply
	termination := Unknown
	turn := 1
	colour := chess.White

	for p.pos < len(p.text) {
		if t, ok := ParseTermination(p.rest()); ok {
			termination = t
			p.pos = len(p.text)
			break
		}

		if err := p.parseTurnNumber(turn, colour); err != nil {
			return nil, Unknown, err
		}

		ply, err := p.parsePly(len(plies) + 1)
		if err != nil {
			return nil, Unknown, err
		}
		plies = append(plies, ply)

		if colour == chess.Black {
			turn++
		}
		colour = colour.Opposite()
	}

	if len(plies) == 0 {
		return nil, Unknown, pgnError(chesserrors.KindCardinality, fieldMovetext, p.pos, "missing moves")
	}
	return plies, termination, nil
}

// parseTurnNumber consumes "N." before a White move, or the optional
// "N..." before a Black move, and any whitespace after it.
func (p *parser) parseTurnNumber(turn int, colour chess.Colour) error {
	number := strconv.Itoa(turn)
	rest := p.rest()

	if colour == chess.White {
		if !strings.HasPrefix(rest, number+".") {
			return pgnError(chesserrors.KindStructure, fieldMovetext, p.pos, "expected move number %s.", number)
		}
		p.pos += len(number) + 1
	} else if strings.HasPrefix(rest, number) {
		if !strings.HasPrefix(rest, number+"...") {
			return pgnError(chesserrors.KindStructure, fieldMovetext, p.pos, "expected move number %s...", number)
		}
		p.pos += len(number) + 3
	}

	p.skipWhitespace()
	return nil
}

func (p *parser) parsePly(plyNum int) (Ply, error) {
	start := p.pos
	move, n, err := san.Decode(p.rest())
	if err != nil {
		var pe *chesserrors.ParseError
		if errors.As(err, &pe) {
			err = pe.At(start)
		}
		return Ply{}, fmt.Errorf("%w: %w", chesserrors.ErrInvalidPGN, &chesserrors.GameError{
			Err:      err,
			PlyNum:   plyNum,
			MoveText: token(p.rest()),
		})
	}
	p.pos += n

	ply := Ply{Move: move}
	if err := p.requireWhitespace("move"); err != nil {
		return Ply{}, err
	}

	if ply.NAG, err = p.parseNAG(); err != nil {
		return Ply{}, err
	}

	comment, err := p.parseComment()
	if err != nil {
		return Ply{}, err
	}
	if comment != nil {
		ply.Comment = comment
		ply.Commands = parseCommands(comment.Text)
	}
	return ply, nil
}

// parseNAG consumes an optional "$n" glyph and the whitespace after it.
func (p *parser) parseNAG() (chess.NAG, error) {
	if p.pos >= len(p.text) || p.text[p.pos] != '$' {
		return chess.NullNAG, nil
	}
	start := p.pos
	p.pos++

	digits := 0
	value := 0
	for p.pos < len(p.text) && digits < 3 {
		c := p.text[p.pos]
		if c < '0' || c > '9' {
			break
		}
		if digits == 0 && c == '0' {
			return chess.NullNAG, pgnError(chesserrors.KindStructure, fieldMovetext, p.pos, "NAG has leading zeroes")
		}
		value = value*10 + int(c-'0')
		digits++
		p.pos++
	}

	if digits == 0 {
		return chess.NullNAG, pgnError(chesserrors.KindStructure, fieldMovetext, start, "NAG has no digits")
	}
	if value > maxNAG {
		return chess.NullNAG, pgnError(chesserrors.KindRange, fieldMovetext, start, "NAG %d out of range", value)
	}
	if err := p.requireWhitespace("NAG"); err != nil {
		return chess.NullNAG, err
	}
	return chess.NAG(value), nil
}

// parseComment consumes an optional brace comment and the whitespace after it.
func (p *parser) parseComment() (*chess.Comment, error) {
	if p.pos >= len(p.text) || p.text[p.pos] != '{' {
		return nil, nil
	}
	start := p.pos
	end := strings.IndexByte(p.text[start+1:], '}')
	if end == -1 {
		return nil, pgnError(chesserrors.KindStructure, fieldMovetext, start, "comment is not closed")
	}

	comment := &chess.Comment{Text: p.text[start+1 : start+1+end]}
	p.pos = start + end + 2
	if err := p.requireWhitespace("comment"); err != nil {
		return nil, err
	}
	return comment, nil
}

// requireWhitespace consumes one or more whitespace units. The end of
// the document also satisfies it.
func (p *parser) requireWhitespace(after string) error {
	if p.pos >= len(p.text) {
		return nil
	}
	if p.skipWhitespace() == 0 {
		return pgnError(chesserrors.KindStructure, fieldMovetext, p.pos, "missing whitespace after %s: '%c'", after, p.text[p.pos])
	}
	return nil
}

// skipWhitespace consumes spaces, LF and CRLF, returning how many units it saw.
func (p *parser) skipWhitespace() int {
	units := 0
	for p.pos < len(p.text) {
		switch {
		case p.text[p.pos] == ' ' || p.text[p.pos] == '\n':
			p.pos++
		case strings.HasPrefix(p.text[p.pos:], "\r\n"):
			p.pos += 2
		default:
			return units
		}
		units++
	}
	return units
}

// token returns s up to the first whitespace.
func token(s string) string {
	if i := strings.IndexAny(s, " \r\n"); i != -1 {
		return s[:i]
	}
	return s
}
