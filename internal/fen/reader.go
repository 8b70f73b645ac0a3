package fen

import (
	chesserrors "github.com/lgbarn/chessnotation-go/internal/errors"
)

// Field names used in error messages.
const (
	fieldFEN        = "fen"
	fieldPlacement  = "placement"
	fieldSideToMove = "side to move"
	fieldCastling   = "castling rights"
	fieldEnPassant  = "en passant"
	fieldHalfmove   = "half-move clock"
	fieldFullmove   = "full-move counter"
)

// reader is a cursor over the FEN text. Reading past the end yields a
// "too few characters" error.
type reader struct {
	text string
	pos  int
}

func (r *reader) next(field string) (byte, error) {
	if r.pos >= len(r.text) {
		return 0, tooFew(field, r.pos)
	}
	c := r.text[r.pos]
	r.pos++
	return c, nil
}

func (r *reader) rest() string {
	return r.text[r.pos:]
}

func (r *reader) expectSpace(after string) error {
	start := r.pos
	c, err := r.next(after)
	if err != nil {
		return err
	}
	if c != ' ' {
		return fenError(chesserrors.KindStructure, after, start, "missing space after %s: '%c'", after, c)
	}
	return nil
}

func fenError(kind chesserrors.Kind, field string, offset int, format string, args ...interface{}) error {
	return chesserrors.NewParseError(chesserrors.ErrInvalidFEN, kind, field, format, args...).At(offset)
}

func tooFew(field string, offset int) error {
	return fenError(chesserrors.KindTooFew, field, offset, "too few characters in FEN string")
}
