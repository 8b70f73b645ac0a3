// Package fen decodes and encodes Forsyth-Edwards Notation.
//
// Decoding is strict: the six fields must appear in order, separated by
// single spaces, and the destination Position (and Chess960 descriptor) is
// only written once every field has been validated.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chessnotation-go/internal/chess"
	chesserrors "github.com/lgbarn/chessnotation-go/internal/errors"
)

const (
	// MaxLength is the longest FEN string accepted by Decode.
	MaxLength = 96

	// DefaultHalfmoveLimit is the largest half-move clock accepted by default.
	DefaultHalfmoveLimit = 100
)

// Codec decodes FEN strings. The zero value is not usable; use NewCodec.
type Codec struct {
	halfmoveLimit uint
}

// Option configures a Codec.
type Option func(*Codec)

// WithHalfmoveLimit sets the largest accepted half-move clock (inclusive).
func WithHalfmoveLimit(n uint) Option {
	return func(c *Codec) {
		c.halfmoveLimit = n
	}
}

// NewCodec creates a codec. Default: half-move clock limit of 100.
func NewCodec(opts ...Option) *Codec {
	c := &Codec{halfmoveLimit: DefaultHalfmoveLimit}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HalfmoveLimit returns the largest half-move clock the codec accepts.
func (c *Codec) HalfmoveLimit() uint {
	return c.halfmoveLimit
}

var defaultCodec = NewCodec()

// Decode parses text into pos using the default codec.
func Decode(mode chess.GameMode, pos *chess.Position, text string) error {
	return defaultCodec.Decode(mode, pos, text)
}

// DecodePlacement parses a lone placement field into board.
func DecodePlacement(board *chess.Board, text string) error {
	return defaultCodec.DecodePlacement(board, text)
}

// Parse decodes a regular chess FEN string into a new Position.
func Parse(text string) (*chess.Position, error) {
	pos := chess.NewPosition()
	if err := Decode(chess.Regular, pos, text); err != nil {
		return nil, err
	}
	return pos, nil
}

// Decode parses text into pos.
//
// When mode is a Chess960 descriptor that is not yet initialized, text must
// be an initial position: White to move, both sides with full castling
// rights, half-move clock 0 and full-move counter 1. The rook files found on
// ranks 1 and 8 then initialize the descriptor.
func (c *Codec) Decode(mode chess.GameMode, pos *chess.Position, text string) error {
	if pos == nil {
		return fmt.Errorf("%w: nil position", chesserrors.ErrInvalidInput)
	}

	var bootstrap *chess.Chess960
	switch m := mode.(type) {
	case chess.RegularChess:
	case *chess.Chess960:
		if m == nil {
			return chesserrors.ErrUnsupportedGameMode
		}
		if !m.Initialized() {
			bootstrap = m
		}
	default:
		return chesserrors.ErrUnsupportedGameMode
	}

	if len(text) > MaxLength {
		return fenError(chesserrors.KindTooMany, fieldFEN, MaxLength,
			"FEN string has %d characters, at most %d allowed", len(text), MaxLength)
	}

	r := &reader{text: text}
	decoded := chess.NewPosition()

	// 1: Placement
	var pieces [chess.NumSquares]chess.ColouredPiece
	if err := parsePlacement(r, &pieces); err != nil {
		return err
	}
	if err := r.expectSpace(fieldPlacement); err != nil {
		return err
	}

	var letters castlingLetters
	var queenside, kingside chess.Col
	if bootstrap != nil {
		var err error
		queenside, kingside, err = scanChess960(&pieces)
		if err != nil {
			return err
		}
		letters = chess960Letters(queenside, kingside)
	} else {
		wK, wQ, bK, bQ, err := chess.CastlingLetters(mode)
		if err != nil {
			return err
		}
		letters = castlingLetters{wK: wK, wQ: wQ, bK: bK, bQ: bQ}
	}

	// 2: Side to move
	start := r.pos
	side, err := r.next(fieldSideToMove)
	if err != nil {
		return err
	}
	switch side {
	case 'w':
		decoded.ToMove = chess.White
	case 'b':
		decoded.ToMove = chess.Black
	default:
		return fenError(chesserrors.KindAlphabet, fieldSideToMove, start, "invalid side to move: '%c'", side)
	}
	if bootstrap != nil && decoded.ToMove != chess.White {
		return fenError(chesserrors.KindMismatch, fieldSideToMove, start, "initial position must have White to move")
	}
	if err := r.expectSpace(fieldSideToMove); err != nil {
		return err
	}

	// 3: Castling rights, including the trailing space
	start = r.pos
	decoded.WhiteCastling, decoded.BlackCastling, err = parseCastling(r, letters)
	if err != nil {
		return err
	}
	if bootstrap != nil && (decoded.WhiteCastling != chess.BothCastling || decoded.BlackCastling != chess.BothCastling) {
		return fenError(chesserrors.KindMismatch, fieldCastling, start, "initial position must give both sides full castling rights")
	}

	// 4: En passant
	decoded.EnPassant, err = parseEnPassant(r)
	if err != nil {
		return err
	}
	if err := r.expectSpace(fieldEnPassant); err != nil {
		return err
	}

	// 5: Half-move clock, including the trailing space
	start = r.pos
	rest := r.rest()
	idx := strings.IndexByte(rest, ' ')
	if idx == -1 {
		if rest == "" {
			return tooFew(fieldHalfmove, r.pos)
		}
		return fenError(chesserrors.KindStructure, fieldHalfmove, r.pos+len(rest), "missing space after half-move clock")
	}
	halfmoves, err := parseCounter(rest[:idx], fieldHalfmove, start)
	if err != nil {
		return err
	}
	if halfmoves > uint64(c.halfmoveLimit) {
		return fenError(chesserrors.KindRange, fieldHalfmove, start,
			"invalid half-move clock: %d exceeds %d", halfmoves, c.halfmoveLimit)
	}
	if bootstrap != nil && halfmoves != 0 {
		return fenError(chesserrors.KindMismatch, fieldHalfmove, start, "initial position must have a half-move clock of 0")
	}
	r.pos += idx + 1

	// 6: Full-move counter, the rest of the string
	start = r.pos
	if r.rest() == "" {
		return tooFew(fieldFullmove, r.pos)
	}
	fullmoves, err := parseCounter(r.rest(), fieldFullmove, start)
	if err != nil {
		return err
	}
	if fullmoves < 1 {
		return fenError(chesserrors.KindRange, fieldFullmove, start, "invalid full-move counter: %d", fullmoves)
	}
	if bootstrap != nil && fullmoves != 1 {
		return fenError(chesserrors.KindMismatch, fieldFullmove, start, "initial position must have a full-move counter of 1")
	}

	decoded.HalfmoveClock = uint(halfmoves)
	decoded.MoveNumber = uint(fullmoves)
	if err := decoded.Board.SetPieces(pieces[:]); err != nil {
		return err
	}

	if bootstrap != nil {
		if err := bootstrap.Initialize(queenside, kingside); err != nil {
			return err
		}
	}
	*pos = *decoded
	return nil
}

// DecodePlacement parses exactly one placement field into board.
// Trailing characters are rejected.
func (c *Codec) DecodePlacement(board *chess.Board, text string) error {
	if board == nil {
		return fmt.Errorf("%w: nil board", chesserrors.ErrInvalidInput)
	}
	if len(text) > MaxLength {
		return fenError(chesserrors.KindTooMany, fieldPlacement, MaxLength,
			"placement has %d characters, at most %d allowed", len(text), MaxLength)
	}

	r := &reader{text: text}
	var pieces [chess.NumSquares]chess.ColouredPiece
	if err := parsePlacement(r, &pieces); err != nil {
		return err
	}
	if r.pos != len(text) {
		return fenError(chesserrors.KindTooMany, fieldPlacement, r.pos,
			"too many characters after placement: %q", r.rest())
	}
	return board.SetPieces(pieces[:])
}

// parsePlacement reads eight ranks, rank 8 first, into pieces.
func parsePlacement(r *reader, pieces *[chess.NumSquares]chess.ColouredPiece) error {
	for rank := chess.LastRank; rank >= chess.FirstRank; rank-- {
		col := chess.FirstCol
		prevWasEmpty := false

		for col <= chess.LastCol {
			start := r.pos
			c, err := r.next(fieldPlacement)
			if err != nil {
				return err
			}

			switch {
			case c >= '1' && c <= '8':
				if prevWasEmpty {
					return fenError(chesserrors.KindCardinality, fieldPlacement, start,
						"multiple empty specifiers in rank %c", rank)
				}
				n := chess.Col(c - '0')
				if col+n > chess.LastCol+1 {
					return fenError(chesserrors.KindCardinality, fieldPlacement, start,
						"too many empty squares in rank %c: '%c'", rank, c)
				}
				for i := chess.Col(0); i < n; i++ {
					pieces[chess.NewSquare(col+i, rank).Index()] = chess.Empty
				}
				col += n
				prevWasEmpty = true
			case c == '/':
				return fenError(chesserrors.KindCardinality, fieldPlacement, start,
					"rank %c has only %d files", rank, col-chess.FirstCol)
			default:
				cp, ok := chess.ColouredPieceFromLetter(c)
				if !ok {
					return fenError(chesserrors.KindAlphabet, fieldPlacement, start,
						"invalid piece in rank %c: '%c'", rank, c)
				}
				pieces[chess.NewSquare(col, rank).Index()] = cp
				col++
				prevWasEmpty = false
			}
		}

		if rank != chess.FirstRank {
			start := r.pos
			c, err := r.next(fieldPlacement)
			if err != nil {
				return err
			}
			if c != '/' {
				return fenError(chesserrors.KindStructure, fieldPlacement, start,
					"rank %c ending is invalid: '%c'", rank, c)
			}
		}
	}
	return nil
}

// castlingLetters is the rights alphabet of one game mode.
type castlingLetters struct {
	wK, wQ, bK, bQ byte
}

func chess960Letters(queenside, kingside chess.Col) castlingLetters {
	return castlingLetters{
		wK: kingside.Upper(),
		wQ: queenside.Upper(),
		bK: byte(kingside),
		bQ: byte(queenside),
	}
}

// parseCastling reads '-' or a run of rights characters, and the space after it.
// White rights must come before Black rights.
func parseCastling(r *reader, letters castlingLetters) (white, black chess.CastlingAbility, err error) {
	start := r.pos
	c, err := r.next(fieldCastling)
	if err != nil {
		return 0, 0, err
	}
	if c == '-' {
		start = r.pos
		c, err = r.next(fieldCastling)
		if err != nil {
			return 0, 0, err
		}
		if c != ' ' {
			return 0, 0, fenError(chesserrors.KindStructure, fieldCastling, start, "missing space after castling rights: '%c'", c)
		}
		return chess.NoCastling, chess.NoCastling, nil
	}
	r.pos = start

	beganBlack := false
	for {
		start = r.pos
		c, err = r.next(fieldCastling)
		if err != nil {
			return 0, 0, err
		}

		var side *chess.CastlingAbility
		var flag chess.CastlingAbility
		var name string
		switch c {
		case letters.wK:
			side, flag, name = &white, chess.KingSide, "White king-side"
		case letters.wQ:
			side, flag, name = &white, chess.QueenSide, "White queen-side"
		case letters.bK:
			side, flag, name = &black, chess.KingSide, "Black king-side"
		case letters.bQ:
			side, flag, name = &black, chess.QueenSide, "Black queen-side"
		case ' ':
			if white == chess.NoCastling && black == chess.NoCastling {
				return 0, 0, fenError(chesserrors.KindStructure, fieldCastling, start, "missing castling rights")
			}
			return white, black, nil
		default:
			return 0, 0, fenError(chesserrors.KindAlphabet, fieldCastling, start, "invalid castling rights character: '%c'", c)
		}

		if side == &white && beganBlack {
			return 0, 0, fenError(chesserrors.KindStructure, fieldCastling, start, "castling rights for White appeared after Black")
		}
		if side.Has(flag) {
			return 0, 0, fenError(chesserrors.KindCardinality, fieldCastling, start, "duplicate %s castling rights", name)
		}
		*side |= flag
		if side == &black {
			beganBlack = true
		}
	}
}

func parseEnPassant(r *reader) (chess.Square, error) {
	start := r.pos
	c, err := r.next(fieldEnPassant)
	if err != nil {
		return chess.NoSquare, err
	}
	if c == '-' {
		return chess.NoSquare, nil
	}
	rank, err := r.next(fieldEnPassant)
	if err != nil {
		return chess.NoSquare, err
	}

	sq := chess.NewSquare(chess.Col(c), chess.Rank(rank))
	if !sq.Col.Valid() {
		return chess.NoSquare, fenError(chesserrors.KindAlphabet, fieldEnPassant, start, "invalid en passant file: '%c'", c)
	}
	if !sq.Rank.Valid() {
		return chess.NoSquare, fenError(chesserrors.KindAlphabet, fieldEnPassant, start+1, "invalid en passant rank: '%c'", rank)
	}
	return sq, nil
}

// parseCounter parses an unsigned decimal made only of digits.
func parseCounter(digits, field string, offset int) (uint64, error) {
	if digits == "" {
		return 0, fenError(chesserrors.KindStructure, field, offset, "missing %s", field)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, fenError(chesserrors.KindAlphabet, field, offset+i, "invalid character in %s: '%c'", field, digits[i])
		}
	}
	n, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return 0, fenError(chesserrors.KindRange, field, offset, "%s out of range: %s", field, digits)
	}
	return n, nil
}
