package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chessnotation-go/internal/chess"
	chesserrors "github.com/lgbarn/chessnotation-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Initial returns the standard starting position.
func Initial() *chess.Position {
	return chess.NewInitialPosition()
}

// Encode converts pos to a FEN string. Castling rights use the alphabet of
// mode, so a Chess960 descriptor must already be initialized.
func Encode(mode chess.GameMode, pos *chess.Position) (string, error) {
	wK, wQ, bK, bQ, err := chess.CastlingLetters(mode)
	if err != nil {
		return "", chesserrors.Wrap(err, "encoding FEN")
	}
	if pos == nil {
		return "", fmt.Errorf("%w: nil position", chesserrors.ErrInvalidInput)
	}
	if pos.EnPassant != chess.NoSquare && !pos.EnPassant.Valid() {
		return "", fmt.Errorf("%w: en passant target %q is not a square",
			chesserrors.ErrInvalidInput, []byte{byte(pos.EnPassant.Col), byte(pos.EnPassant.Rank)})
	}

	var sb strings.Builder
	sb.Grow(MaxLength)

	// 1: Placement
	writePlacement(&sb, &pos.Board)
	sb.WriteByte(' ')

	// 2: Side to move
	if pos.ToMove == chess.White {
		sb.WriteString("w ")
	} else {
		sb.WriteString("b ")
	}

	// 3: Castling rights
	writeCastling(&sb, pos.WhiteCastling, pos.BlackCastling, castlingLetters{wK: wK, wQ: wQ, bK: bK, bQ: bQ})
	sb.WriteByte(' ')

	// 4: En passant
	sb.WriteString(pos.EnPassant.String())
	sb.WriteByte(' ')

	// 5 and 6: Clocks
	sb.WriteString(strconv.FormatUint(uint64(pos.HalfmoveClock), 10))
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(pos.MoveNumber), 10))

	return sb.String(), nil
}

// EncodePlacement returns the placement field of board.
func EncodePlacement(board *chess.Board) string {
	var sb strings.Builder
	writePlacement(&sb, board)
	return sb.String()
}

// writePlacement writes ranks 8 to 1, run-length encoding empty squares.
func writePlacement(sb *strings.Builder, board *chess.Board) {
	for rank := chess.LastRank; rank >= chess.FirstRank; rank-- {
		emptyCount := 0
		for col := chess.FirstCol; col <= chess.LastCol; col++ {
			cp := board.At(col, rank)
			if cp == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(cp.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > chess.FirstRank {
			sb.WriteByte('/')
		}
	}
}

// writeCastling writes rights in KQkq order, or '-' when neither side has any.
func writeCastling(sb *strings.Builder, white, black chess.CastlingAbility, letters castlingLetters) {
	if white == chess.NoCastling && black == chess.NoCastling {
		sb.WriteByte('-')
		return
	}
	if white.Has(chess.KingSide) {
		sb.WriteByte(letters.wK)
	}
	if white.Has(chess.QueenSide) {
		sb.WriteByte(letters.wQ)
	}
	if black.Has(chess.KingSide) {
		sb.WriteByte(letters.bK)
	}
	if black.Has(chess.QueenSide) {
		sb.WriteByte(letters.bQ)
	}
}
