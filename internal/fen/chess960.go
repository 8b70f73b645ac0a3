package fen

import (
	"github.com/lgbarn/chessnotation-go/internal/chess"
	chesserrors "github.com/lgbarn/chessnotation-go/internal/errors"
)

// scanChess960 finds the king and rook files of an initial Chess960 setup.
// Only ranks 1 and 8 are inspected, and the two back ranks must mirror
// each other's king and rook files.
func scanChess960(pieces *[chess.NumSquares]chess.ColouredPiece) (queenside, kingside chess.Col, err error) {
	wQ, wK, wKR, err := scanBackRank(pieces, chess.White, chess.FirstRank)
	if err != nil {
		return chess.NoCol, chess.NoCol, err
	}
	bQ, bK, bKR, err := scanBackRank(pieces, chess.Black, chess.LastRank)
	if err != nil {
		return chess.NoCol, chess.NoCol, err
	}

	if wQ != bQ || wK != bK || wKR != bKR {
		return chess.NoCol, chess.NoCol, fenError(chesserrors.KindMismatch, fieldPlacement, -1,
			"invalid king/rook mirroring in chess960 initial position: White %c%c%c, Black %c%c%c",
			wQ, wK, wKR, bQ, bK, bKR)
	}
	return wQ, wKR, nil
}

// scanBackRank returns the queenside rook, king and kingside rook files of
// colour on rank. A rook seen before the king is the queenside rook.
func scanBackRank(pieces *[chess.NumSquares]chess.ColouredPiece, colour chess.Colour, rank chess.Rank) (queensideRook, king, kingsideRook chess.Col, err error) {
	rook := chess.MakeColouredPiece(colour, chess.Rook)
	kingPiece := chess.MakeColouredPiece(colour, chess.King)

	for col := chess.FirstCol; col <= chess.LastCol; col++ {
		switch pieces[chess.NewSquare(col, rank).Index()] {
		case rook:
			if king == chess.NoCol {
				if queensideRook != chess.NoCol {
					return 0, 0, 0, fenError(chesserrors.KindCardinality, fieldPlacement, -1,
						"multiple %v queen-side rooks in chess960 initial position", colour)
				}
				queensideRook = col
			} else {
				if kingsideRook != chess.NoCol {
					return 0, 0, 0, fenError(chesserrors.KindCardinality, fieldPlacement, -1,
						"multiple %v king-side rooks in chess960 initial position", colour)
				}
				kingsideRook = col
			}
		case kingPiece:
			if king != chess.NoCol {
				return 0, 0, 0, fenError(chesserrors.KindCardinality, fieldPlacement, -1,
					"multiple %v kings in chess960 initial position", colour)
			}
			king = col
		}
	}

	if queensideRook == chess.NoCol || king == chess.NoCol || kingsideRook == chess.NoCol {
		return 0, 0, 0, fenError(chesserrors.KindMismatch, fieldPlacement, -1,
			"missing %v king or rooks in chess960 initial position", colour)
	}
	return queensideRook, king, kingsideRook, nil
}
