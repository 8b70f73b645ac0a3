package hashing

import (
	"math/rand"

	"github.com/lgbarn/chessnotation-go/internal/chess"
)

// zobristSeed fixes the key tables so hashes are stable across runs.
const zobristSeed = 0x5eed_c4e55

var (
	pieceKeys     [chess.BlackKing + 1][chess.NumSquares]uint64
	castlingKeys  [2][chess.BothCastling + 1]uint64
	enPassantKeys [chess.BoardSize]uint64
	blackToMove   uint64
)

func init() {
	rng := rand.New(rand.NewSource(zobristSeed))
	for cp := chess.WhitePawn; cp <= chess.BlackKing; cp++ {
		for sq := range pieceKeys[cp] {
			pieceKeys[cp][sq] = rng.Uint64()
		}
	}
	for c := range castlingKeys {
		for a := range castlingKeys[c] {
			castlingKeys[c][a] = rng.Uint64()
		}
	}
	for f := range enPassantKeys {
		enPassantKeys[f] = rng.Uint64()
	}
	blackToMove = rng.Uint64()
}

// BoardHash returns the Zobrist hash of the piece placement only.
func BoardHash(board *chess.Board) uint64 {
	var hash uint64
	for idx, cp := range board.Pieces() {
		if cp != chess.Empty {
			hash ^= pieceKeys[cp][idx]
		}
	}
	return hash
}

// PositionHash returns the Zobrist hash of a position: placement, side
// to move, castling rights and en passant file. The clocks are ignored.
func PositionHash(pos *chess.Position) uint64 {
	hash := BoardHash(&pos.Board)
	if pos.ToMove == chess.Black {
		hash ^= blackToMove
	}
	hash ^= castlingKeys[chess.White][pos.WhiteCastling]
	hash ^= castlingKeys[chess.Black][pos.BlackCastling]
	if pos.HasEnPassant() {
		hash ^= enPassantKeys[pos.EnPassant.Col-chess.FirstCol]
	}
	return hash
}
