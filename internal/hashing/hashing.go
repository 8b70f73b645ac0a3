// Package hashing provides duplicate detection for parsed PGN games.
//
// Two games are duplicates when they start from the same position and
// carry the same sequence of moves. Tags, comments and NAGs are ignored.
package hashing

import (
	"hash/fnv"

	"github.com/lgbarn/chessnotation-go/internal/chess"
	"github.com/lgbarn/chessnotation-go/internal/fen"
	"github.com/lgbarn/chessnotation-go/internal/pgn"
	"github.com/lgbarn/chessnotation-go/internal/san"
)

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// Start is the hash of the starting position
	Start uint64
	// Moves is the hash of the canonical SAN move sequence
	Moves uint64
	// PlyCount is the number of half-moves in the game
	PlyCount int
}

// Signature computes the signature of a document.
func Signature(doc *pgn.Document) GameSignature {
	return GameSignature{
		Start:    StartHash(doc),
		Moves:    MovesHash(doc),
		PlyCount: doc.Len(),
	}
}

// StartHash hashes the position named by the FEN tag, or the standard
// start position when there is none. A FEN tag that does not decode as
// regular chess is hashed as text.
func StartHash(doc *pgn.Document) uint64 {
	text, ok := doc.Tags().Get(chess.FENTag)
	if !ok {
		return PositionHash(fen.Initial())
	}
	if pos, err := fen.Parse(text); err == nil {
		return PositionHash(pos)
	}
	h := fnv.New64a()
	h.Write([]byte(text))
	return h.Sum64()
}

// MovesHash hashes the moves in canonical SAN, so layout differences in
// the source text do not matter.
func MovesHash(doc *pgn.Document) uint64 {
	h := fnv.New64a()
	for i := 0; i < doc.Len(); i++ {
		h.Write([]byte(san.Format(doc.Ply(i).Move)))
		h.Write([]byte{0})
	}
	return h.Sum64()
}

// DuplicateDetector tracks seen games.
type DuplicateDetector struct {
	seen map[GameSignature]struct{}
	// maxCapacity of 0 means unlimited
	maxCapacity    int
	duplicateCount int
}

// NewDuplicateDetector creates a new duplicate detector. Once maxCapacity
// signatures are stored, new games are still checked but no longer added.
func NewDuplicateDetector(maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		seen:        make(map[GameSignature]struct{}),
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd checks if a game is a duplicate and records it.
// Returns true if the game is a duplicate.
func (d *DuplicateDetector) CheckAndAdd(doc *pgn.Document) bool {
	if doc == nil {
		return false
	}
	return d.checkSignature(Signature(doc))
}

// checkSignature records sig and reports whether it was already present.
func (d *DuplicateDetector) checkSignature(sig GameSignature) bool {
	if _, ok := d.seen[sig]; ok {
		d.duplicateCount++
		return true
	}
	if !d.IsFull() {
		d.seen[sig] = struct{}{}
	}
	return false
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games stored.
func (d *DuplicateDetector) UniqueCount() int {
	return len(d.seen)
}

// IsFull reports whether the capacity limit has been reached.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && len(d.seen) >= d.maxCapacity
}

// Reset clears all recorded games.
func (d *DuplicateDetector) Reset() {
	d.seen = make(map[GameSignature]struct{})
	d.duplicateCount = 0
}
