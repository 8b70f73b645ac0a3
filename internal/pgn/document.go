// Package pgn parses Portable Game Notation documents.
//
// A document is a block of tag pairs, a blank line, and movetext made of
// numbered SAN moves, each optionally followed by a NAG and a brace comment.
// Variations and semicolon comments are not supported.
package pgn

import (
	"github.com/lgbarn/chessnotation-go/internal/chess"
)

// Termination is the outcome recorded at the end of the movetext.
type Termination int

const (
	Unknown Termination = iota
	Draw
	WhiteWin
	BlackWin
)

// String returns the movetext token for the outcome.
func (t Termination) String() string {
	switch t {
	case Draw:
		return "1/2-1/2"
	case WhiteWin:
		return "1-0"
	case BlackWin:
		return "0-1"
	default:
		return "*"
	}
}

// terminationTokens maps result tokens to outcomes.
var terminationTokens = map[string]Termination{
	"1/2-1/2": Draw,
	"1-0":     WhiteWin,
	"0-1":     BlackWin,
	"*":       Unknown,
}

// ParseTermination converts a result token such as "1-0" to an outcome.
func ParseTermination(s string) (Termination, bool) {
	t, ok := terminationTokens[s]
	return t, ok
}

// Ply is one half-move of the movetext.
type Ply struct {
	Move chess.Move
	NAG  chess.NAG

	// Comment is nil when the ply has no comment.
	Comment *chess.Comment

	// Commands holds [%name value] entries found in the comment.
	Commands map[string]string
}

// Document is a parsed PGN game. It is not modified after Parse returns.
type Document struct {
	tags        *Tags
	plies       []Ply
	termination Termination
}

// NewDocument assembles a document from parts.
func NewDocument(tags *Tags, plies []Ply, termination Termination) *Document {
	if tags == nil {
		tags = NewTags()
	}
	p := make([]Ply, len(plies))
	copy(p, plies)
	return &Document{tags: tags, plies: p, termination: termination}
}

// Tags returns the tag pairs in document order.
func (d *Document) Tags() *Tags {
	return d.tags
}

// Plies returns a copy of the plies in transcript order.
func (d *Document) Plies() []Ply {
	p := make([]Ply, len(d.plies))
	copy(p, d.plies)
	return p
}

// Ply returns the i'th ply, starting at 0.
func (d *Document) Ply(i int) Ply {
	return d.plies[i]
}

// Len returns the number of plies.
func (d *Document) Len() int {
	return len(d.plies)
}

// Termination returns the game outcome.
func (d *Document) Termination() Termination {
	return d.termination
}

// MoveNumber returns the full-move number and side of the i'th ply.
func MoveNumber(i int) (int, chess.Colour) {
	if i%2 == 0 {
		return i/2 + 1, chess.White
	}
	return i/2 + 1, chess.Black
}
