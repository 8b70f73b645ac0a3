package chess

import "strconv"

// NAG is a Numeric Annotation Glyph, the number written after '$'.
type NAG uint8

// NullNAG marks a ply without an annotation.
const NullNAG NAG = 0

// Move assessment glyphs.
const (
	GoodMove NAG = iota + 1
	PoorMove
	VeryGoodMove
	VeryPoorMove
	SpeculativeMove
	QuestionableMove
	ForcedMove
	SingularMove
	WorstMove
)

var nagSymbols = map[NAG]string{
	GoodMove:         "!",
	PoorMove:         "?",
	VeryGoodMove:     "!!",
	VeryPoorMove:     "??",
	SpeculativeMove:  "!?",
	QuestionableMove: "?!",
}

var nagNames = map[NAG]string{
	GoodMove:         "good move",
	PoorMove:         "poor move",
	VeryGoodMove:     "very good move",
	VeryPoorMove:     "very poor move",
	SpeculativeMove:  "speculative move",
	QuestionableMove: "questionable move",
	ForcedMove:       "forced move",
	SingularMove:     "singular move",
	WorstMove:        "worst move",
}

// Symbol returns the traditional suffix for the glyph, or "" when it has none.
func (n NAG) Symbol() string {
	return nagSymbols[n]
}

// Description returns a short English name for the move assessment glyphs.
func (n NAG) Description() string {
	return nagNames[n]
}

// String returns the glyph as written in PGN movetext, e.g. "$3".
func (n NAG) String() string {
	if n == NullNAG {
		return ""
	}
	return "$" + strconv.Itoa(int(n))
}
