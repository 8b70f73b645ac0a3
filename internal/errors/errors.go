// Package errors provides sentinel errors and error types for the notation codecs.
// It defines the failure kinds shared by the FEN, SAN and PGN decoders and
// structured error types that preserve context while allowing error inspection
// with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors naming the input that failed.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string or placement field.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidMove indicates a SAN token no production could decode.
	ErrInvalidMove = errors.New("unable to parse move")

	// ErrInvalidPGN indicates a malformed PGN document.
	ErrInvalidPGN = errors.New("invalid PGN document")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidInput indicates a caller passed an argument outside its contract.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUninitializedGameMode indicates a Chess960 descriptor whose rook files are not yet known.
	ErrUninitializedGameMode = errors.New("chess960 game mode is not initialized")

	// ErrUnsupportedGameMode indicates a nil or unknown game mode.
	ErrUnsupportedGameMode = errors.New("unsupported game mode")
)

// Sentinel errors naming what kind of rule was broken.
var (
	ErrStructure         = errors.New("structural error")
	ErrAlphabet          = errors.New("character out of alphabet")
	ErrCardinality       = errors.New("cardinality error")
	ErrRange             = errors.New("value out of range")
	ErrTooFewCharacters  = errors.New("too few characters")
	ErrTooManyCharacters = errors.New("too many characters")
	ErrMismatch          = errors.New("chess960 initial position mismatch")
)

// Kind classifies a decode failure.
type Kind int

const (
	KindStructure Kind = iota
	KindAlphabet
	KindCardinality
	KindRange
	KindTooFew
	KindTooMany
	KindMismatch
)

// sentinel returns the kind sentinel matched by errors.Is.
func (k Kind) sentinel() error {
	switch k {
	case KindAlphabet:
		return ErrAlphabet
	case KindCardinality:
		return ErrCardinality
	case KindRange:
		return ErrRange
	case KindTooFew:
		return ErrTooFewCharacters
	case KindTooMany:
		return ErrTooManyCharacters
	case KindMismatch:
		return ErrMismatch
	default:
		return ErrStructure
	}
}

// String returns the kind's description.
func (k Kind) String() string {
	return k.sentinel().Error()
}

// ParseError describes why a decoder rejected its input.
// It unwraps to both Err and the sentinel for Kind.
type ParseError struct {
	Err    error  // ErrInvalidFEN, ErrInvalidMove or ErrInvalidPGN
	Kind   Kind   // Rule that was broken
	Field  string // Field or section being decoded (e.g. "placement", "castling")
	Offset int    // Byte offset into the input, -1 if unknown
	Reason string // Human-readable reason naming the offending rank/field/character
}

// NewParseError builds a ParseError with an unknown offset.
func NewParseError(err error, kind Kind, field, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Err:    err,
		Kind:   kind,
		Field:  field,
		Offset: -1,
		Reason: fmt.Sprintf(format, args...),
	}
}

// At returns a copy of e positioned at offset.
func (e *ParseError) At(offset int) *ParseError {
	c := *e
	c.Offset = offset
	return &c
}

// Error returns a formatted error message with field and location context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}

	loc := e.Field
	if e.Offset >= 0 {
		if loc != "" {
			loc += " "
		}
		loc += fmt.Sprintf("at offset %d", e.Offset)
	}
	if loc != "" {
		parts = append(parts, loc)
	}

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	} else {
		parts = append(parts, e.Kind.String())
	}

	return strings.Join(parts, ": ")
}

// Unwrap returns the domain sentinel and the kind sentinel.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind.sentinel()}
	}
	return []error{e.Err, e.Kind.sentinel()}
}

// GameError wraps errors with game context, including source, game
// number, ply position, and move information. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type GameError struct {
	Err      error  // The underlying error
	GameNum  int    // 1-based game number in the file (0 if not applicable)
	PlyNum   int    // Ply number where error occurred (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
	File     string // Source file name (if known)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	if e.File != "" {
		parts = append(parts, e.File)
	}

	if e.GameNum > 0 {
		parts = append(parts, fmt.Sprintf("game %d", e.GameNum))
	}

	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}

	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")

	switch {
	case e.Err == nil:
		return context
	case context == "":
		return e.Err.Error()
	default:
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the GameError wrapper.
func (e *GameError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
