package pgn

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessnotation-go/internal/chess"
	chesserrors "github.com/lgbarn/chessnotation-go/internal/errors"
)

// Tags is an insertion-ordered set of PGN tag pairs.
type Tags struct {
	names  []string
	values map[string]string
}

// NewTags creates an empty tag set.
func NewTags() *Tags {
	return &Tags{values: make(map[string]string)}
}

// Add appends a tag pair. Empty and duplicate names are rejected.
func (t *Tags) Add(name, value string) error {
	if name == "" {
		return fmt.Errorf("%w: empty tag name", chesserrors.ErrInvalidInput)
	}
	if _, ok := t.values[name]; ok {
		return fmt.Errorf("%w: duplicate tag %q", chesserrors.ErrInvalidInput, name)
	}
	t.names = append(t.names, name)
	t.values[name] = value
	return nil
}

// Get returns the value of a tag and whether it is present.
func (t *Tags) Get(name string) (string, bool) {
	v, ok := t.values[name]
	return v, ok
}

// Value returns a tag value, or empty string if not present.
func (t *Tags) Value(name string) string {
	return t.values[name]
}

// Names returns the tag names in the order they were added.
func (t *Tags) Names() []string {
	names := make([]string, len(t.names))
	copy(names, t.names)
	return names
}

// Len returns the number of tags.
func (t *Tags) Len() int {
	return len(t.names)
}

// Map returns a copy of the tags as a plain map.
func (t *Tags) Map() map[string]string {
	m := make(map[string]string, len(t.values))
	for k, v := range t.values {
		m[k] = v
	}
	return m
}

// HasSevenTagRoster reports whether all seven required PGN tags are present.
func (t *Tags) HasSevenTagRoster() bool {
	for _, name := range chess.SevenTagRoster {
		if _, ok := t.values[name]; !ok {
			return false
		}
	}
	return true
}

// parseTagLine splits `[Name "value"]` into name and value.
// offset is the position of the line in the document, for error reporting.
func parseTagLine(line string, offset int) (name, value string, err error) {
	if line[0] != '[' {
		return "", "", pgnError(chesserrors.KindStructure, fieldTags, offset, "tag has invalid start: '%c'", line[0])
	}

	sep := strings.Index(line, ` "`)
	if sep == -1 {
		return "", "", pgnError(chesserrors.KindStructure, fieldTags, offset, "missing space with quotation mark in tag")
	}

	raw := line[sep+2:]
	if len(raw) < 2 || !strings.HasSuffix(raw, `"]`) {
		return "", "", pgnError(chesserrors.KindStructure, fieldTags, offset+len(line), "tag has invalid end")
	}

	name = line[1:sep]
	if name == "" {
		return "", "", pgnError(chesserrors.KindStructure, fieldTags, offset+1, "empty tag name")
	}
	return name, unescapeTagValue(raw[:len(raw)-2]), nil
}

func unescapeTagValue(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && (s[i+1] == '"' || s[i+1] == '\\') {
			i++
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

func escapeTagValue(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\r\n", " ", "\n", " ", "\r", " ")
	return r.Replace(s)
}
