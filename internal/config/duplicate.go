package config

import "io"

// DuplicateConfig holds settings for duplicate game detection.
type DuplicateConfig struct {
	// Suppress drops games whose movetext and start position were already seen
	Suppress bool `yaml:"suppress_duplicates"`

	// DuplicateFile receives suppressed games when set
	DuplicateFile io.Writer `yaml:"-"`
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}
