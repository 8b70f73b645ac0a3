package config

import (
	"fmt"

	"github.com/lgbarn/chessnotation-go/internal/errors"
)

// OutputFormat names an export format for parsed documents.
type OutputFormat string

const (
	TextFormat    OutputFormat = "text"    // Canonical PGN text
	JSONFormat    OutputFormat = "json"    // One JSON array of documents
	JSONLFormat   OutputFormat = "jsonl"   // One JSON object per line
	ParquetFormat OutputFormat = "parquet" // One row per ply
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format is the export format for the pgn command
	Format OutputFormat `yaml:"output_format"`

	// LineLength is the movetext wrap width for text output; 0 disables wrapping
	LineLength uint `yaml:"line_length"`

	// RenderBoard draws decoded positions as a board
	RenderBoard bool `yaml:"render_board"`

	// Filename receives the export; empty means standard output
	Filename string `yaml:"output_file"`
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:     TextFormat,
		LineLength: 80,
	}
}

// Validate checks the output format and its requirements.
func (o *OutputConfig) Validate() error {
	switch o.Format {
	case TextFormat, JSONFormat, JSONLFormat:
	case ParquetFormat:
		if o.Filename == "" {
			return fmt.Errorf("parquet output needs an output file: %w", errors.ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("unknown output format %q: %w", o.Format, errors.ErrInvalidConfig)
	}
	return nil
}
