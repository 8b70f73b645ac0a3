package config

import (
	"fmt"

	"github.com/inhies/go-bytesize"

	"github.com/lgbarn/chessnotation-go/internal/errors"
)

// Input encodings.
const (
	EncodingAuto        = "auto"
	EncodingUTF8        = "utf-8"
	EncodingLatin1      = "latin1"
	EncodingWindows1252 = "windows-1252"
)

// InputConfig holds settings for reading input files.
type InputConfig struct {
	// Encoding of input text; auto falls back to Windows-1252 for invalid UTF-8
	Encoding string `yaml:"input_encoding"`

	// MaxSize caps the decompressed size of one input, such as "64MB"
	MaxSize string `yaml:"max_input_size"`
}

// NewInputConfig creates an InputConfig with default values.
func NewInputConfig() *InputConfig {
	return &InputConfig{
		Encoding: EncodingAuto,
		MaxSize:  "256MB",
	}
}

// MaxBytes returns MaxSize as a byte count.
func (i *InputConfig) MaxBytes() (int64, error) {
	size, err := bytesize.Parse(i.MaxSize)
	if err != nil {
		return 0, fmt.Errorf("max input size %q: %v: %w", i.MaxSize, err, errors.ErrInvalidConfig)
	}
	return int64(size), nil
}

// Validate checks the encoding name and size limit.
func (i *InputConfig) Validate() error {
	switch i.Encoding {
	case EncodingAuto, EncodingUTF8, EncodingLatin1, EncodingWindows1252:
	default:
		return fmt.Errorf("unknown input encoding %q: %w", i.Encoding, errors.ErrInvalidConfig)
	}
	size, err := i.MaxBytes()
	if err != nil {
		return err
	}
	if size <= 0 {
		return fmt.Errorf("max input size %q must be positive: %w", i.MaxSize, errors.ErrInvalidConfig)
	}
	return nil
}
