// Package config provides configuration for the chessnotation tools.
package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chessnotation-go/internal/chess"
	"github.com/lgbarn/chessnotation-go/internal/errors"
	"github.com/lgbarn/chessnotation-go/internal/fen"
)

// Game mode names accepted in configuration files and flags.
const (
	ModeRegular  = "regular"
	ModeChess960 = "chess960"
)

// Config holds all program configuration.
// Sub-configs are inlined so the YAML file stays flat.
type Config struct {
	// 0=nothing, 1=per-file summary, 2=running commentary
	Verbosity int `yaml:"verbosity"`

	// Game mode used to decode FEN strings
	GameMode      string `yaml:"game_mode"`
	Chess960Rooks string `yaml:"chess960_rooks"`
	HalfmoveLimit uint   `yaml:"halfmove_limit"`

	// Number of parse workers; 0 means one per CPU
	Workers int `yaml:"workers"`

	Input     InputConfig     `yaml:",inline"`
	Output    OutputConfig    `yaml:",inline"`
	Duplicate DuplicateConfig `yaml:",inline"`

	// Output streams
	OutputFile io.Writer `yaml:"-"`
	LogFile    io.Writer `yaml:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:     1,
		GameMode:      ModeRegular,
		HalfmoveLimit: fen.DefaultHalfmoveLimit,
		Input:         *NewInputConfig(),
		Output:        *NewOutputConfig(),
		Duplicate:     *NewDuplicateConfig(),
		OutputFile:    os.Stdout,
		LogFile:       os.Stderr,
	}
}

// Load reads a YAML configuration file. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}

	cfg := NewConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config %s: %v: %w", path, err, errors.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return errors.Wrap(err, "encoding config")
	}
	return enc.Close()
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d out of range 0-2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	switch c.GameMode {
	case ModeRegular:
		if c.Chess960Rooks != "" {
			return fmt.Errorf("chess960 rooks %q set in regular mode: %w", c.Chess960Rooks, errors.ErrInvalidConfig)
		}
	case ModeChess960:
		if c.Chess960Rooks != "" {
			if _, _, err := parseRooks(c.Chess960Rooks); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unknown game mode %q: %w", c.GameMode, errors.ErrInvalidConfig)
	}
	if c.HalfmoveLimit == 0 {
		return fmt.Errorf("half-move limit must be positive: %w", errors.ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers (%d) must not be negative: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if err := c.Input.Validate(); err != nil {
		return err
	}
	return c.Output.Validate()
}

// NewGameMode builds the game mode descriptor for FEN decoding. Chess960
// without rook files yields an uninitialized descriptor that the first
// decoded FEN fills in.
func (c *Config) NewGameMode() (chess.GameMode, error) {
	switch c.GameMode {
	case ModeRegular:
		return chess.Regular, nil
	case ModeChess960:
		if c.Chess960Rooks == "" {
			return chess.NewUninitializedChess960(), nil
		}
		q, k, err := parseRooks(c.Chess960Rooks)
		if err != nil {
			return nil, err
		}
		return chess.NewChess960(q, k)
	default:
		return nil, fmt.Errorf("unknown game mode %q: %w", c.GameMode, errors.ErrInvalidConfig)
	}
}

// Codec returns a FEN codec honouring the configured half-move limit.
func (c *Config) Codec() *fen.Codec {
	return fen.NewCodec(fen.WithHalfmoveLimit(c.HalfmoveLimit))
}

// NumWorkers returns the effective worker count.
func (c *Config) NumWorkers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}

// Logf writes a diagnostic when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}

// parseRooks decodes a two-letter rook file pair such as "bg",
// queenside first.
func parseRooks(s string) (queenside, kingside chess.Col, err error) {
	if len(s) != 2 {
		return chess.NoCol, chess.NoCol, fmt.Errorf("chess960 rooks %q must be two files: %w", s, errors.ErrInvalidConfig)
	}
	queenside, kingside = chess.Col(s[0]), chess.Col(s[1])
	if !queenside.Valid() || !kingside.Valid() || queenside >= kingside {
		return chess.NoCol, chess.NoCol, fmt.Errorf("chess960 rooks %q must be two ascending files a-h: %w", s, errors.ErrInvalidConfig)
	}
	return queenside, kingside, nil
}
