package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithGameMode sets the game mode and, for Chess960, the rook files.
func (b *ConfigBuilder) WithGameMode(mode, rooks string) *ConfigBuilder {
	b.cfg.GameMode = mode
	b.cfg.Chess960Rooks = rooks
	return b
}

// WithHalfmoveLimit sets the largest accepted half-move clock.
func (b *ConfigBuilder) WithHalfmoveLimit(limit uint) *ConfigBuilder {
	b.cfg.HalfmoveLimit = limit
	return b
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithLineLength sets the maximum movetext line length.
func (b *ConfigBuilder) WithLineLength(length uint) *ConfigBuilder {
	b.cfg.Output.LineLength = length
	return b
}

// WithBoard enables board rendering.
func (b *ConfigBuilder) WithBoard(enabled bool) *ConfigBuilder {
	b.cfg.Output.RenderBoard = enabled
	return b
}

// WithDuplicateSuppression enables duplicate suppression.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool) *ConfigBuilder {
	b.cfg.Duplicate.Suppress = enabled
	return b
}

// WithEncoding sets the input encoding.
func (b *ConfigBuilder) WithEncoding(encoding string) *ConfigBuilder {
	b.cfg.Input.Encoding = encoding
	return b
}

// WithMaxInputSize sets the input size limit, such as "64MB".
func (b *ConfigBuilder) WithMaxInputSize(size string) *ConfigBuilder {
	b.cfg.Input.MaxSize = size
	return b
}

// WithWorkers sets the number of parse workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostic writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
