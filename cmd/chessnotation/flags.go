// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessnotation-go/internal/config"
	"github.com/lgbarn/chessnotation-go/internal/fen"
)

var (
	// Configuration file
	configFile = flag.String("config", "", "YAML configuration file; flags override its values")

	// Game mode
	gameMode      = flag.String("mode", config.ModeRegular, "Game mode: regular or chess960")
	chess960Rooks = flag.String("rooks", "", "Chess960 rook files, queenside first (e.g. 'bg'); empty bootstraps from the first FEN")
	halfmoveLimit = flag.Uint("halfmove-limit", fen.DefaultHalfmoveLimit, "Largest accepted half-move clock")

	// Output options
	outputFormat = flag.String("format", string(config.TextFormat), "Output format for pgn: text, json, jsonl, parquet")
	outputFile   = flag.String("o", "", "Output file (default: stdout; required for parquet)")
	lineLength   = flag.Uint("w", 80, "Maximum movetext line length (0 = no wrapping)")
	boardFlag    = flag.Bool("board", false, "Draw decoded positions as a board")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress duplicate games")
	duplicateFile      = flag.String("d", "", "Output duplicates to this file")

	// Input options
	encoding     = flag.String("encoding", config.EncodingAuto, "Input encoding: auto, utf-8, latin1, windows-1252")
	maxInputSize = flag.String("max-size", "256MB", "Largest accepted input file (e.g. '64MB')")

	// Other options
	verbose = flag.Bool("v", false, "Report every game")
	quiet   = flag.Bool("q", false, "Silent mode (no summaries or errors)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("workers", 0, "Number of parse workers (0 = auto-detect based on CPU cores)")
)

// applyFlags copies explicitly set flags onto cfg, so values loaded from
// a configuration file survive unless overridden.
func applyFlags(cfg *config.Config) {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	applyGameModeFlags(cfg, set)
	applyOutputFlags(cfg, set)
	applyInputFlags(cfg, set)

	if set["D"] {
		cfg.Duplicate.Suppress = *suppressDuplicates
	}
	if set["workers"] {
		cfg.Workers = *workers
	}

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
}

// applyGameModeFlags configures FEN decoding.
func applyGameModeFlags(cfg *config.Config, set map[string]bool) {
	if set["mode"] {
		cfg.GameMode = *gameMode
	}
	if set["rooks"] {
		cfg.Chess960Rooks = *chess960Rooks
	}
	if set["halfmove-limit"] {
		cfg.HalfmoveLimit = *halfmoveLimit
	}
}

// applyOutputFlags configures output formatting.
func applyOutputFlags(cfg *config.Config, set map[string]bool) {
	if set["format"] {
		cfg.Output.Format = config.OutputFormat(*outputFormat)
	}
	if set["o"] {
		cfg.Output.Filename = *outputFile
	}
	if set["w"] {
		cfg.Output.LineLength = *lineLength
	}
	if set["board"] {
		cfg.Output.RenderBoard = *boardFlag
	}
}

// applyInputFlags configures input decoding.
func applyInputFlags(cfg *config.Config, set map[string]bool) {
	if set["encoding"] {
		cfg.Input.Encoding = *encoding
	}
	if set["max-size"] {
		cfg.Input.MaxSize = *maxInputSize
	}
}
