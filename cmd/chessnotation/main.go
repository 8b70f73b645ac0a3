// chessnotation decodes and re-encodes FEN positions, SAN move tokens and
// PGN game transcripts.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessnotation-go/internal/config"
)

const programVersion = "0.1.0"

// command handles one sub-command. It returns the number of inputs that
// failed to decode.
type command func(cfg *config.Config, args []string) int

var commands = map[string]command{
	"fen":       runFEN,
	"placement": runPlacement,
	"san":       runSAN,
	"pgn":       runPGN,
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessnotation version %s\n", programVersion)
		os.Exit(0)
	}

	if flag.NArg() == 0 {
		usage()
		os.Exit(1)
	}
	run, ok := commands[flag.Arg(0)]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command %q\n\n", flag.Arg(0))
		usage()
		os.Exit(1)
	}

	cfg := loadConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	closeOutput := setupOutputFile(cfg)
	closeDuplicates := setupDuplicateFile(cfg)

	failures := run(cfg, flag.Args()[1:])

	closeDuplicates()
	closeOutput()

	if failures > 0 {
		os.Exit(1)
	}
}

// loadConfig returns the defaults, or the -config file when given.
func loadConfig() *config.Config {
	if *configFile == "" {
		return config.NewConfig()
	}
	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// setupOutputFile points text and JSON output at the configured file.
// Parquet output opens its own file.
func setupOutputFile(cfg *config.Config) func() {
	if cfg.Output.Filename == "" || cfg.Output.Format == config.ParquetFormat {
		return func() {}
	}
	return createFile(cfg.Output.Filename, "output", func(w io.Writer) { cfg.OutputFile = w })
}

// setupDuplicateFile configures the duplicate file based on command-line flags.
func setupDuplicateFile(cfg *config.Config) func() {
	if *duplicateFile == "" {
		return func() {}
	}
	return createFile(*duplicateFile, "duplicate", func(w io.Writer) { cfg.Duplicate.DuplicateFile = w })
}

// createFile creates path, hands it to assign and returns its closer.
func createFile(path, what string, assign func(io.Writer)) func() {
	file, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s file %s: %v\n", what, path, err)
		os.Exit(1)
	}
	assign(file)
	return func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing %s file %s: %v\n", what, path, err)
			os.Exit(1)
		}
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessnotation [options] <command> [arguments...]\n\n")
	fmt.Fprintf(os.Stderr, "Decode and re-encode chess notation.\n\n")
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  fen <FEN>...          Decode FEN strings and print them in canonical form\n")
	fmt.Fprintf(os.Stderr, "  placement <field>...  Decode lone placement fields\n")
	fmt.Fprintf(os.Stderr, "  san <token>...        Decode SAN move tokens\n")
	fmt.Fprintf(os.Stderr, "  pgn [file...]         Parse PGN files and export them\n\n")
	fmt.Fprintf(os.Stderr, "Commands read standard input, one item per line for fen, placement and san,\n")
	fmt.Fprintf(os.Stderr, "when no arguments are given.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
