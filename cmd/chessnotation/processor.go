package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chessnotation-go/internal/chess"
	"github.com/lgbarn/chessnotation-go/internal/config"
	chesserrors "github.com/lgbarn/chessnotation-go/internal/errors"
	"github.com/lgbarn/chessnotation-go/internal/fen"
	"github.com/lgbarn/chessnotation-go/internal/hashing"
	"github.com/lgbarn/chessnotation-go/internal/input"
	"github.com/lgbarn/chessnotation-go/internal/output"
	"github.com/lgbarn/chessnotation-go/internal/san"
	"github.com/lgbarn/chessnotation-go/internal/worker"
)

// stdin is read by the pgn command when no files are named.
var stdin io.Reader = os.Stdin

// runFEN decodes each argument, or each stdin line, as a full FEN string
// and prints it back in canonical form. All inputs share one game mode, so
// an uninitialized Chess960 descriptor is fixed by the first FEN that
// decodes.
func runFEN(cfg *config.Config, args []string) int {
	args, err := argsOrStdin(cfg, args)
	if err != nil {
		cfg.Logf(1, "<stdin>: %v\n", err)
		return 1
	}
	if len(args) == 0 {
		cfg.Logf(1, "fen: no FEN strings given\n")
		return 1
	}
	mode, err := cfg.NewGameMode()
	if err != nil {
		cfg.Logf(1, "Error: %v\n", err)
		return 1
	}

	codec := cfg.Codec()
	failures := 0
	for _, arg := range args {
		pos := chess.NewPosition()
		if err := codec.Decode(mode, pos, arg); err != nil {
			cfg.Logf(1, "%q: %v\n", arg, err)
			failures++
			continue
		}
		text, err := fen.Encode(mode, pos)
		if err != nil {
			cfg.Logf(1, "%q: %v\n", arg, err)
			failures++
			continue
		}
		cfg.Logf(2, "%q: decoded as %s\n", arg, mode)

		fmt.Fprintln(cfg.OutputFile, text)
		if cfg.Output.RenderBoard {
			fmt.Fprintln(cfg.OutputFile, renderBoard(&pos.Board, positionCaption(pos)))
		}
	}
	return failures
}

// runPlacement decodes each argument as a lone placement field.
func runPlacement(cfg *config.Config, args []string) int {
	args, err := argsOrStdin(cfg, args)
	if err != nil {
		cfg.Logf(1, "<stdin>: %v\n", err)
		return 1
	}
	if len(args) == 0 {
		cfg.Logf(1, "placement: no placement fields given\n")
		return 1
	}

	codec := cfg.Codec()
	failures := 0
	for _, arg := range args {
		board := chess.NewBoard()
		if err := codec.DecodePlacement(board, arg); err != nil {
			cfg.Logf(1, "%q: %v\n", arg, err)
			failures++
			continue
		}
		fmt.Fprintln(cfg.OutputFile, fen.EncodePlacement(board))
		if cfg.Output.RenderBoard {
			fmt.Fprintln(cfg.OutputFile, renderBoard(board, ""))
		}
	}
	return failures
}

// runSAN decodes each argument as one SAN token and prints its fields.
// Characters after the token are reported, not rejected.
func runSAN(cfg *config.Config, args []string) int {
	args, err := argsOrStdin(cfg, args)
	if err != nil {
		cfg.Logf(1, "<stdin>: %v\n", err)
		return 1
	}
	if len(args) == 0 {
		cfg.Logf(1, "san: no move tokens given\n")
		return 1
	}

	failures := 0
	for _, arg := range args {
		m, n, err := san.Decode(arg)
		if err != nil {
			cfg.Logf(1, "%q: %v\n", arg, err)
			failures++
			continue
		}
		shape, _ := san.Production(arg)
		fmt.Fprintf(cfg.OutputFile, "%s\t%s\t%s\tconsumed=%d\t%s\n", arg, san.Format(m), shape, n, describeMove(m))
		if n < len(arg) {
			cfg.Logf(2, "%q: %q left after the move\n", arg, arg[n:])
		}
	}
	return failures
}

// describeMove lists the fields of m that the token set.
func describeMove(m chess.Move) string {
	parts := []string{"piece=" + m.Piece.String()}
	if m.FromCol != chess.NoCol {
		parts = append(parts, fmt.Sprintf("from-file=%c", m.FromCol))
	}
	if m.FromRank != chess.NoRank {
		parts = append(parts, fmt.Sprintf("from-rank=%c", m.FromRank))
	}
	switch {
	case m.QueensideCastle:
		parts = append(parts, "castle=queenside")
	case m.KingsideCastle:
		parts = append(parts, "castle=kingside")
	default:
		parts = append(parts, "to="+m.To.String())
	}
	if m.Capture {
		parts = append(parts, "capture")
	}
	if m.IsPromotion() {
		parts = append(parts, "promotion="+m.Promotion.String())
	}
	if m.Checkmate {
		parts = append(parts, "checkmate")
	} else if m.Check {
		parts = append(parts, "check")
	}
	return strings.Join(parts, " ")
}

// argsOrStdin returns args, or the non-blank lines of stdin when there
// are none.
func argsOrStdin(cfg *config.Config, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	reader, err := input.NewReader(&cfg.Input)
	if err != nil {
		return nil, err
	}
	text, err := reader.Read(stdin)
	if err != nil {
		return nil, err
	}
	return input.SplitLines(text), nil
}

// runPGN parses every game in the named files, or stdin, and writes the
// parsed documents in the configured output format.
func runPGN(cfg *config.Config, args []string) int {
	reader, err := input.NewReader(&cfg.Input)
	if err != nil {
		cfg.Logf(1, "Error: %v\n", err)
		return 1
	}

	items, failures := collectGames(cfg, reader, args)

	// Naming a duplicate file turns detection on without -D.
	var detector *hashing.ThreadSafeDuplicateDetector
	if cfg.Duplicate.Suppress || cfg.Duplicate.DuplicateFile != nil {
		detector = hashing.NewThreadSafeDuplicateDetector(0)
	}
	process := func(item worker.WorkItem) worker.ProcessResult {
		result := worker.ParseItem(item)
		if result.Err == nil && detector != nil {
			result.Duplicate = detector.CheckAndAdd(result.Document)
		}
		return result
	}
	results := worker.Run(items, process, worker.WithWorkers(cfg.NumWorkers()))

	writer, err := output.NewWriter(cfg.OutputFile, cfg)
	if err != nil {
		cfg.Logf(1, "Error: %v\n", err)
		return failures + 1
	}
	var duplicates *output.PGNWriter
	if cfg.Duplicate.DuplicateFile != nil {
		duplicates = output.NewPGNWriter(cfg.Duplicate.DuplicateFile, int(cfg.Output.LineLength))
	}

	gameNumbers := make(map[string]int)
	written, parseErrors := 0, 0
	for _, result := range results {
		gameNumbers[result.Source]++
		gameNum := gameNumbers[result.Source]

		switch {
		case result.Err != nil:
			cfg.Logf(1, "%v\n", &chesserrors.GameError{Err: result.Err, GameNum: gameNum, File: result.Source})
			parseErrors++
			continue
		case result.Duplicate:
			cfg.Logf(2, "%s: game %d: duplicate\n", result.Source, gameNum)
			if duplicates != nil {
				if err := duplicates.WriteDocument(result.Document); err != nil {
					cfg.Logf(1, "Error writing duplicate: %v\n", err)
					failures++
				}
			}
			continue
		}

		if err := writer.WriteDocument(result.Document); err != nil {
			cfg.Logf(1, "%s: game %d: %v\n", result.Source, gameNum, err)
			failures++
			continue
		}
		cfg.Logf(2, "%s: game %d: %d plies, %s\n", result.Source, gameNum, result.Document.Len(), result.Document.Termination())
		written++
	}

	if err := writer.Close(); err != nil {
		cfg.Logf(1, "Error: %v\n", err)
		failures++
	}

	if detector != nil {
		_, duplicateCount := detector.Counts()
		cfg.Logf(1, "%d game(s) output, %d duplicate(s), %d error(s) out of %d.\n", written, duplicateCount, parseErrors, len(results))
	} else {
		cfg.Logf(1, "%d game(s) output, %d error(s) out of %d.\n", written, parseErrors, len(results))
	}
	return failures + parseErrors
}

// collectGames reads every source and splits it into work items.
func collectGames(cfg *config.Config, reader *input.Reader, paths []string) ([]worker.WorkItem, int) {
	var items []worker.WorkItem
	failures := 0

	add := func(source, text string) {
		games := input.SplitGames(text)
		cfg.Logf(2, "%s: %d game(s)\n", source, len(games))
		for _, game := range games {
			items = append(items, worker.WorkItem{Text: game, Source: source, Index: len(items)})
		}
	}

	if len(paths) == 0 {
		text, err := reader.Read(stdin)
		if err != nil {
			cfg.Logf(1, "<stdin>: %v\n", err)
			return nil, 1
		}
		add("<stdin>", text)
		return items, 0
	}

	for _, path := range paths {
		text, err := reader.ReadFile(path)
		if err != nil {
			cfg.Logf(1, "%v\n", err)
			failures++
			continue
		}
		add(path, text)
	}
	return items, failures
}
