// Package output exports parsed PGN documents as PGN text, JSON or Parquet.
package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chessnotation-go/internal/config"
	"github.com/lgbarn/chessnotation-go/internal/pgn"
)

// GameWriter is the interface for writing documents to output.
type GameWriter interface {
	// WriteDocument writes a single document to the output.
	WriteDocument(doc *pgn.Document) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer for the configured output format. Parquet
// output goes to cfg.Output.Filename; the other formats go to w.
func NewWriter(w io.Writer, cfg *config.Config) (GameWriter, error) {
	switch cfg.Output.Format {
	case config.JSONFormat:
		return NewJSONWriter(w), nil
	case config.JSONLFormat:
		return NewJSONWriterSingle(w), nil
	case config.ParquetFormat:
		pw, err := NewParquetWriter(cfg.Output.Filename, int64(cfg.NumWorkers()))
		if err != nil {
			return nil, err
		}
		return pw, nil
	default:
		return NewPGNWriter(w, int(cfg.Output.LineLength)), nil
	}
}

// PGNWriter writes documents as canonical PGN text separated by blank lines.
type PGNWriter struct {
	w          io.Writer
	lineLength int
}

// NewPGNWriter creates a new PGN writer wrapping movetext at lineLength.
func NewPGNWriter(w io.Writer, lineLength int) *PGNWriter {
	return &PGNWriter{
		w:          w,
		lineLength: lineLength,
	}
}

// WriteDocument writes a document in PGN format.
func (pw *PGNWriter) WriteDocument(doc *pgn.Document) error {
	_, err := io.WriteString(pw.w, pgn.FormatWidth(doc, pw.lineLength)+"\n\n")
	return err
}

// Flush flushes the PGN writer (no-op for PGN as it writes immediately).
func (pw *PGNWriter) Flush() error {
	return nil
}

// Close closes the PGN writer.
func (pw *PGNWriter) Close() error {
	return nil
}

// JSONWriter writes documents in JSON format.
// It buffers documents and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	games  []*JSONGame
	single bool // If true, write each document immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches documents and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle creates a JSON writer that writes each document
// immediately as one compact line.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

// WriteDocument buffers a document for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteDocument(doc *pgn.Document) error {
	jsonGame := DocumentToJSON(doc)
	if jw.single {
		return jw.encode(jsonGame)
	}
	jw.games = append(jw.games, jsonGame)
	return nil
}

// Flush writes all buffered documents as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.games) == 0 {
		return nil
	}
	err := jw.encode(&JSONOutput{Games: jw.games})
	jw.games = jw.games[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

func (jw *JSONWriter) encode(v interface{}) error {
	enc := json.NewEncoder(jw.w)
	if !jw.single {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
