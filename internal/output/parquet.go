package output

import (
	"github.com/google/uuid"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/lgbarn/chessnotation-go/internal/chess"
	"github.com/lgbarn/chessnotation-go/internal/errors"
	"github.com/lgbarn/chessnotation-go/internal/pgn"
	"github.com/lgbarn/chessnotation-go/internal/san"
)

// PlyRecord is one row of the Parquet export: a single ply together with
// the identifying tags of its game.
type PlyRecord struct {
	GameID     string `parquet:"name=game_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Event      string `parquet:"name=event, type=BYTE_ARRAY, convertedtype=UTF8"`
	White      string `parquet:"name=white, type=BYTE_ARRAY, convertedtype=UTF8"`
	Black      string `parquet:"name=black, type=BYTE_ARRAY, convertedtype=UTF8"`
	Result     string `parquet:"name=result, type=BYTE_ARRAY, convertedtype=UTF8"`
	Ply        int32  `parquet:"name=ply, type=INT32"`
	MoveNumber int32  `parquet:"name=move_number, type=INT32"`
	Color      string `parquet:"name=color, type=BYTE_ARRAY, convertedtype=UTF8"`
	SAN        string `parquet:"name=san, type=BYTE_ARRAY, convertedtype=UTF8"`
	Piece      string `parquet:"name=piece, type=BYTE_ARRAY, convertedtype=UTF8"`
	To         string `parquet:"name=to, type=BYTE_ARRAY, convertedtype=UTF8"`
	Capture    bool   `parquet:"name=capture, type=BOOLEAN"`
	Check      bool   `parquet:"name=check, type=BOOLEAN"`
	Checkmate  bool   `parquet:"name=checkmate, type=BOOLEAN"`
	Promotion  string `parquet:"name=promotion, type=BYTE_ARRAY, convertedtype=UTF8"`
	NAG        int32  `parquet:"name=nag, type=INT32"`
	Comment    string `parquet:"name=comment, type=BYTE_ARRAY, convertedtype=UTF8"`
	Clock      string `parquet:"name=clock, type=BYTE_ARRAY, convertedtype=UTF8"`
	Eval       string `parquet:"name=eval, type=BYTE_ARRAY, convertedtype=UTF8"`
}

// PlyRecords flattens a document into Parquet rows sharing gameID.
func PlyRecords(gameID string, doc *pgn.Document) []PlyRecord {
	tags := doc.Tags()
	records := make([]PlyRecord, doc.Len())
	for i := range records {
		ply := doc.Ply(i)
		number, colour := pgn.MoveNumber(i)
		r := PlyRecord{
			GameID:     gameID,
			Event:      tags.Value(chess.EventTag),
			White:      tags.Value(chess.WhiteTag),
			Black:      tags.Value(chess.BlackTag),
			Result:     doc.Termination().String(),
			Ply:        int32(i + 1),
			MoveNumber: int32(number),
			Color:      colorName(colour),
			SAN:        san.Format(ply.Move),
			Piece:      pieceTypeName(ply.Move.Piece),
			Capture:    ply.Move.Capture,
			Check:      ply.Move.Check,
			Checkmate:  ply.Move.Checkmate,
			Promotion:  pieceTypeName(ply.Move.Promotion),
			NAG:        int32(ply.NAG),
			Clock:      ply.Commands["clk"],
			Eval:       ply.Commands["eval"],
		}
		if ply.Move.HasDestination() {
			r.To = ply.Move.To.String()
		}
		if ply.Comment != nil {
			r.Comment = ply.Comment.Text
		}
		records[i] = r
	}
	return records
}

// ParquetWriter writes one row per ply to a Parquet file.
type ParquetWriter struct {
	file source.ParquetFile
	pw   *writer.ParquetWriter
}

// NewParquetWriter creates the file at path and prepares the writer.
func NewParquetWriter(path string, parallel int64) (*ParquetWriter, error) {
	fileWriter, err := local.NewLocalFileWriter(path)
	if err != nil {
		return nil, errors.Wrapf(err, "creating %s", path)
	}

	parquetWriter, err := writer.NewParquetWriter(fileWriter, new(PlyRecord), parallel)
	if err != nil {
		fileWriter.Close()
		return nil, errors.Wrap(err, "creating parquet writer")
	}
	parquetWriter.CompressionType = parquet.CompressionCodec_SNAPPY

	return &ParquetWriter{file: fileWriter, pw: parquetWriter}, nil
}

// WriteDocument writes every ply of doc under a fresh game id.
func (w *ParquetWriter) WriteDocument(doc *pgn.Document) error {
	for _, r := range PlyRecords(uuid.NewString(), doc) {
		if err := w.pw.Write(r); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes buffered rows as a row group.
func (w *ParquetWriter) Flush() error {
	return w.pw.Flush(true)
}

// Close writes the footer and closes the file.
func (w *ParquetWriter) Close() error {
	if err := w.pw.WriteStop(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}
