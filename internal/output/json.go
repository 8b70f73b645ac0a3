package output

import (
	"github.com/google/uuid"

	"github.com/lgbarn/chessnotation-go/internal/chess"
	"github.com/lgbarn/chessnotation-go/internal/pgn"
	"github.com/lgbarn/chessnotation-go/internal/san"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	ID       string            `json:"id"`
	Tags     map[string]string `json:"tags"`
	TagOrder []string          `json:"tagOrder"`
	Moves    []JSONMove        `json:"moves"`
	Result   string            `json:"result"`
	PlyCount int               `json:"plyCount"`
}

// JSONMove represents a ply in JSON format.
type JSONMove struct {
	MoveNumber int               `json:"moveNumber"`
	Color      string            `json:"color"` // "white" or "black"
	SAN        string            `json:"san"`
	Piece      string            `json:"piece"`
	FromFile   string            `json:"fromFile,omitempty"`
	FromRank   string            `json:"fromRank,omitempty"`
	To         string            `json:"to,omitempty"`
	Castle     string            `json:"castle,omitempty"` // "kingside" or "queenside"
	Capture    bool              `json:"capture,omitempty"`
	Check      bool              `json:"check,omitempty"`
	Checkmate  bool              `json:"checkmate,omitempty"`
	Promotion  string            `json:"promotion,omitempty"`
	NAG        int               `json:"nag,omitempty"`
	NAGSymbol  string            `json:"nagSymbol,omitempty"`
	NAGName    string            `json:"nagName,omitempty"`
	Comment    *string           `json:"comment,omitempty"`
	Commands   map[string]string `json:"commands,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// DocumentToJSON converts a parsed document to JSON form with a fresh id.
func DocumentToJSON(doc *pgn.Document) *JSONGame {
	jg := &JSONGame{
		ID:       uuid.NewString(),
		Tags:     doc.Tags().Map(),
		TagOrder: doc.Tags().Names(),
		Moves:    make([]JSONMove, doc.Len()),
		Result:   doc.Termination().String(),
		PlyCount: doc.Len(),
	}
	for i := 0; i < doc.Len(); i++ {
		jg.Moves[i] = plyToJSON(i, doc.Ply(i))
	}
	return jg
}

func plyToJSON(i int, ply pgn.Ply) JSONMove {
	number, colour := pgn.MoveNumber(i)
	m := ply.Move
	jm := JSONMove{
		MoveNumber: number,
		Color:      colorName(colour),
		SAN:        san.Format(m),
		Piece:      pieceTypeName(m.Piece),
		Capture:    m.Capture,
		Check:      m.Check,
		Checkmate:  m.Checkmate,
		Promotion:  pieceTypeName(m.Promotion),
		Commands:   ply.Commands,
	}

	switch {
	case m.KingsideCastle:
		jm.Castle = "kingside"
	case m.QueensideCastle:
		jm.Castle = "queenside"
	default:
		jm.To = m.To.String()
	}
	if m.FromCol != chess.NoCol {
		jm.FromFile = string(rune(m.FromCol))
	}
	if m.FromRank != chess.NoRank {
		jm.FromRank = string(rune(m.FromRank))
	}

	if ply.NAG != chess.NullNAG {
		jm.NAG = int(ply.NAG)
		jm.NAGSymbol = ply.NAG.Symbol()
		jm.NAGName = ply.NAG.Description()
	}
	if ply.Comment != nil {
		text := ply.Comment.Text
		jm.Comment = &text
	}
	return jm
}

func colorName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

// pieceTypeName returns the piece type as a string.
func pieceTypeName(p chess.Piece) string {
	switch p {
	case chess.Pawn:
		return "pawn"
	case chess.Knight:
		return "knight"
	case chess.Bishop:
		return "bishop"
	case chess.Rook:
		return "rook"
	case chess.Queen:
		return "queen"
	case chess.King:
		return "king"
	default:
		return ""
	}
}
