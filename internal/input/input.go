// Package input reads PGN and FEN text from files and streams.
//
// Inputs may be bzip2 archives and may use a legacy single-byte encoding;
// both are detected and undone before the text reaches the parsers.
package input

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/dsnet/compress/bzip2"
	"github.com/inhies/go-bytesize"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/lgbarn/chessnotation-go/internal/config"
	"github.com/lgbarn/chessnotation-go/internal/errors"
)

var (
	bzip2Magic = []byte("BZh")
	utf8BOM    = []byte{0xEF, 0xBB, 0xBF}
)

// Reader turns raw input bytes into text.
type Reader struct {
	encoding string
	maxBytes int64
}

// NewReader creates a Reader from the input settings.
func NewReader(cfg *config.InputConfig) (*Reader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	maxBytes, err := cfg.MaxBytes()
	if err != nil {
		return nil, err
	}
	return &Reader{encoding: cfg.Encoding, maxBytes: maxBytes}, nil
}

// ReadFile reads and decodes the named file.
func (r *Reader) ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	text, err := r.Read(f)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", path)
	}
	return text, nil
}

// Read decompresses, size-checks and decodes a stream.
func (r *Reader) Read(src io.Reader) (string, error) {
	br := bufio.NewReader(src)
	var in io.Reader = br
	if magic, _ := br.Peek(len(bzip2Magic)); bytes.Equal(magic, bzip2Magic) {
		bz, err := bzip2.NewReader(br, nil)
		if err != nil {
			return "", err
		}
		defer bz.Close()
		in = bz
	}

	data, err := io.ReadAll(io.LimitReader(in, r.maxBytes+1))
	if err != nil {
		return "", err
	}
	if int64(len(data)) > r.maxBytes {
		return "", fmt.Errorf("input larger than %s: %w", bytesize.New(float64(r.maxBytes)), errors.ErrInvalidInput)
	}
	return r.decode(data)
}

func (r *Reader) decode(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	var dec *encoding.Decoder
	switch r.encoding {
	case config.EncodingUTF8:
		if !utf8.Valid(data) {
			return "", fmt.Errorf("input is not valid UTF-8: %w", errors.ErrInvalidInput)
		}
		return string(data), nil
	case config.EncodingLatin1:
		dec = charmap.ISO8859_1.NewDecoder()
	case config.EncodingWindows1252:
		dec = charmap.Windows1252.NewDecoder()
	default:
		if utf8.Valid(data) {
			return string(data), nil
		}
		dec = charmap.Windows1252.NewDecoder()
	}

	decoded, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), dec))
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
