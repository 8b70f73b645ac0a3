package input

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dsnet/compress/bzip2"

	"github.com/lgbarn/chessnotation-go/internal/config"
	chesserrors "github.com/lgbarn/chessnotation-go/internal/errors"
	"github.com/lgbarn/chessnotation-go/internal/testutil"
)

func newReader(t *testing.T, encoding, size string) *Reader {
	t.Helper()
	r, err := NewReader(&config.InputConfig{Encoding: encoding, MaxSize: size})
	testutil.AssertNoError(t, err)
	return r
}

func TestReadEncodings(t *testing.T) {
	// "Müller" in each encoding
	latin1 := []byte{'M', 0xFC, 'l', 'l', 'e', 'r'}
	utf8Text := []byte("Müller")

	tests := []struct {
		name     string
		encoding string
		data     []byte
		want     string
	}{
		{"auto utf-8", config.EncodingAuto, utf8Text, "Müller"},
		{"auto legacy", config.EncodingAuto, latin1, "Müller"},
		{"auto bom", config.EncodingAuto, append([]byte{0xEF, 0xBB, 0xBF}, utf8Text...), "Müller"},
		{"latin1", config.EncodingLatin1, latin1, "Müller"},
		{"windows-1252 quotes", config.EncodingWindows1252, []byte{0x93, 'x', 0x94}, "“x”"},
		{"utf-8", config.EncodingUTF8, utf8Text, "Müller"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newReader(t, tt.encoding, "1MB").Read(bytes.NewReader(tt.data))
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestReadRejectsInvalidUTF8(t *testing.T) {
	_, err := newReader(t, config.EncodingUTF8, "1MB").Read(bytes.NewReader([]byte{0xFF, 0xFE}))
	if !errors.Is(err, chesserrors.ErrInvalidInput) {
		t.Errorf("Read() error = %v; want ErrInvalidInput", err)
	}
}

func TestReadSizeLimit(t *testing.T) {
	r := newReader(t, config.EncodingAuto, "1KB")

	_, err := r.Read(strings.NewReader(strings.Repeat("x", 1024)))
	testutil.AssertNoError(t, err, "exactly at the limit")

	_, err = r.Read(strings.NewReader(strings.Repeat("x", 1025)))
	if !errors.Is(err, chesserrors.ErrInvalidInput) {
		t.Errorf("Read() error = %v; want ErrInvalidInput", err)
	}
}

func TestReadBzip2(t *testing.T) {
	var buf bytes.Buffer
	w, err := bzip2.NewWriter(&buf, nil)
	testutil.AssertNoError(t, err)
	_, err = w.Write([]byte(testutil.ScholarsMate))
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, w.Close())

	path := filepath.Join(t.TempDir(), "games.pgn.bz2")
	testutil.AssertNoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	got, err := newReader(t, config.EncodingAuto, "1MB").ReadFile(path)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, testutil.ScholarsMate)
}

func TestReadFileMissing(t *testing.T) {
	_, err := newReader(t, config.EncodingAuto, "1MB").ReadFile(filepath.Join(t.TempDir(), "none.pgn"))
	testutil.AssertError(t, err)
}

func TestNewReaderInvalidConfig(t *testing.T) {
	_, err := NewReader(&config.InputConfig{Encoding: "koi8", MaxSize: "1MB"})
	if !errors.Is(err, chesserrors.ErrInvalidConfig) {
		t.Errorf("NewReader() error = %v; want ErrInvalidConfig", err)
	}
}
