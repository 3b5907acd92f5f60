// Package descio loads automaton descriptions from files and streams.
//
// Description files produced by other tools often arrive compressed or in a
// legacy character encoding. The readers here pick a decompressor from the
// file extension (gzip, zstd, brotli, lz4) and normalize the text to UTF-8
// before it reaches the parser.
package descio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/amp-labs/amp-automata/closer"
	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
)

// ErrUndecodableText indicates that the description bytes could not be
// converted to valid UTF-8, with or without charset detection.
var ErrUndecodableText = errors.New("description text is not decodable")

// ReadFile reads an automaton description from a file, decompressing it
// according to the file extension and normalizing the text to UTF-8.
// Surrounding whitespace is trimmed so that trailing newlines do not leak
// into the last transition record.
func ReadFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open description file: %w", err)
	}

	decoded, err := newDecompressor(file, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		_ = file.Close()

		return "", err
	}

	// The decoder must be closed before the file it reads from.
	multi := closer.NewCloser()
	multi.Add(decoded)
	multi.Add(file)

	text, err := readText(decoded)

	if closeErr := multi.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	return text, err
}

// Read reads an automaton description from a stream. The name is used only
// for its extension, which selects the decompressor.
func Read(reader io.Reader, name string) (string, error) {
	decoded, err := newDecompressor(reader, strings.ToLower(filepath.Ext(name)))
	if err != nil {
		return "", err
	}

	text, err := readText(decoded)

	if closeErr := decoded.Close(); closeErr != nil && err == nil {
		return "", closeErr
	}

	return text, err
}

// newDecompressor wraps the reader with a decoder chosen by file extension.
// Unknown extensions pass the stream through unchanged.
func newDecompressor(reader io.Reader, ext string) (io.ReadCloser, error) {
	switch ext {
	case ".gz", ".gzip":
		decoder, err := gzip.NewReader(reader)
		if err != nil {
			return nil, fmt.Errorf("gzip reader: %w", err)
		}

		return decoder, nil
	case ".zst", ".zstd":
		decoder, err := zstd.NewReader(reader)
		if err != nil {
			return nil, fmt.Errorf("zstd reader: %w", err)
		}

		return decoder.IOReadCloser(), nil
	case ".br":
		return io.NopCloser(brotli.NewReader(reader)), nil
	case ".lz4":
		return io.NopCloser(lz4.NewReader(reader)), nil
	default:
		return io.NopCloser(reader), nil
	}
}

// readText drains the reader and normalizes the bytes to UTF-8.
func readText(reader io.Reader) (string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read description: %w", err)
	}

	decoded, err := toUTF8(data)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(decoded)), nil
}

// toUTF8 returns the data as valid UTF-8 bytes. Already-valid input passes
// through untouched; otherwise the charset is detected and the bytes are
// transcoded.
func toUTF8(data []byte) ([]byte, error) {
	if utf8.Valid(data) {
		return data, nil
	}

	detector := chardet.NewTextDetector()

	best, err := detector.DetectBest(data)
	if err != nil {
		return nil, fmt.Errorf("%w: charset detection failed: %w", ErrUndecodableText, err)
	}

	decodedReader, err := charset.NewReaderLabel(best.Charset, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: unsupported charset %q", ErrUndecodableText, best.Charset)
	}

	decoded, err := io.ReadAll(decodedReader)
	if err != nil {
		return nil, fmt.Errorf("%w: transcoding from %q: %w", ErrUndecodableText, best.Charset, err)
	}

	if !utf8.Valid(decoded) {
		return nil, fmt.Errorf("%w: transcoding from %q produced invalid UTF-8", ErrUndecodableText, best.Charset)
	}

	return decoded, nil
}
