// Package utils holds small helpers shared by several tools: gzip-aware
// input and FASTA-style line wrapping.
package utils

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// MaybeGunzip returns a reader that yields r's contents, decompressing them
// if they start with the gzip magic bytes.
func MaybeGunzip(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(2)
	if err != nil || magic[0] != 0x1F || magic[1] != 0x8B {
		return br, nil // short or plain input
	}
	gr, err := gzip.NewReader(br)
	if err != nil {
		return nil, fmt.Errorf("failed to open gzip reader: %w", err)
	}
	return gr, nil
}

// OpenMaybeGzip opens a plain or gzip-compressed file. Closing the returned
// reader closes the file.
func OpenMaybeGzip(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	r, err := MaybeGunzip(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return readCloser{Reader: r, closer: f}, nil
}

type readCloser struct {
	io.Reader
	closer io.Closer
}

func (rc readCloser) Close() error { return rc.closer.Close() }

// WrapSequence breaks seq into lines of at most width characters, each
// terminated by a newline.
func WrapSequence(seq string, width int) string {
	if width <= 0 {
		return seq + "\n"
	}
	var out strings.Builder
	for i := 0; i < len(seq); i += width {
		end := i + width
		if end > len(seq) {
			end = len(seq)
		}
		out.WriteString(seq[i:end] + "\n")
	}
	return out.String()
}

// Fasta renders a single FASTA record wrapped at 60 columns.
func Fasta(id, seq string) string {
	return fmt.Sprintf(">%s\n%s", id, WrapSequence(seq, 60))
}
