package utils

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWrapSequence(t *testing.T) {
	cases := []struct {
		seq   string
		width int
		want  string
	}{
		{"ABCDEFG", 3, "ABC\nDEF\nG\n"},
		{"ABCDEF", 3, "ABC\nDEF\n"},
		{"", 3, ""},
		{"ABC", 0, "ABC\n"},
	}
	for _, c := range cases {
		if got := WrapSequence(c.seq, c.width); got != c.want {
			t.Errorf("WrapSequence(%q, %d) = %q, want %q", c.seq, c.width, got, c.want)
		}
	}
}

func TestFasta(t *testing.T) {
	got := Fasta("pair", strings.Repeat("A", 61))
	want := ">pair\n" + strings.Repeat("A", 60) + "\nA\n"
	if got != want {
		t.Fatalf("Fasta = %q", got)
	}
}

func TestOpenMaybeGzip(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "plain.txt")
	zipped := filepath.Join(dir, "zipped.txt.gz")

	if err := os.WriteFile(plain, []byte("hello"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	gz.Write([]byte("hello"))
	gz.Close()
	if err := os.WriteFile(zipped, buf.Bytes(), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	for _, path := range []string{plain, zipped} {
		rc, err := OpenMaybeGzip(path)
		if err != nil {
			t.Fatalf("%s: %v", path, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil || string(data) != "hello" {
			t.Fatalf("%s: got %q, err %v", path, data, err)
		}
	}

	if _, err := OpenMaybeGzip(filepath.Join(dir, "missing")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestMaybeGunzipShortInput(t *testing.T) {
	r, err := MaybeGunzip(strings.NewReader("A"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, _ := io.ReadAll(r)
	if string(data) != "A" {
		t.Fatalf("got %q", data)
	}
}
