package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupJSONToWriter(t *testing.T) {
	var buf bytes.Buffer
	cleanup, err := Setup(Config{Level: "info", Format: "json", Stderr: &buf})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer cleanup()

	L().Debug("hidden")
	L().Info("fold.completed", "residues", 13)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one record at info level, got %d: %q", len(lines), buf.String())
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("record is not JSON: %v", err)
	}
	if rec["msg"] != "fold.completed" || rec["residues"] != float64(13) {
		t.Fatalf("unexpected record: %v", rec)
	}
}

func TestSetupFileAndCleanup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "love_fold.log")
	cleanup, err := Setup(Config{Path: path, Debug: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	L().Debug("cache.miss", "key", "abc")
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file missing: %v", err)
	}
	if !strings.Contains(string(data), "cache.miss") {
		t.Fatalf("debug record not written: %q", data)
	}

	// after cleanup records are discarded
	L().Info("after")
	data, _ = os.ReadFile(path)
	if strings.Contains(string(data), "after") {
		t.Fatalf("logger still writing after cleanup")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"loud":    slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
