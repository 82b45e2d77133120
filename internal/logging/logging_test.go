package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoggerStampsComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Output: &buf, Level: slog.LevelInfo}).WithComponent(ComponentHTTP)
	logger.Info("request", FieldStatusCode, 201)
	logger.Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, "component=http") || !strings.Contains(out, "status_code=201") {
		t.Fatalf("unexpected output %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug record should be filtered: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for raw, want := range tests {
		if got := ParseLevel(raw); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestDailyFileRotatesAndPrunes(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "app-2024-01-01.log")
	if err := os.WriteFile(stale, []byte("old\n"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	unrelated := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(unrelated, []byte("keep\n"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	clock := time.Date(2024, time.January, 10, 23, 59, 0, 0, time.UTC)
	f, err := openDailyFile(dir, 3, func() time.Time { return clock })
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	if _, err := f.Write([]byte("first\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	clock = clock.Add(2 * time.Minute)
	if _, err := f.Write([]byte("second\n")); err != nil {
		t.Fatalf("write: %v", err)
	}

	day1, err := os.ReadFile(filepath.Join(dir, "app-2024-01-10.log"))
	if err != nil || string(day1) != "first\n" {
		t.Fatalf("day one log = %q, %v", day1, err)
	}
	day2, err := os.ReadFile(filepath.Join(dir, "app-2024-01-11.log"))
	if err != nil || string(day2) != "second\n" {
		t.Fatalf("day two log = %q, %v", day2, err)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Fatalf("stale log should be pruned, stat err = %v", err)
	}
	if _, err := os.Stat(unrelated); err != nil {
		t.Fatalf("unrelated file removed: %v", err)
	}
}
