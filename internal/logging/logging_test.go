package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesWithPrefix(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Output: &buf, Prefix: "pursuit"})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	logger.Debug("tick", "n", 1)

	out := buf.String()
	if !strings.Contains(out, "pursuit") {
		t.Errorf("expected prefix in output, got %q", out)
	}
	if !strings.Contains(out, "tick") {
		t.Errorf("expected message in output, got %q", out)
	}
}

func TestNewFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Output: &buf})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info should be filtered at warn level, got %q", buf.String())
	}

	logger.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("warn should be written, got %q", buf.String())
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(Options{Level: "chatty"}); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestOpenFileCreatesNestedPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "deep", "pursuit.log")

	logger, f, err := OpenFile(path, Options{Level: "info"})
	if err != nil {
		t.Fatalf("OpenFile() failed: %v", err)
	}
	logger.Info("hello")
	f.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file missing message, got %q", string(data))
	}
}

func TestDiscardIsSilent(t *testing.T) {
	logger := Discard()
	// Must not panic and must not write anywhere observable.
	logger.Error("ignored")
}
