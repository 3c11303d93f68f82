package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewWritesToRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ckd.log")

	log, err := New(Options{Level: "debug", Production: true, File: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	log.Info("classifier loaded")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"classifier loaded"`) {
		t.Fatalf("expected JSON entry, got %s", data)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(Options{Level: "loud"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNewDefaultsToInfo(t *testing.T) {
	log, err := New(Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if log.Core().Enabled(zapcore.DebugLevel) {
		t.Fatal("debug should be disabled by default")
	}
}
