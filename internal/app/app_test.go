package app

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"go.uber.org/fx"

	"prettysize/internal/config"
)

func TestOptionsGraphIsComplete(t *testing.T) {
	cfg := config.Default()
	logger := NewLogger(io.Discard, cfg)
	if err := fx.ValidateApp(Options(cfg, logger)); err != nil {
		t.Fatalf("invalid fx graph: %v", err)
	}
}

func TestNewLoggerHonorsLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "warn"
	var buf bytes.Buffer
	logger := NewLogger(&buf, cfg)
	logger.Info("hidden")
	logger.Warn("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info message should be filtered: %s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Fatalf("warn message missing: %s", out)
	}
}
