package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Format.SignificantDigits != 3 {
		t.Fatalf("unexpected default digits: %d", cfg.Format.SignificantDigits)
	}
	if cfg.Server.Address() != "127.0.0.1:8080" {
		t.Fatalf("unexpected default address: %s", cfg.Server.Address())
	}
}

func TestLoadReader(t *testing.T) {
	yamlConfig := `
server:
  host: 0.0.0.0
  port: 9090
  read_timeout: "30s"
  shutdown_timeout: "1m"
format:
  significant_digits: 4
log:
  level: debug
runtime:
  gomaxprocs: 2
`
	cfg, err := LoadReader(strings.NewReader(yamlConfig))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Server.Address() != "0.0.0.0:9090" {
		t.Fatalf("unexpected address: %s", cfg.Server.Address())
	}
	if cfg.Server.ReadTimeout.Duration != 30*time.Second {
		t.Fatalf("unexpected read timeout: %s", cfg.Server.ReadTimeout)
	}
	if cfg.Server.WriteTimeout.Duration != 10*time.Second {
		t.Fatalf("expected default write timeout, got %s", cfg.Server.WriteTimeout)
	}
	if cfg.Server.ShutdownTimeout.Duration != time.Minute {
		t.Fatalf("unexpected shutdown timeout: %s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Format.SignificantDigits != 4 {
		t.Fatalf("unexpected digits: %d", cfg.Format.SignificantDigits)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("unexpected log level: %s", cfg.Log.Level)
	}
	if cfg.Runtime.GOMAXPROCS != 2 {
		t.Fatalf("unexpected GOMAXPROCS: %d", cfg.Runtime.GOMAXPROCS)
	}
}

func TestLoadReaderRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero digits", "format:\n  significant_digits: 0\n"},
		{"bad port", "server:\n  port: 70000\n"},
		{"empty host", "server:\n  host: \"\"\n"},
		{"bad level", "log:\n  level: loud\n"},
		{"bad duration", "server:\n  read_timeout: \"soon\"\n"},
		{"list duration", "server:\n  read_timeout: [1, 2]\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadReader(strings.NewReader(tc.yaml)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestLoadEmptyPath(t *testing.T) {
	if _, err := Load("  "); err != errEmptyConfigPath {
		t.Fatalf("expected errEmptyConfigPath, got %v", err)
	}
}

func TestLoadFromEnvOrFileWithPrefixedKeys(t *testing.T) {
	t.Setenv("PRETTYSIZE_SERVER__HOST", "0.0.0.0")
	t.Setenv("PRETTYSIZE_SERVER__PORT", "8085")
	t.Setenv("PRETTYSIZE_SERVER__WRITE_TIMEOUT", "45s")
	t.Setenv("PRETTYSIZE_FORMAT__SIGNIFICANT_DIGITS", "5")
	t.Setenv("PRETTYSIZE_LOG__LEVEL", "warn")
	t.Setenv("PRETTYSIZE_RUNTIME__GOMAXPROCS", "3")

	cfg, err := LoadFromEnvOrFile("")
	if err != nil {
		t.Fatalf("LoadFromEnvOrFile: %v", err)
	}
	if cfg.Server.Host != "0.0.0.0" || cfg.Server.Port != 8085 {
		t.Fatalf("unexpected server config: %+v", cfg.Server)
	}
	if cfg.Server.WriteTimeout.Duration != 45*time.Second {
		t.Fatalf("unexpected write timeout: %s", cfg.Server.WriteTimeout)
	}
	if cfg.Server.ReadTimeout.Duration != 10*time.Second {
		t.Fatalf("expected default read timeout, got %s", cfg.Server.ReadTimeout)
	}
	if cfg.Format.SignificantDigits != 5 {
		t.Fatalf("unexpected digits: %d", cfg.Format.SignificantDigits)
	}
	if cfg.Log.Level != "warn" {
		t.Fatalf("unexpected log level: %s", cfg.Log.Level)
	}
	if cfg.Runtime.GOMAXPROCS != 3 {
		t.Fatalf("unexpected GOMAXPROCS: %d", cfg.Runtime.GOMAXPROCS)
	}
}

func TestLoadFromEnvOrFileEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prettysize.yaml")
	content := fmt.Sprintf(`
server:
  host: %q
  port: 9000
  shutdown_timeout: "1d"
format:
  significant_digits: 2
`, "10.0.0.1")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("PRETTYSIZE_SERVER__PORT", "9100")

	cfg, err := LoadFromEnvOrFile(path)
	if err != nil {
		t.Fatalf("LoadFromEnvOrFile: %v", err)
	}
	if cfg.Server.Host != "10.0.0.1" {
		t.Fatalf("unexpected host: %s", cfg.Server.Host)
	}
	if cfg.Server.Port != 9100 {
		t.Fatalf("expected env port to win, got %d", cfg.Server.Port)
	}
	if cfg.Server.ShutdownTimeout.Duration != 24*time.Hour {
		t.Fatalf("unexpected shutdown timeout: %s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Format.SignificantDigits != 2 {
		t.Fatalf("unexpected digits: %d", cfg.Format.SignificantDigits)
	}
}

func TestLoadFromEnvOrFileMissingFile(t *testing.T) {
	if _, err := LoadFromEnvOrFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadFromEnvOrFileValidates(t *testing.T) {
	t.Setenv("PRETTYSIZE_FORMAT__SIGNIFICANT_DIGITS", "0")
	if _, err := LoadFromEnvOrFile(""); err != errInvalidDigits {
		t.Fatalf("expected errInvalidDigits, got %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
