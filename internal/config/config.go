package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"prettysize/pkg/configutil"
	"prettysize/pkg/human"
)

var (
	errEmptyConfigPath = errors.New("config path is empty")
	errInvalidDigits   = errors.New("format.significant_digits must be at least 1")
)

// Config represents the full service configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server" koanf:"server"`
	Format  FormatConfig  `yaml:"format" koanf:"format"`
	Log     LogConfig     `yaml:"log" koanf:"log"`
	Runtime RuntimeConfig `yaml:"runtime" koanf:"runtime"`
}

// ServerConfig describes HTTP server binding parameters.
type ServerConfig struct {
	Host            string   `yaml:"host" koanf:"host"`
	Port            int      `yaml:"port" koanf:"port"`
	ReadTimeout     Duration `yaml:"read_timeout" koanf:"read_timeout"`
	WriteTimeout    Duration `yaml:"write_timeout" koanf:"write_timeout"`
	ShutdownTimeout Duration `yaml:"shutdown_timeout" koanf:"shutdown_timeout"`
}

// Address returns the server listen address in host:port form.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// FormatConfig holds formatting defaults applied when a request sets none.
type FormatConfig struct {
	SignificantDigits int `yaml:"significant_digits" koanf:"significant_digits"`
}

// LogConfig selects the slog level.
type LogConfig struct {
	Level string `yaml:"level" koanf:"level"`
}

// RuntimeConfig tunes the Go runtime at startup.
type RuntimeConfig struct {
	GOMAXPROCS int `yaml:"gomaxprocs" koanf:"gomaxprocs"`
}

// Duration wraps time.Duration to support strings like "30s" or "1d".
type Duration struct {
	time.Duration
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value == nil {
		return nil
	}
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("duration must be a string, got kind %d", value.Kind)
	}
	return d.UnmarshalText([]byte(value.Value))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	raw := strings.TrimSpace(string(text))
	if raw == "" || strings.EqualFold(raw, "null") {
		d.Duration = 0
		return nil
	}
	dur, err := configutil.ParseFlexibleDuration(raw)
	if err != nil {
		return err
	}
	d.Duration = dur
	return nil
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "127.0.0.1",
			Port:            8080,
			ReadTimeout:     Duration{10 * time.Second},
			WriteTimeout:    Duration{10 * time.Second},
			ShutdownTimeout: Duration{5 * time.Second},
		},
		Format: FormatConfig{SignificantDigits: human.DefaultSignificantDigits},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads and validates configuration from the provided file path.
func Load(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errEmptyConfigPath
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()
	return LoadReader(file)
}

// LoadReader decodes YAML configuration over the defaults.
func LoadReader(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate returns an error if required configuration values are missing or invalid.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Host) == "" {
		return errors.New("server.host must be set")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.ReadTimeout.Duration < 0 || c.Server.WriteTimeout.Duration < 0 || c.Server.ShutdownTimeout.Duration < 0 {
		return errors.New("server timeouts must not be negative")
	}
	if c.Format.SignificantDigits < 1 {
		return errInvalidDigits
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Runtime.GOMAXPROCS < 0 {
		return fmt.Errorf("runtime.gomaxprocs must not be negative, got %d", c.Runtime.GOMAXPROCS)
	}
	return nil
}

// ParseLevel maps a log.level value onto slog levels.
func ParseLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("log.level %q is not one of debug, info, warn, error", raw)
	}
}
