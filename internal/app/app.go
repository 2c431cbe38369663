package app

import (
	"io"
	"log/slog"
	"os"
	"runtime"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"prettysize/internal/config"
	"prettysize/internal/httpapi"
	"prettysize/internal/server"
)

// Build constructs an fx application configured with all dependencies.
func Build(cfg *config.Config) *fx.App {
	logger := NewLogger(os.Stdout, cfg)
	applyRuntimeTuning(logger, cfg)
	return fx.New(Options(cfg, logger))
}

// Options returns the fx graph shared by Build and tests.
func Options(cfg *config.Config, logger *slog.Logger) fx.Option {
	return fx.Options(
		fx.WithLogger(func() fxevent.Logger {
			return fxevent.NopLogger
		}),
		fx.Supply(
			cfg,
			logger,
		),
		fx.Provide(
			httpapi.NewHandler,
		),
		server.Module,
	)
}

// NewLogger builds the text slog logger at the configured level.
func NewLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg != nil {
		if parsed, err := config.ParseLevel(cfg.Log.Level); err == nil {
			level = parsed
		}
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

func applyRuntimeTuning(logger *slog.Logger, cfg *config.Config) {
	if cfg == nil {
		return
	}
	if cfg.Runtime.GOMAXPROCS > 0 {
		prev := runtime.GOMAXPROCS(cfg.Runtime.GOMAXPROCS)
		logger.Info("set GOMAXPROCS", "value", cfg.Runtime.GOMAXPROCS, "previous", prev)
	}
}
