package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/fx"

	"prettysize/internal/config"
	"prettysize/internal/httpapi"
	"prettysize/internal/version"
)

// RequestIDHeader carries the per-request identifier in both directions.
const RequestIDHeader = "X-Request-ID"

// Module exposes fx providers for the HTTP server.
var Module = fx.Options(
	fx.Provide(NewEngine),
	fx.Invoke(RegisterLifecycle),
)

// Params bundles dependencies for HTTP lifecycle registration.
type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Engine    *gin.Engine
	Logger    *slog.Logger
}

// NewEngine constructs the gin engine with registered routes.
func NewEngine(handler *httpapi.Handler, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), accessLog(logger.With("component", "http")))
	handler.Register(r)
	return r
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)
		c.Header("Server", version.Identifier())
		c.Next()
	}
}

func accessLog(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("served request",
			"remote_ip", c.ClientIP(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", c.GetString("request_id"),
		)
	}
}

// RegisterLifecycle wires the HTTP server into fx lifecycle.
func RegisterLifecycle(p Params) {
	srv := &http.Server{
		Addr:              p.Config.Server.Address(),
		Handler:           p.Engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       p.Config.Server.ReadTimeout.Duration,
		WriteTimeout:      p.Config.Server.WriteTimeout.Duration,
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting HTTP server", slog.String("addr", srv.Addr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server failure", slog.Any("error", err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Logger.Info("stopping HTTP server")
			if timeout := p.Config.Server.ShutdownTimeout.Duration; timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			return srv.Shutdown(ctx)
		},
	})
}
