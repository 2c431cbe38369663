package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"log/slog"

	"github.com/gin-gonic/gin"

	"prettysize/internal/config"
	"prettysize/internal/version"
	"prettysize/pkg/configutil"
	"prettysize/pkg/human"
)

// MaxBatchSize caps the number of values accepted by POST /format.
const MaxBatchSize = 1000

var (
	errEmptyBatch = errors.New("values must not be empty")
	errBatchSize  = fmt.Errorf("values must not exceed %d entries", MaxBatchSize)
)

// Handler serves /format endpoints.
type Handler struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewHandler constructs the HTTP handler.
func NewHandler(cfg *config.Config, logger *slog.Logger) *Handler {
	return &Handler{
		cfg:    cfg,
		logger: logger.With("component", "handler"),
	}
}

// Register attaches routes to gin engine.
func (h *Handler) Register(r *gin.Engine) {
	r.GET("/healthz", h.handleHealth)
	r.GET("/format/:size", h.handleFormat)
	r.POST("/format", h.handleBatch)
}

type formatResponse struct {
	Input     int64  `json:"input"`
	Digits    int    `json:"digits"`
	Formatted string `json:"formatted"`
}

type batchRequest struct {
	Values []int64 `json:"values"`
	Digits *int    `json:"digits"`
}

type batchResult struct {
	Input     int64  `json:"input"`
	Formatted string `json:"formatted,omitempty"`
	Error     string `json:"error,omitempty"`
}

type batchResponse struct {
	Digits  int           `json:"digits"`
	Results []batchResult `json:"results"`
}

func (h *Handler) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": version.Identifier()})
}

func (h *Handler) handleFormat(c *gin.Context) {
	size, err := configutil.ParseByteSize(c.Param("size"))
	if err != nil {
		h.respondError(c, http.StatusBadRequest, err)
		return
	}
	digits, err := h.parseDigits(c.Query("digits"))
	if err != nil {
		h.respondError(c, http.StatusBadRequest, err)
		return
	}
	formatted, err := human.Format(size, digits)
	if err != nil {
		h.respondError(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, formatResponse{Input: size, Digits: digits, Formatted: formatted})
}

func (h *Handler) handleBatch(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}
	switch {
	case len(req.Values) == 0:
		h.respondError(c, http.StatusBadRequest, errEmptyBatch)
		return
	case len(req.Values) > MaxBatchSize:
		h.respondError(c, http.StatusBadRequest, errBatchSize)
		return
	}
	digits := h.cfg.Format.SignificantDigits
	if req.Digits != nil {
		digits = *req.Digits
	}
	if digits < 1 {
		h.respondError(c, http.StatusBadRequest, &human.RangeError{Arg: "maxSignificantDigits", Value: int64(digits)})
		return
	}

	results := make([]batchResult, len(req.Values))
	failed := 0
	for i, v := range req.Values {
		results[i].Input = v
		formatted, err := human.Format(v, digits)
		if err != nil {
			results[i].Error = err.Error()
			failed++
			continue
		}
		results[i].Formatted = formatted
	}
	if failed > 0 {
		h.logger.Debug("batch contained rejected values", slog.Int("failed", failed), slog.Int("total", len(results)))
	}
	c.JSON(http.StatusOK, batchResponse{Digits: digits, Results: results})
}

func (h *Handler) parseDigits(raw string) (int, error) {
	if strings.TrimSpace(raw) == "" {
		return h.cfg.Format.SignificantDigits, nil
	}
	digits, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid digits %q", raw)
	}
	return digits, nil
}

func statusFor(err error) int {
	if errors.Is(err, human.ErrOutOfRange) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (h *Handler) respondError(c *gin.Context, code int, err error) {
	level := slog.LevelWarn
	if code >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.logger.Log(c.Request.Context(), level, "request error",
		slog.Any("error", err),
		slog.Int("status", code),
		slog.String("path", c.Request.URL.Path))
	c.AbortWithStatusJSON(code, gin.H{"error": err.Error()})
}
