package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Nikil-Srinivasan/Stint360-API/internal/middleware"
	"github.com/Nikil-Srinivasan/Stint360-API/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

type checkResult map[string]any

// CheckHealth probes the configured dependencies. It answers 200 when every
// probe passes and 503 otherwise. Redis is only probed when it is configured.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	cfg := h.server.Config.Observability.HealthChecks

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := make(map[string]checkResult)
	isHealthy := true

	if cfg.Has("database") && h.server.DB != nil {
		result, ok := h.probe(c.Request().Context(), &logger, "database", cfg.Timeout, h.server.DB.Ping)
		checks["database"] = result
		isHealthy = isHealthy && ok
	}

	if cfg.Has("redis") && h.server.Redis != nil {
		result, ok := h.probe(c.Request().Context(), &logger, "redis", cfg.Timeout, func(ctx context.Context) error {
			return h.server.Redis.Ping(ctx).Err()
		})
		checks["redis"] = result
		isHealthy = isHealthy && ok
	}

	response := map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	status := http.StatusOK
	if !isHealthy {
		response["status"] = "unhealthy"
		status = http.StatusServiceUnavailable

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")
	} else {
		logger.Debug().
			Dur("total_duration", time.Since(start)).
			Msg("health check passed")
	}

	if err := c.JSON(status, response); err != nil {
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}

func (h *HealthHandler) probe(
	parent context.Context,
	logger *zerolog.Logger,
	name string,
	timeout time.Duration,
	ping func(context.Context) error,
) (checkResult, bool) {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	probeStart := time.Now()
	err := ping(ctx)
	elapsed := time.Since(probeStart)

	if err != nil {
		logger.Error().
			Err(err).
			Str("check", name).
			Dur("response_time", elapsed).
			Msg("health check failed")

		if app := h.server.LoggerService.GetApplication(); app != nil {
			app.RecordCustomEvent("HealthCheckError", map[string]any{
				"check_type":       name,
				"operation":        "health_check",
				"error_type":       name + "_unhealthy",
				"response_time_ms": elapsed.Milliseconds(),
				"error_message":    err.Error(),
			})
		}

		return checkResult{
			"status":        "unhealthy",
			"response_time": elapsed.String(),
			"error":         err.Error(),
		}, false
	}

	return checkResult{
		"status":        "healthy",
		"response_time": elapsed.String(),
	}, true
}
