package middleware

import (
	"context"
	"log/slog"
	"time"

	"wayfinder/config"
	"wayfinder/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware records every request in metrics and, in debug mode, logs it
type LoggerMiddleware struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
	debug   bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config, metrics *metrics.Metrics) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger:  logger,
		metrics: metrics,
		debug:   config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			// Let the error handler write the response so the status is final.
			c.Error(err)
		}

		latency := time.Since(start)
		if m.metrics != nil {
			m.metrics.ObserveRequest(c.Request().Method, c.Path(), c.Response().Status, latency)
		}

		if m.debug {
			m.logRequest(c, start, latency, err)
		}

		return nil
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, latency time.Duration, err error) {
	req := c.Request()
	res := c.Response()

	fields := []slog.Attr{
		slog.String("request_id", RequestID(c)),
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
		slog.String("time", start.Format(time.RFC3339)),
	}

	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}

	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if res.Status >= 400 {
		logLevel = slog.LevelWarn
	}
	if res.Status >= 500 {
		logLevel = slog.LevelError
	}

	m.logger.LogAttrs(context.Background(), logLevel, "HTTP Request", fields...)
}
