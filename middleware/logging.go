package middleware

import (
	"log/slog"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/mailbridge/core/logger"
	"github.com/dmitrymomot/mailbridge/pkg/clientip"
)

// LoggingConfig configures the request logging middleware.
type LoggingConfig struct {
	// Skip bypasses logging for matching requests, e.g. health probes.
	Skip func(r *http.Request) bool

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// LogLevel for successful requests (default: info). 4xx responses are
	// logged at warn and 5xx at error regardless.
	LogLevel slog.Level

	// SlowRequestThreshold logs slower requests at warn (default: 5s).
	SlowRequestThreshold time.Duration

	// Component name for structured logging (default: "http").
	Component string
}

// Logging logs one line per request with default settings.
func Logging(log *slog.Logger) func(http.Handler) http.Handler {
	return LoggingWithConfig(LoggingConfig{Logger: log})
}

// LoggingWithConfig logs method, path, status, size, duration and request ID
// once the response is complete.
func LoggingWithConfig(cfg LoggingConfig) func(http.Handler) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.SlowRequestThreshold <= 0 {
		cfg.SlowRequestThreshold = 5 * time.Second
	}
	if cfg.Component == "" {
		cfg.Component = "http"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			elapsed := time.Since(start)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			level := cfg.LogLevel
			switch {
			case status >= http.StatusInternalServerError:
				level = slog.LevelError
			case status >= http.StatusBadRequest, elapsed > cfg.SlowRequestThreshold:
				level = max(level, slog.LevelWarn)
			}

			cfg.Logger.LogAttrs(r.Context(), level, "request completed",
				logger.Component(cfg.Component),
				logger.Method(r.Method),
				logger.Path(r.URL.Path),
				logger.StatusCode(status),
				logger.BytesOut(int64(ww.BytesWritten())),
				logger.Duration(elapsed),
				logger.RequestID(GetRequestID(r.Context())),
				logger.ClientIP(clientip.GetIP(r)),
				logger.UserAgent(r.UserAgent()),
			)
		})
	}
}
