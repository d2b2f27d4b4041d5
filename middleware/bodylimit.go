package middleware

import (
	"fmt"
	"net/http"

	"github.com/dmitrymomot/mailbridge/core/handler"
	"github.com/dmitrymomot/mailbridge/core/response"
)

// DefaultBodyLimit is the request body cap used when none is configured.
const DefaultBodyLimit int64 = 1 << 20

// BodyLimitConfig configures the request body limit middleware.
type BodyLimitConfig struct {
	// Skip bypasses the limit for matching requests.
	Skip func(r *http.Request) bool

	// MaxSize is the maximum body size in bytes (default: 1MB).
	MaxSize int64

	// ErrorHandler builds the response for requests whose Content-Length is
	// already over the limit. Bodies without a length are capped while
	// reading, and the reader reports *http.MaxBytesError to the handler.
	ErrorHandler func(r *http.Request, contentLength, maxSize int64) handler.Response
}

// BodyLimit caps request bodies at DefaultBodyLimit.
func BodyLimit[C handler.Context]() handler.Middleware[C] {
	return BodyLimitWithConfig[C](BodyLimitConfig{})
}

// BodyLimitWithSize caps request bodies at maxSize bytes.
func BodyLimitWithSize[C handler.Context](maxSize int64) handler.Middleware[C] {
	return BodyLimitWithConfig[C](BodyLimitConfig{MaxSize: maxSize})
}

// BodyLimitWithConfig rejects oversized requests up front when they declare
// a Content-Length and wraps the body in http.MaxBytesReader otherwise.
func BodyLimitWithConfig[C handler.Context](cfg BodyLimitConfig) handler.Middleware[C] {
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = DefaultBodyLimit
	}

	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = func(_ *http.Request, contentLength, maxSize int64) handler.Response {
			return response.Error(response.ErrRequestTooLarge.WithError(
				fmt.Errorf("body of %d bytes exceeds %d", contentLength, maxSize),
			))
		}
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			req := ctx.Request()
			if cfg.Skip != nil && cfg.Skip(req) {
				return next(ctx)
			}

			if req.ContentLength > cfg.MaxSize {
				return cfg.ErrorHandler(req, req.ContentLength, cfg.MaxSize)
			}

			if req.Body != nil && req.Body != http.NoBody {
				req.Body = http.MaxBytesReader(ctx.ResponseWriter(), req.Body, cfg.MaxSize)
			}

			return next(ctx)
		}
	}
}
