package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/mailbridge/core/logger"
)

// RequestIDHeader is the header used to carry request IDs.
const RequestIDHeader = "X-Request-ID"

const maxRequestIDLength = 128

type requestIDContextKey struct{}

// RequestIDConfig configures the request ID middleware.
type RequestIDConfig struct {
	// Skip bypasses the middleware for matching requests.
	Skip func(r *http.Request) bool
	// Generator creates new IDs (default: UUID v4).
	Generator func() string
	// HeaderName defaults to X-Request-ID.
	HeaderName string
	// IgnoreIncoming always generates a fresh ID instead of reusing a
	// well-formed one sent by the client.
	IgnoreIncoming bool
}

// RequestID tags every request with an ID, reusing a well-formed incoming one.
func RequestID() func(http.Handler) http.Handler {
	return RequestIDWithConfig(RequestIDConfig{})
}

// RequestIDWithConfig stores the ID in the request context and echoes it in
// the response header before the handler runs, so error responses carry it too.
func RequestIDWithConfig(cfg RequestIDConfig) func(http.Handler) http.Handler {
	if cfg.HeaderName == "" {
		cfg.HeaderName = RequestIDHeader
	}
	if cfg.Generator == nil {
		cfg.Generator = uuid.NewString
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			var id string
			if !cfg.IgnoreIncoming {
				if incoming := r.Header.Get(cfg.HeaderName); validRequestID(incoming) {
					id = incoming
				}
			}
			if id == "" {
				id = cfg.Generator()
			}

			w.Header().Set(cfg.HeaderName, id)
			next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
		})
	}
}

// WithRequestID returns a copy of ctx carrying id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDContextKey{}, id)
}

// GetRequestID returns the request ID stored in ctx, or "".
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey{}).(string)
	return id
}

// RequestIDExtractor adds the request ID to every *Context log call.
func RequestIDExtractor(ctx context.Context) (slog.Attr, bool) {
	id := GetRequestID(ctx)
	return logger.RequestID(id), id != ""
}

// validRequestID accepts printable ASCII without spaces, so a client cannot
// smuggle line breaks into headers or logs.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] <= ' ' || id[i] > '~' {
			return false
		}
	}
	return true
}
