package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
)

// CORSConfig configures cross-origin access.
type CORSConfig struct {
	// AllowOrigins lists allowed origins; "*" allows any. Empty disables CORS.
	AllowOrigins []string

	// AllowMethods defaults to GET, POST and OPTIONS.
	AllowMethods []string

	// AllowHeaders defaults to Accept, Content-Type and X-Request-ID.
	AllowHeaders []string

	// MaxAge is how long browsers may cache a preflight, in seconds (default: 300).
	MaxAge int
}

// CORS returns a go-chi/cors handler, or a pass-through when no origin is
// configured so same-origin deployments send no CORS headers at all.
func CORS(cfg CORSConfig) func(http.Handler) http.Handler {
	origins := make([]string, 0, len(cfg.AllowOrigins))
	for _, o := range cfg.AllowOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	if len(cfg.AllowMethods) == 0 {
		cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	}
	if len(cfg.AllowHeaders) == 0 {
		cfg.AllowHeaders = []string{"Accept", "Content-Type", RequestIDHeader}
	}
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = 300
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: cfg.AllowMethods,
		AllowedHeaders: cfg.AllowHeaders,
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         cfg.MaxAge,
	})
}
