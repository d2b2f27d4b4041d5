package router

import (
	"net/http"

	"github.com/dmitrymomot/mailbridge/core/handler"
)

// Router registers typed handlers on top of chi.
//
// Middlewares must be added before the first route; chi panics otherwise.
type Router[C handler.Context] interface {
	http.Handler

	Get(pattern string, h handler.HandlerFunc[C])
	Post(pattern string, h handler.HandlerFunc[C])
	Put(pattern string, h handler.HandlerFunc[C])
	Delete(pattern string, h handler.HandlerFunc[C])
	Method(method, pattern string, h handler.HandlerFunc[C])

	// Use adds typed middlewares that run inside the error handling boundary.
	Use(middlewares ...handler.Middleware[C])
	// UseHTTP adds plain net/http middlewares that wrap the whole router,
	// including the not-found and method-not-allowed responses.
	UseHTTP(middlewares ...func(http.Handler) http.Handler)

	// Mount attaches a plain http.Handler, e.g. a metrics exporter.
	Mount(pattern string, h http.Handler)

	Routes() []Route
}

// Route describes a registered method and pattern.
type Route struct {
	Method  string
	Pattern string
}

// New creates a chi-backed router.
func New[C handler.Context](opts ...Option[C]) Router[C] {
	return newMux(opts...)
}
