package handler

import "net/http"

// Response renders an HTTP response: headers, status and body.
// A returned error is passed to the router's error handler, which renders it
// unless the response was already started.
type Response func(w http.ResponseWriter, r *http.Request) error

// HandlerFunc handles a request and returns the response to render.
type HandlerFunc[C Context] func(ctx C) Response

// ErrorHandler renders errors returned by handlers or responses, and
// recovered panics.
type ErrorHandler[C Context] func(ctx C, err error)

// Middleware wraps a handler with cross-cutting behavior.
type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]

// Chain applies middlewares to h so that the first middleware is the outermost.
func Chain[C Context](h HandlerFunc[C], middlewares ...Middleware[C]) HandlerFunc[C] {
	for i := len(middlewares) - 1; i >= 0; i-- {
		if middlewares[i] != nil {
			h = middlewares[i](h)
		}
	}
	return h
}
