package router

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/mailbridge/core/handler"
	"github.com/dmitrymomot/mailbridge/core/logger"
)

type mux[C handler.Context] struct {
	chi          *chi.Mux
	middlewares  []handler.Middleware[C]
	errorHandler handler.ErrorHandler[C]
	newContext   func(http.ResponseWriter, *http.Request) C
	logger       *slog.Logger
}

func newMux[C handler.Context](opts ...Option[C]) *mux[C] {
	m := &mux[C]{
		chi:          chi.NewRouter(),
		errorHandler: defaultErrorHandler[C],
		logger:       slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.newContext == nil {
		var zero C
		if _, ok := any(zero).(*Context); !ok {
			panic(ErrNoContextFactory)
		}
		m.newContext = func(w http.ResponseWriter, r *http.Request) C {
			return any(newContext(w, r)).(C)
		}
	}

	m.chi.NotFound(m.fail(ErrNotFound))
	m.chi.MethodNotAllowed(m.fail(ErrMethodNotAllowed))

	return m
}

func (m *mux[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.chi.ServeHTTP(w, r)
}

func (m *mux[C]) Get(pattern string, h handler.HandlerFunc[C]) {
	m.Method(http.MethodGet, pattern, h)
}

func (m *mux[C]) Post(pattern string, h handler.HandlerFunc[C]) {
	m.Method(http.MethodPost, pattern, h)
}

func (m *mux[C]) Put(pattern string, h handler.HandlerFunc[C]) {
	m.Method(http.MethodPut, pattern, h)
}

func (m *mux[C]) Delete(pattern string, h handler.HandlerFunc[C]) {
	m.Method(http.MethodDelete, pattern, h)
}

func (m *mux[C]) Method(method, pattern string, h handler.HandlerFunc[C]) {
	if h == nil {
		panic(ErrNilHandler)
	}
	m.chi.Method(method, pattern, m.adapt(h))
}

func (m *mux[C]) Use(middlewares ...handler.Middleware[C]) {
	m.middlewares = append(m.middlewares, middlewares...)
}

func (m *mux[C]) UseHTTP(middlewares ...func(http.Handler) http.Handler) {
	m.chi.Use(middlewares...)
}

func (m *mux[C]) Mount(pattern string, h http.Handler) {
	m.chi.Handle(pattern, h)
}

func (m *mux[C]) Routes() []Route {
	var routes []Route
	_ = chi.Walk(m.chi, func(method, pattern string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, Route{Method: method, Pattern: pattern})
		return nil
	})
	return routes
}

// adapt turns a typed handler into an http.Handler. Typed middlewares are
// applied per request so Use may be called in any order relative to routes.
func (m *mux[C]) adapt(h handler.HandlerFunc[C]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ww := newResponseWriter(w)
		ctx := m.newContext(ww, r)
		defer m.recover(ctx, ww, r)

		resp := handler.Chain(h, m.middlewares...)(ctx)
		if resp == nil {
			m.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := resp(ww, ctx.Request()); err != nil {
			m.errorHandler(ctx, err)
		}
	}
}

func (m *mux[C]) fail(err error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ww := newResponseWriter(w)
		ctx := m.newContext(ww, r)
		defer m.recover(ctx, ww, r)
		m.errorHandler(ctx, err)
	}
}

func (m *mux[C]) recover(ctx C, w *responseWriter, r *http.Request) {
	p := recover()
	if p == nil {
		return
	}
	if p == http.ErrAbortHandler {
		panic(p)
	}

	perr := &panicError{value: p, stack: debug.Stack()}
	if w.Written() {
		m.logger.ErrorContext(r.Context(), "panic after response written",
			slog.Any("panic", p),
			slog.String("stack", string(perr.stack)),
			logger.Method(r.Method),
			logger.Path(r.URL.Path),
			logger.StatusCode(w.Status()),
		)
		return
	}
	m.errorHandler(ctx, perr)
}
