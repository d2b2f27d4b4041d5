package router

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/mailbridge/core/handler"
)

// Context is the default request context. Path parameters come from chi.
type Context struct {
	w http.ResponseWriter
	r *http.Request
}

var _ handler.Context = (*Context)(nil)

func newContext(w http.ResponseWriter, r *http.Request) *Context {
	return &Context{w: w, r: r}
}

// NewContext builds a Context outside the router, mostly for tests.
func NewContext(w http.ResponseWriter, r *http.Request) *Context {
	return newContext(w, r)
}

func (c *Context) Deadline() (time.Time, bool) { return c.r.Context().Deadline() }
func (c *Context) Done() <-chan struct{}       { return c.r.Context().Done() }
func (c *Context) Err() error                  { return c.r.Context().Err() }
func (c *Context) Value(key any) any           { return c.r.Context().Value(key) }

// Request returns the current request, including values added with SetValue.
func (c *Context) Request() *http.Request {
	return c.r
}

// ResponseWriter returns the response writer.
func (c *Context) ResponseWriter() http.ResponseWriter {
	return c.w
}

// Param returns the chi URL parameter for key.
func (c *Context) Param(key string) string {
	return chi.URLParam(c.r, key)
}

// SetValue stores a request-scoped value.
func (c *Context) SetValue(key, val any) {
	c.r = c.r.WithContext(context.WithValue(c.r.Context(), key, val))
}
