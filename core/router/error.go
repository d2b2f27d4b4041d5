package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/mailbridge/core/handler"
)

var (
	ErrNoContextFactory = errors.New("no context factory provided")
	ErrNilHandler       = errors.New("nil handler")
	ErrNilResponse      = errors.New("nil response")

	ErrNotFound         error = &routeError{msg: "not found", status: http.StatusNotFound}
	ErrMethodNotAllowed error = &routeError{msg: "method not allowed", status: http.StatusMethodNotAllowed}
)

type routeError struct {
	msg    string
	status int
}

func (e *routeError) Error() string   { return e.msg }
func (e *routeError) StatusCode() int { return e.status }

// statusCode is implemented by errors that map to a specific HTTP status.
type statusCode interface {
	StatusCode() int
}

// StatusOf returns the HTTP status carried by err, or 500.
func StatusOf(err error) int {
	var sc statusCode
	if errors.As(err, &sc) {
		return sc.StatusCode()
	}
	return http.StatusInternalServerError
}

func defaultErrorHandler[C handler.Context](ctx C, err error) {
	w := ctx.ResponseWriter()
	if ww, ok := w.(*responseWriter); ok && ww.Written() {
		return
	}
	status := StatusOf(err)
	http.Error(w, http.StatusText(status), status)
}

// PanicError is passed to the error handler when a handler panics.
type PanicError interface {
	error
	Value() any
	Stack() []byte
}

type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

func (e *panicError) Value() any {
	return e.value
}

func (e *panicError) Stack() []byte {
	return e.stack
}

func (e *panicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}
