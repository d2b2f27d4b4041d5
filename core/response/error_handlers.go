package response

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/mailbridge/core/handler"
)

type statusCode interface {
	StatusCode() int
}

// AsHTTPError converts any error into an HTTPError.
//
// An HTTPError anywhere in the chain is returned as is. Otherwise the status
// comes from a StatusCode() method, defaulting to 500. Client errors keep
// err.Error() as their message; server errors get the generic status text so
// internal details never leak.
func AsHTTPError(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	status := http.StatusInternalServerError
	var sc statusCode
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}

	if status < http.StatusInternalServerError && err != nil {
		return HTTPError{Status: status, Message: err.Error(), Err: err}
	}
	return NewHTTPError(status, "").WithError(err)
}

// ErrorHandler renders errors as plain text.
func ErrorHandler[C handler.Context](ctx C, err error) {
	if written(ctx.ResponseWriter()) {
		return
	}
	httpErr := AsHTTPError(err)
	Render(ctx, StringWithStatus(httpErr.Message, httpErr.Status))
}

// JSONErrorHandler renders errors as {"ok":false,"message":...}.
func JSONErrorHandler[C handler.Context](ctx C, err error) {
	if written(ctx.ResponseWriter()) {
		return
	}
	httpErr := AsHTTPError(err)
	Render(ctx, Fail(httpErr.Status, httpErr.Message))
}
