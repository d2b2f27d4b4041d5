package response

import (
	"net/http"
	"strings"
)

// HTTPError is an error with a status code and a message that is safe to
// show to clients. The wrapped cause is never rendered.
type HTTPError struct {
	Status  int
	Message string
	Err     error
}

// NewHTTPError creates an HTTPError. An empty message defaults to the
// lower-cased status text, e.g. "bad request".
func NewHTTPError(status int, message string) HTTPError {
	if message == "" {
		message = statusMessage(status)
	}
	return HTTPError{Status: status, Message: message}
}

func (e HTTPError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// StatusCode returns the HTTP status code for the error.
func (e HTTPError) StatusCode() int {
	return e.Status
}

func (e HTTPError) Unwrap() error {
	return e.Err
}

// WithMessage returns a copy with a different public message.
func (e HTTPError) WithMessage(message string) HTTPError {
	e.Message = message
	return e
}

// WithError returns a copy that wraps err as the cause.
func (e HTTPError) WithError(err error) HTTPError {
	e.Err = err
	return e
}

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "")
	ErrMethodNotAllowed    = NewHTTPError(http.StatusMethodNotAllowed, "")
	ErrRequestTooLarge     = NewHTTPError(http.StatusRequestEntityTooLarge, "")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "")
	ErrServiceUnavailable  = NewHTTPError(http.StatusServiceUnavailable, "")
)

func statusMessage(status int) string {
	text := http.StatusText(status)
	if text == "" {
		text = http.StatusText(http.StatusInternalServerError)
	}
	return strings.ToLower(text)
}
