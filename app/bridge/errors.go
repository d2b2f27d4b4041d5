package bridge

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/mailbridge/core/handler"
	"github.com/dmitrymomot/mailbridge/core/logger"
	"github.com/dmitrymomot/mailbridge/core/response"
	"github.com/dmitrymomot/mailbridge/core/router"
)

// Request rejection reasons. The error text is the message returned to the
// caller, so it must stay stable.
var (
	ErrMalformedBody    = errors.New("invalid request body")
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrEmptyBody        = errors.New("body cannot be empty")
	ErrEmptyRecipient   = errors.New("to cannot be empty")
	ErrInvalidRecipient = errors.New("invalid recipient email")
	ErrInvalidPayload   = errors.New("invalid email payload")
)

// ErrSendFailed is the only delivery failure a caller ever sees.
var ErrSendFailed = errors.New("smtp send failed")

// ValidationError rejects a request with 400 and the reason's text.
type ValidationError struct {
	Reason error
	Err    error
}

func reject(reason, cause error) *ValidationError {
	return &ValidationError{Reason: reason, Err: cause}
}

func (e *ValidationError) Error() string   { return e.Reason.Error() }
func (e *ValidationError) StatusCode() int { return http.StatusBadRequest }

// Unwrap exposes both the reason sentinel and the underlying cause.
func (e *ValidationError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Reason}
	}
	return []error{e.Reason, e.Err}
}

// DeliveryError reports that the relay did not accept the message.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string   { return ErrSendFailed.Error() + ": " + e.Err.Error() }
func (e *DeliveryError) StatusCode() int { return http.StatusInternalServerError }
func (e *DeliveryError) Unwrap() error   { return e.Err }

// ErrorHandler renders every failure as {"ok":false,"message":...}.
// Delivery failures keep their cause out of the response body; panics are
// logged with their stack and answered with a generic 500.
func ErrorHandler(log *slog.Logger) handler.ErrorHandler[*router.Context] {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return func(ctx *router.Context, err error) {
		var (
			panicErr    router.PanicError
			deliveryErr *DeliveryError
		)
		switch {
		case errors.As(err, &panicErr):
			log.ErrorContext(ctx, "handler panicked",
				logger.Component("bridge"),
				logger.Error(err),
				slog.String("stack", string(panicErr.Stack())),
			)
			err = response.ErrInternalServerError.WithError(err)
		case errors.As(err, &deliveryErr):
			err = response.NewHTTPError(http.StatusInternalServerError, ErrSendFailed.Error()).WithError(deliveryErr)
		}

		response.JSONErrorHandler(ctx, err)
	}
}
