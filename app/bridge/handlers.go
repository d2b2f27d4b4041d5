package bridge

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/mailbridge/core/binder"
	"github.com/dmitrymomot/mailbridge/core/email"
	"github.com/dmitrymomot/mailbridge/core/handler"
	"github.com/dmitrymomot/mailbridge/core/logger"
	"github.com/dmitrymomot/mailbridge/core/response"
	"github.com/dmitrymomot/mailbridge/core/router"
)

// Handlers runs the send pipeline against one shared Sender.
// It holds no per-request state and is safe for concurrent use.
type Handlers struct {
	sender  email.Sender
	from    email.Mailbox
	bind    binder.Binder
	log     *slog.Logger
	metrics *Metrics
}

// NewHandlers wires the pipeline. log and metrics may be nil.
func NewHandlers(sender email.Sender, from email.Mailbox, log *slog.Logger, metrics *Metrics) *Handlers {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Handlers{
		sender:  sender,
		from:    from,
		bind:    binder.JSON(),
		log:     log.With(logger.Component("bridge")),
		metrics: metrics,
	}
}

// SendEmail handles POST /send-email.
func (h *Handlers) SendEmail(ctx *router.Context) handler.Response {
	var req SendRequest
	if err := h.bind(ctx.Request(), &req); err != nil {
		h.metrics.observe(resultRejected)
		h.log.DebugContext(ctx, "request rejected", logger.Error(err))
		return response.Error(reject(ErrMalformedBody, err))
	}

	if err := h.Send(ctx, req); err != nil {
		return response.Error(err)
	}
	return response.OK("sent")
}

// Send validates req, builds the message and hands it to the Sender once.
// It returns a *ValidationError when the request is rejected and a
// *DeliveryError when the relay fails.
func (h *Handlers) Send(ctx context.Context, req SendRequest) error {
	msg, err := req.Message(h.from)
	if err != nil {
		h.metrics.observe(resultRejected)
		h.log.DebugContext(ctx, "request rejected", logger.Error(err))
		return err
	}

	if err := h.sender.Send(ctx, msg); err != nil {
		h.metrics.observe(resultFailed)
		h.log.ErrorContext(ctx, "email delivery failed",
			logger.Event("email.failed"),
			logger.Recipient(msg.To.Address),
			logger.Error(err),
		)
		return &DeliveryError{Err: err}
	}

	h.metrics.observe(resultSent)
	h.log.InfoContext(ctx, "email sent",
		logger.Event("email.sent"),
		logger.Recipient(msg.To.Address),
	)
	return nil
}

// IsRejected reports whether err means the request itself was invalid.
func IsRejected(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
