package health

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/mailbridge/core/handler"
	"github.com/dmitrymomot/mailbridge/core/logger"
	"github.com/dmitrymomot/mailbridge/core/response"
)

// DefaultCheckTimeout bounds all dependency checks of one readiness probe.
const DefaultCheckTimeout = 5 * time.Second

// Readiness runs every check in order and answers 200 {"ok":true,"message":"ready"}
// when all pass, or 503 on the first failure. The failure cause is logged,
// never returned to the caller.
func Readiness[C handler.Context](log *slog.Logger, checks ...func(context.Context) error) handler.HandlerFunc[C] {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return func(ctx C) handler.Response {
		checkCtx, cancel := context.WithTimeout(ctx, DefaultCheckTimeout)
		defer cancel()

		for _, check := range checks {
			if err := check(checkCtx); err != nil {
				log.ErrorContext(ctx, "readiness check failed", logger.Component("health"), logger.Error(err))
				return response.Error(response.ErrServiceUnavailable)
			}
		}

		return response.OK("ready")
	}
}
