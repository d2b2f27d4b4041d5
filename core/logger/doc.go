// Package logger builds slog loggers with environment presets and provides
// nil-safe attribute helpers for the fields the service logs most often.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/mailbridge/core/logger"
//
//	log := logger.New(logger.WithDevelopment("mailbridge"))
//	log.Info("server starting", logger.Component("http"), logger.Addr(":8080"))
//
// # Environment Presets
//
//	logger.WithDevelopment(name) // text, debug
//	logger.WithStaging(name)     // JSON, info
//	logger.WithProduction(name)  // JSON, info
//	logger.WithEnvironment(env, name)
//
// Options apply in order, so WithLevel placed after a preset overrides the
// preset's level:
//
//	level, _ := logger.ParseLevel("warn")
//	log := logger.New(logger.WithProduction("mailbridge"), logger.WithLevel(level))
//
// # Context Extractors
//
// Extractors add request-scoped attributes to every *Context call:
//
//	log := logger.New(
//		logger.WithProduction("mailbridge"),
//		logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
//			id := middleware.GetRequestID(ctx)
//			return logger.RequestID(id), id != ""
//		}),
//	)
//	log.InfoContext(r.Context(), "email sent")
//
// # Attribute Helpers
//
// Helpers such as Error, RequestID and Recipient return an empty attribute for
// empty input, which slog omits, so they can be passed without nil checks:
//
//	log.Error("delivery failed", logger.Recipient(to), logger.Error(err))
//
// Recipient masks the local part of the address before it reaches the log.
package logger
