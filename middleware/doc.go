// Package middleware provides the HTTP middlewares the bridge mounts in front
// of its routes.
//
// Most of them are plain func(http.Handler) http.Handler values so they also
// wrap the router's not-found and method-not-allowed responses:
//
//	r.UseHTTP(
//		middleware.RequestID(),
//		middleware.Logging(log),
//		metrics.Middleware(),
//		middleware.CORS(middleware.CORSConfig{AllowOrigins: origins}),
//	)
//
// BodyLimit is a typed handler.Middleware because its rejection is rendered
// through the router's error handler like any other handler error:
//
//	r.Use(middleware.BodyLimitWithConfig[*router.Context](middleware.BodyLimitConfig{
//		MaxSize: 1 << 20,
//	}))
//
// RequestID reuses a well-formed incoming X-Request-ID and otherwise
// generates a UUID. RequestIDExtractor plugs the ID into logger.New so every
// *Context log call carries it.
package middleware
