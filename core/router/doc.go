// Package router adapts chi to typed handlers from package handler.
//
// Handlers return a handler.Response; the router runs it and sends any error,
// unmatched route or recovered panic to a single error handler:
//
//	r := router.New[*router.Context](
//		router.WithErrorHandler(renderJSONError),
//		router.WithLogger(log),
//	)
//	r.UseHTTP(middleware.RequestID())
//	r.Get("/healthz", healthz)
//	r.Post("/send-email", sendEmail)
//	r.Mount("/metrics", promhttp.Handler())
//
// Unmatched paths produce ErrNotFound and wrong methods ErrMethodNotAllowed.
// Both implement StatusCode() int, as should application errors that map to
// a specific status; StatusOf reads it and falls back to 500.
//
// Panics are wrapped in a PanicError carrying the value and stack. If the
// response has already started the panic is only logged.
//
// Custom context types need WithContextFactory; *Context works out of the box
// and reads path parameters with chi.URLParam.
package router
