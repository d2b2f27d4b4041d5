// Package handler defines the request-processing contract shared by the
// router, the response helpers and the application handlers.
//
// A handler receives a typed request context and returns a Response instead
// of writing to the ResponseWriter directly. The router invokes the Response
// and hands any error to a single ErrorHandler, so error rendering lives in
// one place:
//
//	func health(ctx *router.Context) handler.Response {
//		return response.JSON(map[string]any{"ok": true})
//	}
//
// Middlewares compose with Chain; the first middleware runs outermost:
//
//	h := handler.Chain(health, withTimer, withAudit)
//
// Context embeds context.Context and is bound to the request, so it can be
// passed directly to blocking calls such as email delivery.
package handler
