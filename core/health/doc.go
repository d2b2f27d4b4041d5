// Package health provides liveness and readiness handlers.
//
//	r.Get("/healthz", health.Liveness[*router.Context])
//	r.Get("/readyz", health.Readiness[*router.Context](log, smtpClient.Ping))
//
// Checks follow the func(context.Context) error signature and share a
// DefaultCheckTimeout budget per probe.
package health
