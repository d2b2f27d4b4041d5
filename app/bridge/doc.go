// Package bridge assembles the HTTP to SMTP email bridge.
//
// The HTTP surface:
//
//	GET  /healthz     liveness, always {"ok":true,"message":"ok"}
//	GET  /readyz      readiness, dials the relay
//	POST /send-email  {"title":...,"to":...,"body":...}
//	GET  /metrics     prometheus exposition (METRICS_ENABLED)
//
// Every response is a JSON envelope {"ok":bool,"message":string}. A send
// request is validated in a fixed order (title, body, recipient, payload)
// and the first failure is returned as 400 with its reason. A relay failure
// is 500 "smtp send failed"; its cause is logged and never returned.
//
// Typical wiring:
//
//	app, err := bridge.NewApp(bridge.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(app.Run(ctx))
//	return g.Wait()
package bridge
