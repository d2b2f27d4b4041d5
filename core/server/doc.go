// Package server runs an http.Handler with production timeouts and graceful
// shutdown.
//
// # Basic Usage
//
//	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	eg, ctx := errgroup.WithContext(ctx)
//	eg.Go(srv.Run(ctx, handler))
//	if err := eg.Wait(); err != nil {
//		return err
//	}
//
// Start binds the listener synchronously, so a busy port surfaces as ErrListen
// right away instead of after the first request. Ready and Addr expose the
// bound address, which is handy with port 0 in tests.
//
// # Configuration
//
//   - HTTP_BIND: listen address, default 127.0.0.1:8080
//   - SERVER_READ_TIMEOUT / SERVER_WRITE_TIMEOUT / SERVER_IDLE_TIMEOUT:
//     15s / 45s / 60s
//   - SERVER_SHUTDOWN_TIMEOUT: drain budget, default 30s
//   - SERVER_MAX_HEADER_BYTES: default 1 MiB
//   - SERVER_TLS_CERT_FILE / SERVER_TLS_KEY_FILE: serve HTTPS when both are set
//
// The write timeout must stay above the SMTP delivery timeout, otherwise a
// slow relay makes the server drop the connection before the handler answers.
package server
