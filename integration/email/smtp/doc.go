// Package smtp provides an SMTP-based implementation of the email.Sender interface.
//
// The client is built once from configuration and shared by every request
// handler. Construction validates the configuration shape only; it never
// opens a connection. Each Send dials the relay, authenticates, transfers one
// message and disconnects.
//
// Basic usage:
//
//	import (
//		"github.com/dmitrymomot/mailbridge/core/config"
//		"github.com/dmitrymomot/mailbridge/core/email"
//		"github.com/dmitrymomot/mailbridge/integration/email/smtp"
//	)
//
//	var cfg smtp.Config
//	config.MustLoad(&cfg)
//
//	client, err := smtp.New(cfg)
//	if err != nil {
//		// errors.Is(err, smtp.ErrTLSSetup) or errors.Is(err, email.ErrInvalidConfig)
//	}
//
//	msg, err := email.NewMessage(cfg.From, to, "Welcome!", "Thanks for joining.")
//	if err != nil {
//		// errors.Is(err, email.ErrInvalidPayload)
//	}
//
//	if err := client.Send(ctx, msg); err != nil {
//		// errors.Is(err, email.ErrFailedToSendEmail)
//	}
//
// # Configuration
//
//   - SMTP_HOST: relay hostname (required)
//   - SMTP_PORT: relay port, default 587
//   - SMTP_USERNAME / SMTP_PASSWORD: credentials (required)
//   - SMTP_FROM: sender mailbox, e.g. "Acme <noreply@acme.io>" (required)
//   - SMTP_TLS: encryption switch, default on
//   - SMTP_TIMEOUT: dial and command timeout, default 30s
//   - SMTP_HELO_NAME: EHLO name
//
// # TLS Policy
//
// With SMTP_TLS on, port 465 is dialed with implicit TLS and any other port
// must offer STARTTLS; a relay that does not is treated as a delivery failure.
// The host must be an IP literal or a valid DNS name, otherwise New returns
// ErrTLSSetup.
//
// With SMTP_TLS off the connection is never upgraded and PLAIN credentials
// travel in the clear. This is meant for relays on a trusted network only.
package smtp
