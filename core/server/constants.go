package server

import "time"

const (
	// DefaultAddr keeps the bridge on loopback unless told otherwise.
	DefaultAddr = "127.0.0.1:8080"

	DefaultReadTimeout = 15 * time.Second

	// DefaultWriteTimeout leaves room for a full SMTP delivery (30s by default).
	DefaultWriteTimeout = 45 * time.Second

	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
	DefaultMaxHeaderBytes  = 1 << 20
)
