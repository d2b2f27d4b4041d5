package server

import "errors"

var (
	ErrMissingAddress       = errors.New("server address is required")
	ErrServerAlreadyRunning = errors.New("server is already running")
	ErrServerClosed         = errors.New("server has already been used")
	ErrListen               = errors.New("failed to bind listener")
	ErrShutdown             = errors.New("server shutdown error")
	ErrFailedLoadCert       = errors.New("failed to load certificate")
)
