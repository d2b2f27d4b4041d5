package handler

import (
	"context"
	"net/http"
)

// Context is the request context handed to every HandlerFunc.
// It is a context.Context bound to the request, so it can be passed straight
// to blocking calls and is cancelled when the client goes away.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	Param(key string) string
	SetValue(key, val any)
}
