package binder

import "errors"

var (
	// ErrMissingContentType means the request has no Content-Type header.
	ErrMissingContentType = errors.New("missing content type")

	// ErrUnsupportedMediaType means the Content-Type is not JSON.
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrRequestTooLarge means the body exceeds the binder's size limit.
	ErrRequestTooLarge = errors.New("request body too large")

	// ErrFailedToParseJSON covers empty bodies, syntax errors, type
	// mismatches and trailing data.
	ErrFailedToParseJSON = errors.New("failed to parse JSON request body")
)
