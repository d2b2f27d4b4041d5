// Package binder decodes HTTP request bodies into Go values.
//
// The JSON binder checks the Content-Type, enforces a size limit (1 MiB by
// default), decodes exactly one JSON value and rejects trailing data:
//
//	bind := binder.JSON()
//
//	var req struct {
//		Title *string `json:"title"`
//	}
//	if err := bind(r, &req); err != nil {
//		switch {
//		case errors.Is(err, binder.ErrMissingContentType),
//			errors.Is(err, binder.ErrUnsupportedMediaType):
//			// 415 or 400
//		case errors.Is(err, binder.ErrRequestTooLarge):
//			// 413 or 400
//		default:
//			// binder.ErrFailedToParseJSON
//		}
//	}
//
// Unknown fields are ignored by default; WithStrict turns them into errors.
// Pointer fields let callers tell a missing key from an empty value.
package binder
