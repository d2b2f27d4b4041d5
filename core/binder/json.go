package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20

type jsonOptions struct {
	maxSize int64
	strict  bool
}

// JSONOption configures the JSON binder.
type JSONOption func(*jsonOptions)

// WithMaxSize overrides DefaultMaxJSONSize. Non-positive values are ignored.
func WithMaxSize(n int64) JSONOption {
	return func(o *jsonOptions) {
		if n > 0 {
			o.maxSize = n
		}
	}
}

// WithStrict rejects bodies that contain fields unknown to the target struct.
func WithStrict() JSONOption {
	return func(o *jsonOptions) {
		o.strict = true
	}
}

// JSON creates a binder for application/json bodies (and +json media types).
// Exactly one JSON value is accepted; anything after it is an error.
// Unknown fields are ignored unless WithStrict is set.
//
//	var req SendRequest
//	if err := binder.JSON()(r, &req); err != nil {
//		return response.Error(err)
//	}
func JSON(opts ...JSONOption) Binder {
	o := jsonOptions{maxSize: DefaultMaxJSONSize}
	for _, opt := range opts {
		opt(&o)
	}

	return func(r *http.Request, v any) error {
		if err := r.Context().Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}

		if err := checkJSONContentType(r.Header.Get("Content-Type")); err != nil {
			return err
		}

		if r.Body == nil {
			return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}

		// One extra byte tells an exact-limit body from an oversized one.
		body, err := io.ReadAll(io.LimitReader(r.Body, o.maxSize+1))
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				return fmt.Errorf("%w: limit is %d bytes", ErrRequestTooLarge, maxErr.Limit)
			}
			return fmt.Errorf("%w: read body: %v", ErrFailedToParseJSON, err)
		}
		if int64(len(body)) > o.maxSize {
			return fmt.Errorf("%w: limit is %d bytes", ErrRequestTooLarge, o.maxSize)
		}

		dec := json.NewDecoder(bytes.NewReader(body))
		if o.strict {
			dec.DisallowUnknownFields()
		}

		if err := dec.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
			}
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}

		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: unexpected data after JSON value", ErrFailedToParseJSON)
		}

		return nil
	}
}

func checkJSONContentType(contentType string) error {
	if strings.TrimSpace(contentType) == "" {
		return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
	}
	if mediaType == "application/json" || strings.HasSuffix(mediaType, "+json") {
		return nil
	}
	return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mediaType)
}
