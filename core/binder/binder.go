package binder

import "net/http"

// Binder decodes request data into v, which must be a non-nil pointer.
type Binder func(r *http.Request, v any) error
