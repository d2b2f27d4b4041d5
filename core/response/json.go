package response

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/mailbridge/core/handler"
)

// Result is the body every endpoint of the service answers with.
type Result struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// OK renders 200 {"ok":true,"message":message}.
func OK(message string) handler.Response {
	return JSONWithStatus(Result{OK: true, Message: message}, http.StatusOK)
}

// Fail renders {"ok":false,"message":message} with the given status.
func Fail(status int, message string) handler.Response {
	return JSONWithStatus(Result{OK: false, Message: message}, status)
}

// JSON creates an application/json response with 200 OK status.
func JSON(v any) handler.Response {
	return JSONWithStatus(v, http.StatusOK)
}

// JSONWithStatus creates an application/json response with a custom status code.
// A zero status means 200, or 204 when v is nil.
func JSONWithStatus(v any, status int) handler.Response {
	return func(w http.ResponseWriter, _ *http.Request) error {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")

		if status == 0 {
			status = http.StatusOK
			if v == nil {
				status = http.StatusNoContent
			}
		}
		w.WriteHeader(status)

		switch status {
		case http.StatusNoContent, http.StatusNotModified:
			return nil
		}
		return json.NewEncoder(w).Encode(v)
	}
}
