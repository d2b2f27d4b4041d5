package response

import (
	"net/http"

	"github.com/dmitrymomot/mailbridge/core/handler"
)

// Render runs resp against the context's writer. A rendering error becomes a
// plain 500 unless the response has already started.
func Render(ctx handler.Context, resp handler.Response) {
	if resp == nil {
		return
	}
	if err := resp(ctx.ResponseWriter(), ctx.Request()); err != nil && !written(ctx.ResponseWriter()) {
		http.Error(ctx.ResponseWriter(), http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// String creates a text/plain response with 200 OK status.
func String(content string) handler.Response {
	return StringWithStatus(content, http.StatusOK)
}

// StringWithStatus creates a text/plain response with a custom status code.
func StringWithStatus(content string, status int) handler.Response {
	return func(w http.ResponseWriter, _ *http.Request) error {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		if content == "" {
			return nil
		}
		_, err := w.Write([]byte(content))
		return err
	}
}

// Status creates an empty response with the given status code.
func Status(code int) handler.Response {
	return func(w http.ResponseWriter, _ *http.Request) error {
		if code == 0 {
			code = http.StatusOK
		}
		w.WriteHeader(code)
		return nil
	}
}

// written reports whether w is known to have sent its status line.
func written(w http.ResponseWriter) bool {
	ww, ok := w.(interface{ Written() bool })
	return ok && ww.Written()
}
