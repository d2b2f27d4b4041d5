package response

import (
	"net/http"

	"github.com/dmitrymomot/mailbridge/core/handler"
)

// Error returns a response that hands err to the router's error handler.
func Error(err error) handler.Response {
	return func(http.ResponseWriter, *http.Request) error {
		return err
	}
}
