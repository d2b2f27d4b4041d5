package health

import (
	"github.com/dmitrymomot/mailbridge/core/handler"
	"github.com/dmitrymomot/mailbridge/core/response"
)

// Liveness reports that the process is up. It never checks dependencies, so
// it answers 200 {"ok":true,"message":"ok"} even when the relay is down.
func Liveness[C handler.Context](C) handler.Response {
	return response.OK("ok")
}
