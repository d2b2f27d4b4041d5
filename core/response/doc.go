// Package response builds handler.Response values and renders errors.
//
// Every endpoint of the service answers with the Result envelope:
//
//	return response.OK("sent")                          // 200 {"ok":true,"message":"sent"}
//	return response.Fail(http.StatusBadRequest, "nope") // 400 {"ok":false,"message":"nope"}
//
// Handlers that fail return response.Error(err) and let the router's error
// handler decide the status. JSONErrorHandler maps errors through AsHTTPError:
// HTTPError values are used as is, other errors take their status from a
// StatusCode() method and default to 500. Messages of 5xx errors are replaced
// by the generic status text.
package response
