package bridge_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailbridge/app/bridge"
	"github.com/dmitrymomot/mailbridge/core/handler"
	"github.com/dmitrymomot/mailbridge/core/response"
	"github.com/dmitrymomot/mailbridge/core/router"
)

func TestErrorHandler(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&logs, nil))

	r := router.New(router.WithErrorHandler(bridge.ErrorHandler(log)))
	r.Get("/panic", func(*router.Context) handler.Response {
		panic("boom")
	})
	r.Get("/delivery", func(*router.Context) handler.Response {
		return response.Error(&bridge.DeliveryError{Err: errors.New("dial tcp 10.0.0.1:587: i/o timeout")})
	})

	tests := []struct {
		path   string
		status int
		want   string
	}{
		{"/panic", http.StatusInternalServerError, "internal server error"},
		{"/delivery", http.StatusInternalServerError, "smtp send failed"},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

		assert.Equal(t, tt.status, w.Code, tt.path)
		var res response.Result
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, response.Result{OK: false, Message: tt.want}, res, tt.path)
		assert.NotContains(t, w.Body.String(), "10.0.0.1")
	}

	assert.Contains(t, logs.String(), "handler panicked")
	assert.Contains(t, logs.String(), `"stack"`)
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	cause := errors.New("mail: no angle-addr")
	err := error(&bridge.ValidationError{Reason: bridge.ErrInvalidRecipient, Err: cause})

	assert.Equal(t, "invalid recipient email", err.Error())
	assert.ErrorIs(t, err, bridge.ErrInvalidRecipient)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusBadRequest, router.StatusOf(err))

	httpErr := response.AsHTTPError(err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "invalid recipient email", httpErr.Message)
}
