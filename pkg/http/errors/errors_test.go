package errors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusResponder(status int) func(http.ResponseWriter) {
	return func(w http.ResponseWriter) { RespondStatus(w, status) }
}

func TestRespondStatusEnvelope(t *testing.T) {
	cases := []struct {
		name    string
		respond func(http.ResponseWriter)
		status  int
		message string
	}{
		{"bad request", statusResponder(http.StatusBadRequest), http.StatusBadRequest, "bad request"},
		{"not found", RespondNotFound, http.StatusNotFound, "resource not found"},
		{"method not allowed", RespondMethodNotAllowed, http.StatusMethodNotAllowed, "method not allowed"},
		{"unprocessable", statusResponder(http.StatusUnprocessableEntity), http.StatusUnprocessableEntity, "unprocessable"},
		{"internal", statusResponder(http.StatusInternalServerError), http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tc.respond(rec)

			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tc.status, body.Error)
			assert.Equal(t, tc.message, body.Message)
		})
	}
}

func TestMessageFallsBackToStatusText(t *testing.T) {
	assert.Equal(t, "Bad Gateway", Message(http.StatusBadGateway))
}
