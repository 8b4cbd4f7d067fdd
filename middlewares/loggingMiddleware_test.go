package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLoggerAssignsRequestID(t *testing.T) {
	var seenID string
	handler := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/menu", nil))

	require.NotEmpty(t, seenID)
	assert.Equal(t, seenID, recorder.Header().Get("X-Request-ID"))
	assert.Equal(t, http.StatusTeapot, recorder.Code)
}

func TestRequestIDFromContextWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	assert.Equal(t, "", RequestIDFromContext(req.Context()))
}
