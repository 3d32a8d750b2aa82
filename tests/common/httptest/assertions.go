//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"parkshare/internal/handler/httperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccessResponse checks the status code and, for 2xx, decodes the body into target when one is given.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "status mismatch, body: %s", w.Body.String()) {
		return
	}
	if target != nil && expectedStatus >= 200 && expectedStatus < 300 {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "undecodable body: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status code and that the error envelope's message
// contains expectedMsg. An empty expectedMsg only checks that the envelope decodes.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) httperr.Response {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "status mismatch, body: %s", w.Body.String())

	var resp httperr.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "undecodable error body: %s", w.Body.String())
	if expectedMsg != "" {
		assert.Contains(t, resp.Error.Message, expectedMsg)
	}
	return resp
}

// AssertConflictResponse checks for a 409 naming conflictID as the booking
// that already holds the slot.
func AssertConflictResponse(t *testing.T, w *httptest.ResponseRecorder, conflictID uuid.UUID) {
	t.Helper()

	require.Equal(t, http.StatusConflict, w.Code, "status mismatch, body: %s", w.Body.String())

	var resp struct {
		Detail httperr.ConflictDetail `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "undecodable error body: %s", w.Body.String())
	assert.Equal(t, conflictID.String(), resp.Detail.ConflictingBookingID)
}

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for name, value := range expected {
		assert.Equal(t, value, w.Header().Get(name), "header %s", name)
	}
}
