package respond

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsm-gustavo/bucketlist/internal/api/apperr"
	"github.com/hsm-gustavo/bucketlist/internal/logging"
)

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body MessageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Message
}

func TestWriter_Error_UsesKindStatusAndMessage(t *testing.T) {
	rw := New(logging.Discard(), false)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	err := fmt.Errorf("login: %w", apperr.New(apperr.KindInvalidCredentials, "Invalid credentials"))
	rw.Error(rec, req, err)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "Invalid credentials", decodeMessage(t, rec))
}

func TestWriter_Error_HidesUnexpectedDetailInProduction(t *testing.T) {
	rw := New(logging.Discard(), false)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	rw.Error(rec, req, errors.New("dial tcp 10.0.0.3:3306: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decodeMessage(t, rec))
}

func TestWriter_Error_ShowsUnexpectedDetailWhenVerbose(t *testing.T) {
	rw := New(logging.Discard(), true)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	rw.Error(rec, req, errors.New("db down"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "db down", decodeMessage(t, rec))
}

type brokenWriter struct {
	header http.Header
	status int
}

func (b *brokenWriter) Header() http.Header       { return b.header }
func (b *brokenWriter) WriteHeader(status int)    { b.status = status }
func (b *brokenWriter) Write([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestWriter_JSON_LogsEncodeFailure(t *testing.T) {
	var logs bytes.Buffer
	rw := New(logging.New(&logs, "development", "info"), false)
	w := &brokenWriter{header: http.Header{}}

	rw.Message(w, http.StatusOK, "ok")

	assert.Equal(t, http.StatusOK, w.status)
	assert.Contains(t, logs.String(), "failed to encode response")
	assert.Contains(t, logs.String(), "connection reset")
}

func TestJSON_ReturnsEncodeError(t *testing.T) {
	assert.Error(t, JSON(&brokenWriter{header: http.Header{}}, http.StatusOK, MessageResponse{Message: "ok"}))
	assert.NoError(t, JSON(httptest.NewRecorder(), http.StatusOK, MessageResponse{Message: "ok"}))
}
