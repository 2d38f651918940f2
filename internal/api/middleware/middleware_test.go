package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsm-gustavo/bucketlist/internal/api/respond"
	"github.com/hsm-gustavo/bucketlist/internal/logging"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func requestFrom(addr string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/destinations", nil)
	req.RemoteAddr = addr
	return req
}

func TestSecurityHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	SecurityHeaders(okHandler).ServeHTTP(rec, requestFrom("192.0.2.1:1234"))

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "1; mode=block", rec.Header().Get("X-XSS-Protection"))
	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
}

func TestRateLimit_InProcess(t *testing.T) {
	limit := RateLimit{Requests: 2, Window: time.Minute, Message: "Too many requests, please try again later"}
	h := limit.Handler()(okHandler)

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, requestFrom("192.0.2.1:1234"))
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, requestFrom("192.0.2.1:5678"))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	var body respond.MessageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Too many requests, please try again later", body.Message)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, requestFrom("198.51.100.7:1234"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit_RedisUnavailableFailsOpen(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	var logs bytes.Buffer
	limit := RateLimit{
		Requests: 1,
		Window:   time.Minute,
		Message:  "Too many requests, please try again later",
		Prefix:   "api",
		Redis:    client,
		Log:      logging.New(&logs, "development", "warn"),
	}
	h := limit.Handler()(okHandler)

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, requestFrom("192.0.2.1:1234"))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Contains(t, logs.String(), "rate limiter unavailable")
}

func TestClientIP(t *testing.T) {
	assert.Equal(t, "192.0.2.1", clientIP(requestFrom("192.0.2.1:1234")))
	assert.Equal(t, "192.0.2.1", clientIP(requestFrom("192.0.2.1")))
}

func TestRecoverer_ReturnsGeneric500(t *testing.T) {
	var logs bytes.Buffer
	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	Recoverer(logging.New(&logs, "development", "info"))(panicking).ServeHTTP(rec, requestFrom("192.0.2.1:1234"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Internal server error"}`, rec.Body.String())
	assert.Contains(t, logs.String(), "panic recovered")
	assert.Contains(t, logs.String(), "boom")
}

func TestRequestLogger(t *testing.T) {
	var logs bytes.Buffer
	h := RequestLogger(logging.New(&logs, "development", "info"))(okHandler)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, requestFrom("192.0.2.1:1234"))

	out := logs.String()
	assert.Contains(t, out, "msg=request")
	assert.Contains(t, out, "method=GET")
	assert.Contains(t, out, "path=/api/destinations")
	assert.Contains(t, out, "status=200")
}
