package middleware

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/httprate"
	"github.com/redis/go-redis/v9"

	"github.com/hsm-gustavo/bucketlist/internal/api/respond"
)

// RateLimit caps requests per client IP in fixed windows. With a Redis client
// the counters are shared by every API instance; without one they live in
// process memory.
type RateLimit struct {
	Requests int
	Window   time.Duration
	Message  string
	// Prefix namespaces the Redis keys so separate limiters do not share counters.
	Prefix string
	Redis  *redis.Client
	Log    *slog.Logger
}

func (c RateLimit) Handler() func(http.Handler) http.Handler {
	if c.Redis != nil {
		l := &redisLimiter{cfg: c, now: time.Now}
		return l.middleware
	}
	return httprate.Limit(c.Requests, c.Window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(c.reject),
	)
}

func (c RateLimit) reject(w http.ResponseWriter, r *http.Request) {
	err := respond.JSON(w, http.StatusTooManyRequests, respond.MessageResponse{Message: c.Message})
	if err != nil && c.Log != nil {
		c.Log.ErrorContext(r.Context(), "failed to encode response", "status", http.StatusTooManyRequests, "error", err)
	}
}

type redisLimiter struct {
	cfg RateLimit
	now func() time.Time
}

func (l *redisLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		now := l.now()
		windowStart := now.Truncate(l.cfg.Window)
		reset := windowStart.Add(l.cfg.Window)
		key := fmt.Sprintf("ratelimit:%s:%s:%d", l.cfg.Prefix, clientIP(r), windowStart.Unix())

		pipe := l.cfg.Redis.TxPipeline()
		incr := pipe.Incr(r.Context(), key)
		pipe.Expire(r.Context(), key, l.cfg.Window)
		if _, err := pipe.Exec(r.Context()); err != nil {
			// Fail open: an unavailable limiter must not take the API down.
			l.cfg.Log.WarnContext(r.Context(), "rate limiter unavailable", "error", err)
			next.ServeHTTP(w, r)
			return
		}

		count := int(incr.Val())
		remaining := l.cfg.Requests - count
		if remaining < 0 {
			remaining = 0
		}

		h := w.Header()
		h.Set("X-RateLimit-Limit", strconv.Itoa(l.cfg.Requests))
		h.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		h.Set("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))

		if count > l.cfg.Requests {
			h.Set("Retry-After", strconv.Itoa(int(reset.Sub(now).Seconds())+1))
			l.cfg.reject(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
