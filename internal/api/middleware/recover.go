package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/hsm-gustavo/bucketlist/internal/api/respond"
)

// Recoverer turns a panic into the generic 500 response and logs the stack.
func Recoverer(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.ErrorContext(r.Context(), "panic recovered",
					"panic", rec,
					"method", r.Method,
					"path", r.URL.Path,
					"request_id", middleware.GetReqID(r.Context()),
					"stack", string(debug.Stack()),
				)
				err := respond.JSON(w, http.StatusInternalServerError, respond.MessageResponse{Message: "Internal server error"})
				if err != nil {
					log.ErrorContext(r.Context(), "failed to encode response", "status", http.StatusInternalServerError, "error", err)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
