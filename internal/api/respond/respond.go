package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/hsm-gustavo/bucketlist/internal/api/apperr"
)

type MessageResponse struct {
	Message string `json:"message" example:"Invalid credentials"`
}

// Writer renders JSON bodies and maps errors onto the apperr taxonomy.
// Verbose exposes the text of unexpected errors; it is off in production.
type Writer struct {
	Log     *slog.Logger
	Verbose bool
}

func New(log *slog.Logger, verbose bool) *Writer {
	return &Writer{Log: log, Verbose: verbose}
}

func (rw *Writer) JSON(w http.ResponseWriter, status int, v any) {
	if err := JSON(w, status, v); err != nil {
		rw.Log.Error("failed to encode response", "status", status, "error", err)
	}
}

func (rw *Writer) Message(w http.ResponseWriter, status int, message string) {
	rw.JSON(w, status, MessageResponse{Message: message})
}

// Error writes {message} with the status of err's kind. Unexpected errors are
// logged with full detail before being reduced to a generic message.
func (rw *Writer) Error(w http.ResponseWriter, r *http.Request, err error) {
	kind := apperr.KindOf(err)
	status := apperr.Status(kind)

	if kind == apperr.KindUnexpected {
		rw.Log.ErrorContext(r.Context(), "unexpected error",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()),
			"error", err,
		)
		message := "Internal server error"
		if rw.Verbose {
			message = err.Error()
		}
		rw.Message(w, status, message)
		return
	}

	rw.Message(w, status, clientMessage(err))
}

func clientMessage(err error) string {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return ae.Message
	}
	return err.Error()
}

// JSON writes v with the given status. The header is already sent when the
// returned encode error occurs, so callers can only log it.
func JSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}
