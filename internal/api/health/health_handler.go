package health

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/hsm-gustavo/bucketlist/internal/api/respond"
)

type Response struct {
	OK        bool   `json:"ok" example:"true"`
	Timestamp string `json:"timestamp" example:"2024-05-01T12:00:00Z"`
}

// HealthHandler godoc
//
//	@Summary		Health check endpoint
//	@Description	Check if the API is running
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	Response	"API is healthy"
//	@Router			/health [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	err := respond.JSON(w, http.StatusOK, Response{
		OK:        true,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to encode health response", "error", err)
	}
}
