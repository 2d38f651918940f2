package destination

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/hsm-gustavo/bucketlist/internal/api/apperr"
	"github.com/hsm-gustavo/bucketlist/internal/api/auth"
	"github.com/hsm-gustavo/bucketlist/internal/api/respond"
	"github.com/hsm-gustavo/bucketlist/internal/db"
)

var (
	errDestinationRequired = apperr.Validation("Destination is required")
	errCountryRequired     = apperr.Validation("Country is required")
	errInvalidPriority     = apperr.Validation("Priority must be low, medium, or high")
	errInvalidJSON         = apperr.Validation("Invalid JSON format")
	errDestinationNotFound = apperr.NotFound("Destination not found")
)

type DestinationRequest struct {
	Destination string `json:"destination" example:"Kyoto"`
	Country     string `json:"country" example:"Japan"`
	Notes       string `json:"notes" example:"Cherry blossom season"`
	Priority    string `json:"priority" example:"high" enums:"low,medium,high"`
	Visited     bool   `json:"visited" example:"false"`
}

// Validate trims the text fields and fills the default priority.
func (req DestinationRequest) Validate() (Input, error) {
	in := Input{
		Destination: strings.TrimSpace(req.Destination),
		Country:     strings.TrimSpace(req.Country),
		Notes:       strings.TrimSpace(req.Notes),
		Priority:    db.Priority(req.Priority),
		Visited:     req.Visited,
	}
	if in.Destination == "" {
		return Input{}, errDestinationRequired
	}
	if in.Country == "" {
		return Input{}, errCountryRequired
	}
	if in.Priority == "" {
		in.Priority = db.PriorityMedium
	}
	if !in.Priority.Valid() {
		return Input{}, errInvalidPriority
	}
	return in, nil
}

type ListResponse struct {
	Destinations []db.Destination `json:"destinations"`
}

type ItemResponse struct {
	Destination *db.Destination `json:"destination"`
}

type Handler struct {
	store Store
	resp  *respond.Writer
}

func NewHandler(store Store, resp *respond.Writer) *Handler {
	return &Handler{store: store, resp: resp}
}

// List godoc
// @Summary		List destinations
// @Description	Destinations of the current user, newest first
// @Tags			destinations
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	ListResponse
// @Failure		401	{object}	respond.MessageResponse
// @Failure		500	{object}	respond.MessageResponse
// @Router			/destinations [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := h.identity(w, r)
	if !ok {
		return
	}

	items, err := h.store.List(r.Context(), id.UserID)
	if err != nil {
		h.resp.Error(w, r, apperr.Unexpected(err))
		return
	}
	h.resp.JSON(w, http.StatusOK, ListResponse{Destinations: items})
}

// Create godoc
// @Summary		Add a destination
// @Tags			destinations
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Param			destination	body		DestinationRequest	true	"Destination"
// @Success		201			{object}	ItemResponse
// @Failure		400			{object}	respond.MessageResponse
// @Failure		401			{object}	respond.MessageResponse
// @Failure		500			{object}	respond.MessageResponse
// @Router			/destinations [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := h.identity(w, r)
	if !ok {
		return
	}
	in, ok := h.decode(w, r)
	if !ok {
		return
	}

	d, err := h.store.Create(r.Context(), id.UserID, in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.resp.JSON(w, http.StatusCreated, ItemResponse{Destination: d})
}

// Update godoc
// @Summary		Replace a destination
// @Tags			destinations
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Param			id			path		int					true	"Destination ID"
// @Param			destination	body		DestinationRequest	true	"Destination"
// @Success		200			{object}	ItemResponse
// @Failure		400			{object}	respond.MessageResponse
// @Failure		401			{object}	respond.MessageResponse
// @Failure		404			{object}	respond.MessageResponse
// @Failure		500			{object}	respond.MessageResponse
// @Router			/destinations/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.identity(w, r)
	if !ok {
		return
	}
	destID, ok := h.destinationID(w, r)
	if !ok {
		return
	}
	in, ok := h.decode(w, r)
	if !ok {
		return
	}

	d, err := h.store.Update(r.Context(), id.UserID, destID, in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.resp.JSON(w, http.StatusOK, ItemResponse{Destination: d})
}

// Delete godoc
// @Summary		Delete a destination
// @Tags			destinations
// @Produce		json
// @Security		BearerAuth
// @Param			id	path		int	true	"Destination ID"
// @Success		200	{object}	respond.MessageResponse
// @Failure		401	{object}	respond.MessageResponse
// @Failure		404	{object}	respond.MessageResponse
// @Failure		500	{object}	respond.MessageResponse
// @Router			/destinations/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.identity(w, r)
	if !ok {
		return
	}
	destID, ok := h.destinationID(w, r)
	if !ok {
		return
	}

	if err := h.store.Delete(r.Context(), id.UserID, destID); err != nil {
		h.fail(w, r, err)
		return
	}
	h.resp.Message(w, http.StatusOK, "Destination deleted successfully")
}

// ToggleVisited godoc
// @Summary		Toggle visited
// @Tags			destinations
// @Produce		json
// @Security		BearerAuth
// @Param			id	path		int	true	"Destination ID"
// @Success		200	{object}	ItemResponse
// @Failure		401	{object}	respond.MessageResponse
// @Failure		404	{object}	respond.MessageResponse
// @Failure		500	{object}	respond.MessageResponse
// @Router			/destinations/{id}/visited [patch]
func (h *Handler) ToggleVisited(w http.ResponseWriter, r *http.Request) {
	id, ok := h.identity(w, r)
	if !ok {
		return
	}
	destID, ok := h.destinationID(w, r)
	if !ok {
		return
	}

	d, err := h.store.ToggleVisited(r.Context(), id.UserID, destID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.resp.JSON(w, http.StatusOK, ItemResponse{Destination: d})
}

// Helpers

func (h *Handler) identity(w http.ResponseWriter, r *http.Request) (auth.Identity, bool) {
	id, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		h.resp.Error(w, r, auth.ErrMissingToken)
	}
	return id, ok
}

// destinationID treats a malformed id like a missing row.
func (h *Handler) destinationID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		h.resp.Error(w, r, errDestinationNotFound)
		return 0, false
	}
	return id, true
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (Input, bool) {
	var req DestinationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.resp.Error(w, r, errInvalidJSON)
		return Input{}, false
	}
	in, err := req.Validate()
	if err != nil {
		h.resp.Error(w, r, err)
		return Input{}, false
	}
	return in, true
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ErrNotFound) {
		h.resp.Error(w, r, errDestinationNotFound)
		return
	}
	h.resp.Error(w, r, apperr.Unexpected(err))
}
