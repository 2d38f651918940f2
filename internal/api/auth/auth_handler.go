package auth

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/hsm-gustavo/bucketlist/internal/api/apperr"
	"github.com/hsm-gustavo/bucketlist/internal/api/respond"
)

// Request/Response structures

type SignupRequest struct {
	Name     string `json:"name" example:"Ana"`
	Email    string `json:"email" example:"a@x.com"`
	Password string `json:"password" example:"secret1"`
}

type LoginRequest struct {
	Email    string `json:"email" example:"a@x.com"`
	Password string `json:"password" example:"secret1"`
}

type LoginResponse struct {
	Token string     `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	User  PublicUser `json:"user"`
}

type MeUser struct {
	ID        int64     `json:"id" example:"1"`
	Name      string    `json:"name" example:"Ana"`
	Email     string    `json:"email" example:"a@x.com"`
	CreatedAt time.Time `json:"created_at" example:"2024-05-01T12:00:00Z"`
}

type MeResponse struct {
	User MeUser `json:"user"`
}

var errInvalidJSON = apperr.Validation("Invalid JSON format")

type AuthHandler struct {
	service *AuthService
	resp    *respond.Writer
}

func NewAuthHandler(service *AuthService, resp *respond.Writer) *AuthHandler {
	return &AuthHandler{service: service, resp: resp}
}

// Signup godoc
// @Summary		Sign up
// @Description	Create an account with name, email and password
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			user	body		SignupRequest			true	"Signup data"
// @Success		201		{object}	respond.MessageResponse	"Signup successful"
// @Failure		400		{object}	respond.MessageResponse	"Missing fields"
// @Failure		409		{object}	respond.MessageResponse	"Email already in use"
// @Failure		500		{object}	respond.MessageResponse	"Internal server error"
// @Router			/auth/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.resp.Error(w, r, errInvalidJSON)
		return
	}

	if _, err := h.service.Signup(r.Context(), req.Name, req.Email, req.Password); err != nil {
		h.resp.Error(w, r, err)
		return
	}

	h.resp.Message(w, http.StatusCreated, "Signup successful")
}

// Login godoc
// @Summary		Log in
// @Description	Verify credentials and return a bearer token valid for seven days
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			credentials	body		LoginRequest			true	"Login credentials"
// @Success		200			{object}	LoginResponse			"Login successful"
// @Failure		400			{object}	respond.MessageResponse	"Missing fields"
// @Failure		401			{object}	respond.MessageResponse	"Invalid credentials"
// @Failure		500			{object}	respond.MessageResponse	"Internal server error"
// @Router			/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.resp.Error(w, r, errInvalidJSON)
		return
	}

	result, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.resp.Error(w, r, err)
		return
	}

	h.resp.JSON(w, http.StatusOK, LoginResponse{Token: result.Token, User: result.User})
}

// Me godoc
// @Summary		Current user
// @Description	Return the account of the token's bearer
// @Tags			auth
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	MeResponse				"User information"
// @Failure		401	{object}	respond.MessageResponse	"Missing, invalid or expired token"
// @Failure		404	{object}	respond.MessageResponse	"User not found"
// @Failure		500	{object}	respond.MessageResponse	"Internal server error"
// @Router			/auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := IdentityFromContext(r.Context())
	if !ok {
		h.resp.Error(w, r, ErrMissingToken)
		return
	}

	u, err := h.service.Me(r.Context(), id.UserID)
	if err != nil {
		h.resp.Error(w, r, err)
		return
	}

	h.resp.JSON(w, http.StatusOK, MeResponse{User: MeUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}})
}
