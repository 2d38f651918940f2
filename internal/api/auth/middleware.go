package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/hsm-gustavo/bucketlist/internal/api/apperr"
	"github.com/hsm-gustavo/bucketlist/internal/api/respond"
)

type contextKey string

const identityContextKey contextKey = "identity"

// WithIdentity returns a copy of ctx carrying the authenticated identity.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, id)
}

// IdentityFromContext returns the identity stored by Middleware.Authenticate.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityContextKey).(Identity)
	return id, ok
}

type Middleware struct {
	tokens *TokenService
	resp   *respond.Writer
	log    *slog.Logger
}

func NewMiddleware(tokens *TokenService, resp *respond.Writer, log *slog.Logger) *Middleware {
	return &Middleware{tokens: tokens, resp: resp, log: log}
}

// BearerToken extracts <token> from "Bearer <token>". Any other shape,
// including a lowercase scheme or extra spaces, returns ErrMissingToken.
func BearerToken(header string) (string, error) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", ErrMissingToken
	}
	return parts[1], nil
}

// Authenticate rejects the request with 401 unless it carries a valid bearer
// token; otherwise the token's identity is put in the request context.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := m.identify(r)
		if err != nil {
			m.log.DebugContext(r.Context(), "request rejected",
				"path", r.URL.Path,
				"reason", apperr.KindOf(err).String(),
			)
			m.resp.Error(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
	})
}

func (m *Middleware) identify(r *http.Request) (Identity, error) {
	tokenStr, err := BearerToken(r.Header.Get("Authorization"))
	if err != nil {
		return Identity{}, err
	}

	claims, err := m.tokens.Verify(tokenStr)
	if err != nil {
		return Identity{}, err
	}

	id, err := claims.Identity()
	if err != nil {
		return Identity{}, ErrInvalidToken
	}
	return id, nil
}
