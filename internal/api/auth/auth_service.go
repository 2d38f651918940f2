package auth

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/hsm-gustavo/bucketlist/internal/api/apperr"
	"github.com/hsm-gustavo/bucketlist/internal/api/user"
	"github.com/hsm-gustavo/bucketlist/internal/db"
)

var (
	ErrSignupFieldsRequired = apperr.Validation("All fields are required")
	ErrLoginFieldsRequired  = apperr.Validation("Email and password are required")
	ErrDuplicateEmail       = apperr.New(apperr.KindDuplicateEmail, "Email already in use")
	ErrInvalidCredentials   = apperr.New(apperr.KindInvalidCredentials, "Invalid credentials")
	ErrUserNotFound         = apperr.NotFound("User not found")
	ErrPasswordTooLong      = apperr.Validation("Password must be at most 72 bytes")
	ErrFieldTooLong         = apperr.Validation("Name and email must be at most 255 characters")
)

const (
	// maxPasswordBytes is the bcrypt input limit.
	maxPasswordBytes = 72
	// maxFieldChars matches the VARCHAR(255) name and email columns.
	maxFieldChars = 255
)

// PublicUser is the projection of a user record that may leave the server.
type PublicUser struct {
	ID    int64  `json:"id" example:"1"`
	Name  string `json:"name" example:"Ana"`
	Email string `json:"email" example:"a@x.com"`
}

type LoginResult struct {
	Token string
	User  PublicUser
}

type AuthService struct {
	Users  user.Store
	Hasher PasswordHasher
	Tokens *TokenService
}

func NewAuthService(users user.Store, hasher PasswordHasher, tokens *TokenService) *AuthService {
	return &AuthService{Users: users, Hasher: hasher, Tokens: tokens}
}

// Signup stores a new user and returns its id. The email must not be in use.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (int64, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || strings.TrimSpace(password) == "" {
		return 0, ErrSignupFieldsRequired
	}
	if utf8.RuneCountInString(name) > maxFieldChars || utf8.RuneCountInString(email) > maxFieldChars {
		return 0, ErrFieldTooLong
	}
	if len(password) > maxPasswordBytes {
		return 0, ErrPasswordTooLong
	}

	existing, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		return 0, apperr.Unexpected(err)
	}
	if existing != nil {
		return 0, ErrDuplicateEmail
	}

	digest, err := s.Hasher.Hash(password)
	if err != nil {
		return 0, apperr.Unexpected(err)
	}

	id, err := s.Users.Insert(ctx, name, email, digest)
	if errors.Is(err, user.ErrDuplicateEmail) {
		return 0, ErrDuplicateEmail
	}
	if err != nil {
		return 0, apperr.Unexpected(err)
	}
	return id, nil
}

// Login checks the credentials and issues a token. Unknown email and wrong
// password both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || strings.TrimSpace(password) == "" {
		return nil, ErrLoginFieldsRequired
	}

	u, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	if u == nil || !s.Hasher.Verify(password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.Tokens.Issue(Identity{UserID: u.ID, Email: u.Email, Name: u.Name})
	if err != nil {
		return nil, apperr.Unexpected(err)
	}

	return &LoginResult{
		Token: token,
		User:  PublicUser{ID: u.ID, Name: u.Name, Email: u.Email},
	}, nil
}

// Me loads the current record for the token's subject.
func (s *AuthService) Me(ctx context.Context, userID int64) (*db.User, error) {
	u, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	u.PasswordHash = ""
	return u, nil
}
