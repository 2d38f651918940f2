// Package apperr holds the closed set of error kinds the API can answer with.
// Handlers branch on Kind, never on message text.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindUnexpected Kind = iota
	KindValidation
	KindDuplicateEmail
	KindInvalidCredentials
	KindMissingOrInvalidToken
	KindTokenExpired
	KindInvalidToken
	KindNotFound
)

var kindNames = map[Kind]string{
	KindUnexpected:            "unexpected",
	KindValidation:            "validation",
	KindDuplicateEmail:        "duplicate_email",
	KindInvalidCredentials:    "invalid_credentials",
	KindMissingOrInvalidToken: "missing_or_invalid_token",
	KindTokenExpired:          "token_expired",
	KindInvalidToken:          "invalid_token",
	KindNotFound:              "not_found",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Error carries a kind, a client-safe message and an optional cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Validation(message string) *Error {
	return New(KindValidation, message)
}

func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

// Unexpected wraps store or hasher failures. The message is never shown in
// production.
func Unexpected(err error) *Error {
	return Wrap(KindUnexpected, "Internal server error", err)
}

// KindOf returns the kind of the first *Error in err's chain, or
// KindUnexpected when there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}

// Status maps a kind to its HTTP status code.
func Status(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindDuplicateEmail:
		return http.StatusConflict
	case KindInvalidCredentials, KindMissingOrInvalidToken, KindTokenExpired, KindInvalidToken:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
