package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token verification errors. Callers can distinguish the failure mode with
// errors.Is, but the HTTP boundary reports all three the same way.
var (
	// ErrTokenMalformed is returned when the token cannot be parsed at all.
	ErrTokenMalformed = errors.New("token is malformed")

	// ErrTokenSignatureInvalid is returned when the token's signature does not
	// match the server-held key.
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")

	// ErrTokenExpired is returned when the token's validity window has passed.
	ErrTokenExpired = errors.New("token is expired")
)

// Claims defines the session claim carried inside a signed token.
// The subject is the username the token vouches for.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed, time-bounded token for the given subject.
	Issue(subject string) (string, error)

	// Verify checks the token's signature and expiry and returns the subject.
	// Failures map to ErrTokenMalformed, ErrTokenSignatureInvalid or ErrTokenExpired.
	Verify(tokenString string) (string, error)

	// ExtractSubject extracts the subject without validating signature or
	// expiry. Only for callers that have already verified the token.
	ExtractSubject(tokenString string) (string, bool)

	// AccessTokenDuration returns the configured validity window for issued tokens.
	AccessTokenDuration() time.Duration
}
