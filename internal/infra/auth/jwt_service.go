// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Renan-rss/instagram-clone/config"
	"github.com/Renan-rss/instagram-clone/internal/domain/service"
)

const defaultAccessTokenTTL = time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string        // Secret key for signing access tokens, injected at startup.
	ttl    time.Duration // Time-to-live for access tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := defaultAccessTokenTTL
	if cfg.Auth != nil && cfg.Auth.AccessTokenTTL > 0 {
		ttl = cfg.Auth.AccessTokenTTL
	}

	return &jwtService{
		secret: cfg.SecretKey.Access,
		ttl:    ttl,
	}, nil
}

// Issue creates a signed HS256 token vouching for the given subject.
func (s *jwtService) Issue(subject string) (string, error) {
	now := time.Now()
	claims := service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// Verify checks a token's signature and expiry and returns its subject.
func (s *jwtService) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &service.Claims{}, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return "", mapTokenError(err)
	}

	claims, ok := token.Claims.(*service.Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", service.ErrTokenMalformed
	}

	return claims.Subject, nil
}

// ExtractSubject extracts the subject without validating signature or expiry.
func (s *jwtService) ExtractSubject(tokenString string) (string, bool) {
	claims := &service.Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return "", false
	}
	if claims.Subject == "" {
		return "", false
	}

	return claims.Subject, true
}

// AccessTokenDuration returns the configured validity window for issued tokens.
func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.ttl
}

// mapTokenError translates jwt/v5 parse failures into the domain's token errors.
// Expiry is checked before the generic malformed fallback because jwt wraps
// several failure modes into one error chain.
func mapTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return service.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrSignatureInvalid):
		return service.ErrTokenSignatureInvalid
	default:
		return service.ErrTokenMalformed
	}
}
