package middleware

import (
	"strings"

	"github.com/Renan-rss/instagram-clone/internal/delivery/http/response"
	"github.com/Renan-rss/instagram-clone/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContextKeyUsername is where Authenticate stores the verified token subject.
const ContextKeyUsername = "username"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores its subject on the
// context for handlers to use. All failure modes answer 401 without hinting
// at which check failed.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		subject, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				return response.Unauthorized(c, "TOKEN_EXPIRED", "Token has expired")
			}

			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token")
		}
		if subject == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Token subject is missing")
		}

		c.Set(ContextKeyUsername, subject)

		return next(c)
	}
}
