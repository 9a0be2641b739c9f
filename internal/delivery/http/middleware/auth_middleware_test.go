package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Renan-rss/instagram-clone/internal/domain/service"
	mockSvc "github.com/Renan-rss/instagram-clone/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAuthMiddleware(t *testing.T, tokenSvc service.TokenService, authHeader string) (*httptest.ResponseRecorder, bool, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewAuthMiddleware(tokenSvc)

	nextCalled := false
	var subject string
	next := func(c echo.Context) error {
		nextCalled = true
		subject, _ = c.Get(ContextKeyUsername).(string)

		return nil
	}

	err := m.Authenticate(next)(c)
	require.NoError(t, err)

	return rec, nextCalled, subject
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService()

	rec, nextCalled, _ := runAuthMiddleware(t, tokenSvc, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService()

	rec, nextCalled, _ := runAuthMiddleware(t, tokenSvc, "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService()
	tokenSvc.On("Verify", "bad-token").Return("", service.ErrTokenSignatureInvalid)

	rec, nextCalled, _ := runAuthMiddleware(t, tokenSvc, "Bearer bad-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService()
	tokenSvc.On("Verify", "stale-token").Return("", service.ErrTokenExpired)

	rec, nextCalled, _ := runAuthMiddleware(t, tokenSvc, "Bearer stale-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_EXPIRED")
	assert.False(t, nextCalled)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService()
	tokenSvc.On("Verify", "good-token").Return("Kevyn123", nil)

	rec, nextCalled, subject := runAuthMiddleware(t, tokenSvc, "Bearer good-token")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, nextCalled)
	assert.Equal(t, "Kevyn123", subject)
}
