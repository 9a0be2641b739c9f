package handler

import (
	"log/slog"
	"net/http"

	"github.com/Renan-rss/instagram-clone/internal/delivery/http/middleware"
	"github.com/Renan-rss/instagram-clone/internal/delivery/http/response"
	"github.com/Renan-rss/instagram-clone/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SignInRequest is the JSON body for a sign-in attempt.
type SignInRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignInResponse carries the issued access token.
type SignInResponse struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// SignIn handles the login request.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid sign-in input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.SignIn(c.Request().Context(), &usecase.SignInInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &SignInResponse{
		Username: output.Username,
		Token:    output.Token,
	})
}

// Me returns the account behind the authenticated request.
func (h *AuthHandler) Me(c echo.Context) error {
	username, ok := c.Get(middleware.ContextKeyUsername).(string)
	if !ok || username == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Token subject is missing")
	}

	output, err := h.uc.CurrentUser(c.Request().Context(), username)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(output))
}
