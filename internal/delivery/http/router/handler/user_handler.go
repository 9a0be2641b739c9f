// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Renan-rss/instagram-clone/internal/delivery/http/response"
	"github.com/Renan-rss/instagram-clone/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CreateUserRequest is the JSON body for account creation.
type CreateUserRequest struct {
	FullName string `json:"fullName" validate:"required,max=100"`
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// UpdateUserRequest is the JSON body for a full account overwrite. The target
// account is named in the body; an empty password keeps the current one.
type UpdateUserRequest struct {
	ID       *uuid.UUID `json:"id" validate:"required"`
	FullName string     `json:"fullName" validate:"required,max=100"`
	Username string     `json:"username" validate:"required,min=3,max=50"`
	Email    string     `json:"email" validate:"required,email,max=255"`
	Password string     `json:"password" validate:"omitempty,min=8,max=72"`
}

// PatchUserRequest is the JSON body for a partial account update. Absent
// fields are left untouched.
type PatchUserRequest struct {
	FullName *string `json:"fullName" validate:"omitempty,max=100"`
	Username *string `json:"username" validate:"omitempty,min=3,max=50"`
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	Password *string `json:"password" validate:"omitempty,min=8,max=72"`
}

// UserResponse is the public JSON projection of an account.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"fullName"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserHandler holds dependencies for account-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateUser handles the account creation request.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid user creation input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.CreateUser(c.Request().Context(), &usecase.CreateUserInput{
		FullName: req.FullName,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(output))
}

// GetUser handles fetching a single account by ID.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "Invalid user id")
	}

	output, err := h.uc.GetUserByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(output))
}

// GetUserByUsername handles fetching a single account by username.
func (h *UserHandler) GetUserByUsername(c echo.Context) error {
	username := c.Param("username")
	if username == "" {
		return response.BindingError(c, "Username is required")
	}

	output, err := h.uc.GetUserByUsername(c.Request().Context(), username)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(output))
}

// ListUsers handles listing every account.
func (h *UserHandler) ListUsers(c echo.Context) error {
	outputs, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	users := make([]*UserResponse, 0, len(outputs))
	for _, output := range outputs {
		users = append(users, toUserResponse(output))
	}

	return response.Success(c, http.StatusOK, users)
}

// UpdateUser handles a full account overwrite.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid user update input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.UpdateUser(c.Request().Context(), &usecase.UpdateUserInput{
		ID:       req.ID,
		FullName: req.FullName,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(output))
}

// PatchUser handles a partial account update.
func (h *UserHandler) PatchUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "Invalid user id")
	}

	var req PatchUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid user patch input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.PatchUser(c.Request().Context(), &usecase.PatchUserInput{
		ID:       &id,
		FullName: req.FullName,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(output))
}

// DeleteUser handles account deletion.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "Invalid user id")
	}

	if err := h.uc.DeleteUser(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func toUserResponse(output *usecase.UserOutput) *UserResponse {
	if output == nil {
		return nil
	}

	return &UserResponse{
		ID:        output.ID,
		FullName:  output.FullName,
		Username:  output.Username,
		Email:     output.Email,
		CreatedAt: output.CreatedAt,
		UpdatedAt: output.UpdatedAt,
	}
}
