// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateUserInput defines the data required to create a new account.
type CreateUserInput struct {
	FullName string
	Username string
	Email    string
	Password string
}

// UpdateUserInput defines the data for a full account overwrite.
// The ID is a pointer so a missing identifier can be rejected explicitly.
type UpdateUserInput struct {
	ID       *uuid.UUID
	FullName string
	Username string
	Email    string
	Password string
}

// PatchUserInput defines a partial account update. Nil fields are left
// untouched.
type PatchUserInput struct {
	ID       *uuid.UUID
	FullName *string
	Username *string
	Email    *string
	Password *string
}

// --- Output DTOs ---

// UserOutput is the public projection of an account. The password hash
// never leaves the usecase layer.
type UserOutput struct {
	ID        uuid.UUID
	FullName  string
	Username  string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	CreateUser(ctx context.Context, input *CreateUserInput) (*UserOutput, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*UserOutput, error)
	GetUserByUsername(ctx context.Context, username string) (*UserOutput, error)
	ListUsers(ctx context.Context) ([]*UserOutput, error)
	UpdateUser(ctx context.Context, input *UpdateUserInput) (*UserOutput, error)
	PatchUser(ctx context.Context, input *PatchUserInput) (*UserOutput, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
