// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"github.com/Renan-rss/instagram-clone/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single user by their username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindAll retrieves every user. An empty store yields an empty slice, not an error.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// ExistsByEmail reports whether any user already holds the given email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByUsername reports whether any user already holds the given username.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByID reports whether a user with the given ID exists.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// Create persists a new user entity to the storage and assigns its ID.
	Create(ctx context.Context, user *entity.User) error

	// Update overwrites an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// UpdatePartial updates only the non-nil fields of the identified user and
	// returns the number of affected rows (0 when the ID does not exist).
	UpdatePartial(ctx context.Context, id uuid.UUID, fullName, username, email, passwordHash *string) (int64, error)

	// DeleteByID removes the user with the given ID.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
