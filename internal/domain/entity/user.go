// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique account.
// Username and Email are unique across all accounts; the registry enforces
// both with storage-level constraints.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user, assigned on creation.
	FullName     string    // The user's display name.
	Username     string    // Unique handle, compared case-sensitively.
	Email        string    // Unique contact email, also usable as a login identifier.
	PasswordHash string    // One-way bcrypt digest of the user's password. Never the plaintext.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
