// Package entity defines the domain entities for the auth feature.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered user in the system.
// It contains authentication credentials and metadata for user management.
type User struct {
	// ID is the unique identifier for the user. Immutable after creation.
	ID uuid.UUID

	// Email is the user's email address used for authentication.
	// It must be unique across all users and never changes.
	Email string

	// Username is the display name. It is not required to be unique.
	Username string

	// Password is the bcrypt hash of the user's password.
	// This never stores plaintext and is never serialized outward.
	Password string

	// CreatedAt is the timestamp when the user was created. Immutable.
	CreatedAt time.Time
}
