// Package entity defines the domain models for the posts feature.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Post represents a content record created by a user.
// Posts are immutable except for deletion, which only the owner may perform.
type Post struct {
	ID        uuid.UUID // Unique identifier, generated server-side
	UserID    uuid.UUID // Owner's user id; immutable after creation
	Title     string    // Title, 1-200 characters
	Content   string    // Body, 1-5000 characters
	CreatedAt time.Time // Creation timestamp; immutable
}
