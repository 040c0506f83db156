package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines all data access operations for the user domain
type Repository interface {
	// Create inserts a new user record
	Create(ctx context.Context, u *User) (*User, error)

	// GetByEmail retrieves a user by email
	// Returns nil if not found
	GetByEmail(ctx context.Context, email string) (*User, error)

	// GetByID retrieves a user by ID
	// Returns nil if not found
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
}
