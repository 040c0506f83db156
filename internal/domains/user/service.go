package user

import (
	"context"

	"github.com/google/uuid"
)

// Service defines all business logic operations for the user domain
type Service interface {
	// Login verifies credentials and returns a signed session token
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)

	// GetProfile returns the identity behind a session
	GetProfile(ctx context.Context, id uuid.UUID) (*UserResponse, error)

	// EnsureAdmin seeds the bootstrap administrator account if it does not
	// exist yet. Called once at startup.
	EnsureAdmin(ctx context.Context, email, name, password string) error
}
