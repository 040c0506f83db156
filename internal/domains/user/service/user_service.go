package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/BleepBlorpBlop/soundstories-app/internal/domains/user"
	"github.com/BleepBlorpBlop/soundstories-app/pkg/jwt"
	"github.com/BleepBlorpBlop/soundstories-app/pkg/logger"
)

// userService implements user.Service
type userService struct {
	repo       user.Repository
	jwtManager *jwt.Manager
}

// NewUserService creates a new user service instance
func NewUserService(repo user.Repository, jwtManager *jwt.Manager) user.Service {
	return &userService{
		repo:       repo,
		jwtManager: jwtManager,
	}
}

// Login verifies credentials and returns a signed session token
func (s *userService) Login(ctx context.Context, req *user.LoginRequest) (*user.LoginResponse, error) {
	if req == nil {
		return nil, user.NewValidationError(nil)
	}
	if err := req.Validate(); err != nil {
		return nil, user.NewValidationError(err)
	}

	u, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, user.NewStoreError(err)
	}
	if u == nil {
		return nil, user.NewInvalidCredentials()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.NewInvalidCredentials()
	}

	token, err := s.jwtManager.GenerateToken(u.ID.String(), u.Email, u.Name, u.Role)
	if err != nil {
		return nil, user.NewStoreError(err)
	}

	return &user.LoginResponse{
		Token: token,
		User:  u.ToResponse(),
	}, nil
}

// GetProfile returns the identity behind a session
func (s *userService) GetProfile(ctx context.Context, id uuid.UUID) (*user.UserResponse, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, user.NewStoreError(err)
	}
	if u == nil {
		return nil, user.NewNotFound()
	}
	return u.ToResponse(), nil
}

// EnsureAdmin seeds the bootstrap administrator account if absent.
// No-op when the configured email already has an account or no credentials
// are configured at all.
func (s *userService) EnsureAdmin(ctx context.Context, email, name, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return user.NewStoreError(err)
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return user.NewStoreError(err)
	}

	_, err = s.repo.Create(ctx, &user.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         user.RoleAdmin,
	})
	if err != nil {
		return err
	}

	logger.Info("bootstrap admin account created", map[string]interface{}{
		"email": email,
	})
	return nil
}
