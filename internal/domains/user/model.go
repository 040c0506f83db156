package user

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// Roles. Anonymous callers never reach this domain; everyone with a record
// is at least an authenticated user, and only admins can curate.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is an account that can sign in. In practice this is the small set of
// trusted administrators who curate the calendar.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Name         string    `json:"name" db:"name"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// LoginRequest is the sign-in payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the sign-in payload shape.
// EmailFormat is a pure syntax check; is.Email resolves the domain's MX
// records over DNS, which blocks every login and rejects reachable
// addresses on domains without mail setup.
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.EmailFormat),
		validation.Field(&r.Password, validation.Required),
	)
}

// UserResponse is the API shape of a user
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  string    `json:"role"`
}

// LoginResponse carries the session token plus the signed-in identity
type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}
}
