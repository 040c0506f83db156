package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BleepBlorpBlop/soundstories-app/internal/domains/user"
)

// postgresRepository implements user.Repository
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new user repository instance
func NewPostgresRepository(pool *pgxpool.Pool) user.Repository {
	return &postgresRepository{pool: pool}
}

const userColumns = `id, email, name, password_hash, role, created_at`

func scanUser(row pgx.Row) (*user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.PasswordHash,
		&u.Role,
		&u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user record
func (r *postgresRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	query := `
    INSERT INTO users (id, email, name, password_hash, role, created_at)
    VALUES ($1, $2, $3, $4, $5, NOW())
    RETURNING ` + userColumns

	created, err := scanUser(r.pool.QueryRow(ctx, query, u.ID, u.Email, u.Name, u.PasswordHash, u.Role))
	if err != nil {
		return nil, user.NewStoreError(err)
	}
	return created, nil
}

// GetByEmail retrieves a user by email
func (r *postgresRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `
    SELECT ` + userColumns + `
    FROM users
    WHERE email = $1
  `

	u, err := scanUser(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return u, nil
}

// GetByID retrieves a user by ID
func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	query := `
    SELECT ` + userColumns + `
    FROM users
    WHERE id = $1
  `

	u, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return u, nil
}
