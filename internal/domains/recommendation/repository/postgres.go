package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BleepBlorpBlop/soundstories-app/internal/domains/recommendation"
)

// postgresRepository implements recommendation.Repository
// Uses pgxpool for PostgreSQL connection management
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new recommendation repository instance
// Dependency injection pattern - receives pool from container
func NewPostgresRepository(pool *pgxpool.Pool) recommendation.Repository {
	return &postgresRepository{pool: pool}
}

const recColumns = `id, song_title, story, spotify_link, youtube_link, scheduled_date, created_at, admin_email, admin_name`

func scanRecommendation(row pgx.Row) (*recommendation.Recommendation, error) {
	var rec recommendation.Recommendation
	var spotifyLink, youtubeLink, adminEmail, adminName *string

	err := row.Scan(
		&rec.ID,
		&rec.SongTitle,
		&rec.Story,
		&spotifyLink,
		&youtubeLink,
		&rec.ScheduledDate,
		&rec.CreatedAt,
		&adminEmail,
		&adminName,
	)
	if err != nil {
		return nil, err
	}

	if spotifyLink != nil {
		rec.SpotifyLink = *spotifyLink
	}
	if youtubeLink != nil {
		rec.YoutubeLink = *youtubeLink
	}
	if adminEmail != nil {
		rec.AdminEmail = *adminEmail
	}
	if adminName != nil {
		rec.AdminName = *adminName
	}
	return &rec, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Create inserts a new recommendation record
func (r *postgresRepository) Create(ctx context.Context, rec *recommendation.Recommendation) (*recommendation.Recommendation, error) {
	query := `
    INSERT INTO recommendations (id, song_title, story, spotify_link, youtube_link, scheduled_date, created_at, admin_email, admin_name)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING ` + recColumns

	row := r.pool.QueryRow(ctx, query,
		rec.ID,
		rec.SongTitle,
		rec.Story,
		nullable(rec.SpotifyLink),
		nullable(rec.YoutubeLink),
		rec.ScheduledDate,
		rec.CreatedAt,
		nullable(rec.AdminEmail),
		nullable(rec.AdminName),
	)

	created, err := scanRecommendation(row)
	if err != nil {
		return nil, recommendation.NewCreateError(err)
	}
	return created, nil
}

// GetByID retrieves a recommendation by ID
func (r *postgresRepository) GetByID(ctx context.Context, id string) (*recommendation.Recommendation, error) {
	query := `
    SELECT ` + recColumns + `
    FROM recommendations
    WHERE id = $1
  `

	rec, err := scanRecommendation(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get recommendation by id: %w", err)
	}
	return rec, nil
}

// ListAll retrieves every recommendation ordered by scheduled_date ascending
func (r *postgresRepository) ListAll(ctx context.Context) ([]*recommendation.Recommendation, error) {
	query := `
    SELECT ` + recColumns + `
    FROM recommendations
    ORDER BY scheduled_date ASC, created_at ASC
  `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, recommendation.NewListError(err)
	}
	defer rows.Close()

	var recs []*recommendation.Recommendation
	for rows.Next() {
		rec, err := scanRecommendation(rows)
		if err != nil {
			return nil, recommendation.NewListError(err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, recommendation.NewListError(err)
	}

	return recs, nil
}

// Delete removes a recommendation record
func (r *postgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM recommendations WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return recommendation.NewDeleteError(err)
	}
	if tag.RowsAffected() == 0 {
		return recommendation.NewNotFound(id)
	}
	return nil
}
