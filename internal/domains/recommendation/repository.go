package recommendation

import (
	"context"
)

// Repository defines all data access operations for the recommendation domain
type Repository interface {
	// Create inserts a new recommendation record
	// Returns the created Recommendation as stored
	Create(ctx context.Context, rec *Recommendation) (*Recommendation, error)

	// GetByID retrieves a recommendation by ID
	// Returns nil if not found
	GetByID(ctx context.Context, id string) (*Recommendation, error)

	// ListAll retrieves every recommendation ordered by scheduled_date ascending.
	// The set is small by design (one curated entry per week), so the feed
	// generator always works from the complete collection.
	ListAll(ctx context.Context) ([]*Recommendation, error)

	// Delete removes a recommendation record (hard delete, no recovery)
	Delete(ctx context.Context, id string) error
}
