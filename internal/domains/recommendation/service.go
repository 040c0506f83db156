package recommendation

import (
	"context"
)

// Service defines all business logic operations for the recommendation domain
type Service interface {
	// Create validates and persists a new recommendation.
	// adminEmail/adminName attribute the creating administrator.
	Create(ctx context.Context, req *CreateRequest, adminEmail, adminName string) (*Response, error)

	// ListPartitioned returns the admin view: upcoming ascending, past
	// descending capped to the admin past limit.
	ListPartitioned(ctx context.Context) (*PartitionedResponse, error)

	// ListPast returns the public read-only listing of past entries,
	// descending, capped to the public past limit.
	ListPast(ctx context.Context) ([]*Response, error)

	// Get returns a single recommendation by ID
	Get(ctx context.Context, id string) (*Response, error)

	// Delete removes a recommendation by ID
	Delete(ctx context.Context, id string) error
}
