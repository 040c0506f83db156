package calendar

import (
	"context"
	"time"
)

// Publisher is the storage collaborator the feed is written to.
// Satisfied by the MinIO storage adapter.
type Publisher interface {
	// Upload writes the whole document to key, overwriting any prior version,
	// and returns the public URL
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// PublicURL returns the stable URL of a key without writing anything
	PublicURL(key string) string
}

// FeedResult describes one completed generation
type FeedResult struct {
	URL         string    `json:"url"`
	WebcalURL   string    `json:"webcal_url"`
	EventCount  int       `json:"event_count"`
	GeneratedAt time.Time `json:"generated_at"`
}

// SubscriptionInfo is what public visitors need to subscribe
type SubscriptionInfo struct {
	URL             string     `json:"url"`
	WebcalURL       string     `json:"webcal_url"`
	EventCount      *int       `json:"event_count,omitempty"`
	LastGeneratedAt *time.Time `json:"last_generated_at,omitempty"`
}

// Service defines the feed generation operations
type Service interface {
	// GenerateFeed rebuilds the feed from the current record set and
	// publishes it to the fixed storage location
	GenerateFeed(ctx context.Context) (*FeedResult, error)

	// SubscriptionInfo returns the stable subscription URL plus metadata of
	// the last generation when known
	SubscriptionInfo(ctx context.Context) (*SubscriptionInfo, error)
}
