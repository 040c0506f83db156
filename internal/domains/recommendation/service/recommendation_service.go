package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BleepBlorpBlop/soundstories-app/internal/config"
	"github.com/BleepBlorpBlop/soundstories-app/internal/domains/calendar"
	"github.com/BleepBlorpBlop/soundstories-app/internal/domains/recommendation"
	"github.com/BleepBlorpBlop/soundstories-app/pkg/cache"
	"github.com/BleepBlorpBlop/soundstories-app/pkg/logger"
)

// Every cached view derived from the record set lives under the
// recommendations: prefix, so one pattern delete invalidates them all.
const (
	pastListCacheKey = "recommendations:public_past"
	pastListCacheTTL = 5 * time.Minute
	listCachePattern = "recommendations:*"
)

// recommendationService implements recommendation.Service
type recommendationService struct {
	repo  recommendation.Repository
	cache cache.Cache
	cfg   config.CalendarConfig
	now   func() time.Time
}

// NewRecommendationService creates a new recommendation service instance
// Dependency injection pattern - receives repository from container
func NewRecommendationService(repo recommendation.Repository, c cache.Cache, cfg config.CalendarConfig) recommendation.Service {
	return &recommendationService{
		repo:  repo,
		cache: c,
		cfg:   cfg,
		now:   time.Now,
	}
}

// Create validates and persists a new recommendation.
// Validation happens before the insert, so no partial record is ever stored.
func (s *recommendationService) Create(ctx context.Context, req *recommendation.CreateRequest, adminEmail, adminName string) (*recommendation.Response, error) {
	if req == nil {
		return nil, recommendation.NewValidationError(nil)
	}

	if err := req.Validate(); err != nil {
		return nil, recommendation.NewValidationError(err)
	}

	rec := &recommendation.Recommendation{
		ID:            uuid.NewString(),
		SongTitle:     strings.TrimSpace(req.SongTitle),
		Story:         req.Story,
		SpotifyLink:   strings.TrimSpace(req.SpotifyLink),
		YoutubeLink:   strings.TrimSpace(req.YoutubeLink),
		ScheduledDate: req.ScheduledDate.UTC(),
		CreatedAt:     s.now().UTC(),
		AdminEmail:    adminEmail,
		AdminName:     adminName,
	}

	created, err := s.repo.Create(ctx, rec)
	if err != nil {
		return nil, err
	}

	s.invalidatePastListing(ctx)
	return created.ToResponse(), nil
}

// ListPartitioned returns the admin view: upcoming ascending, past descending
// capped to the admin past limit. One now value per call, so a record cannot
// land in both or neither set.
func (s *recommendationService) ListPartitioned(ctx context.Context) (*recommendation.PartitionedResponse, error) {
	recs, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	p := calendar.Partition(recs, s.now(), s.cfg.AdminPastLimit)

	return &recommendation.PartitionedResponse{
		Upcoming: toResponses(p.Upcoming),
		Past:     toResponses(p.Past),
	}, nil
}

// ListPast returns the public read-only listing, cached briefly since it only
// changes when an administrator writes or an entry crosses into the past.
func (s *recommendationService) ListPast(ctx context.Context) ([]*recommendation.Response, error) {
	var cached []*recommendation.Response
	if found, err := s.cache.Get(ctx, pastListCacheKey, &cached); err == nil && found {
		return cached, nil
	}

	recs, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	p := calendar.Partition(recs, s.now(), s.cfg.PublicPastLimit)
	responses := toResponses(p.Past)

	if err := s.cache.Set(ctx, pastListCacheKey, responses, pastListCacheTTL); err != nil {
		logger.Error("failed to cache past listing", err)
	}

	return responses, nil
}

// Get returns a single recommendation, the admin detail view
func (s *recommendationService) Get(ctx context.Context, id string) (*recommendation.Response, error) {
	if strings.TrimSpace(id) == "" {
		return nil, recommendation.NewInvalidID(id)
	}

	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, recommendation.NewNotFound(id)
	}
	return rec.ToResponse(), nil
}

// Delete removes a recommendation by ID (hard delete, no recovery path)
func (s *recommendationService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return recommendation.NewInvalidID(id)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidatePastListing(ctx)
	return nil
}

func (s *recommendationService) invalidatePastListing(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, listCachePattern); err != nil {
		logger.Error("failed to invalidate cached listings", err)
	}
}

func toResponses(recs []*recommendation.Recommendation) []*recommendation.Response {
	responses := make([]*recommendation.Response, len(recs))
	for i, rec := range recs {
		responses[i] = rec.ToResponse()
	}
	return responses
}
