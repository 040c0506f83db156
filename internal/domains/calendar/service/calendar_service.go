package service

import (
	"context"
	"strings"
	"time"

	"github.com/BleepBlorpBlop/soundstories-app/internal/config"
	"github.com/BleepBlorpBlop/soundstories-app/internal/domains/calendar"
	"github.com/BleepBlorpBlop/soundstories-app/internal/domains/recommendation"
	"github.com/BleepBlorpBlop/soundstories-app/pkg/cache"
	"github.com/BleepBlorpBlop/soundstories-app/pkg/logger"
)

const lastGenerationKey = "calendar:last_generation"

// calendarService implements calendar.Service
type calendarService struct {
	repo      recommendation.Repository
	publisher calendar.Publisher
	encoder   *calendar.Encoder
	cache     cache.Cache
	cfg       config.CalendarConfig
	now       func() time.Time
}

// NewCalendarService creates a new calendar service instance
func NewCalendarService(
	repo recommendation.Repository,
	publisher calendar.Publisher,
	c cache.Cache,
	cfg config.CalendarConfig,
) calendar.Service {
	return &calendarService{
		repo:      repo,
		publisher: publisher,
		encoder:   calendar.NewEncoder(cfg.EventDuration),
		cache:     c,
		cfg:       cfg,
		now:       time.Now,
	}
}

// GenerateFeed rebuilds the feed from the current record set and publishes it.
//
// The document is encoded fully in memory before the upload starts; any
// failure along the way leaves the previously published feed untouched, so
// subscribers see "stale but valid" rather than "partially updated".
func (s *calendarService) GenerateFeed(ctx context.Context) (*calendar.FeedResult, error) {
	recs, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, calendar.NewGenerateError(err)
	}

	doc, err := s.encoder.Encode(recs)
	if err != nil {
		return nil, err
	}

	url, err := s.publisher.Upload(ctx, s.cfg.FeedObjectKey, []byte(doc), "text/calendar")
	if err != nil {
		return nil, calendar.NewPublishError(err)
	}

	result := &calendar.FeedResult{
		URL:         url,
		WebcalURL:   webcalURL(url),
		EventCount:  len(recs),
		GeneratedAt: s.now().UTC(),
	}

	// Metadata only; losing it costs nothing but the "last generated" hint
	if err := s.cache.Set(ctx, lastGenerationKey, result, 0); err != nil {
		logger.Error("failed to cache feed generation metadata", err)
	}

	logger.Info("calendar feed published", map[string]interface{}{
		"url":    url,
		"events": len(recs),
	})

	return result, nil
}

// SubscriptionInfo returns the stable subscription URL. The URL is derived
// from the fixed object key, so it is valid even before the first generation
// completes (the fetch just 404s until then).
func (s *calendarService) SubscriptionInfo(ctx context.Context) (*calendar.SubscriptionInfo, error) {
	url := s.publisher.PublicURL(s.cfg.FeedObjectKey)
	info := &calendar.SubscriptionInfo{
		URL:       url,
		WebcalURL: webcalURL(url),
	}

	var last calendar.FeedResult
	if found, err := s.cache.Get(ctx, lastGenerationKey, &last); err == nil && found {
		info.EventCount = &last.EventCount
		info.LastGeneratedAt = &last.GeneratedAt
	}

	return info, nil
}

// webcalURL rewrites an http(s) URL to the webcal scheme calendar apps register
func webcalURL(url string) string {
	if rest, ok := strings.CutPrefix(url, "https://"); ok {
		return "webcal://" + rest
	}
	if rest, ok := strings.CutPrefix(url, "http://"); ok {
		return "webcal://" + rest
	}
	return url
}
