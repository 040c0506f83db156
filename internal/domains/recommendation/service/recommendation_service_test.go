package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BleepBlorpBlop/soundstories-app/internal/config"
	"github.com/BleepBlorpBlop/soundstories-app/internal/domains/recommendation"
)

// ========================================
// TEST DOUBLES
// ========================================

type fakeRepo struct {
	mu       sync.Mutex
	recs     []*recommendation.Recommendation
	listErr  error
	listHits int
}

func (f *fakeRepo) Create(_ context.Context, rec *recommendation.Recommendation) (*recommendation.Recommendation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recs = append(f.recs, rec)
	return rec, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*recommendation.Recommendation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.recs {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) ListAll(_ context.Context) ([]*recommendation.Recommendation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listHits++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*recommendation.Recommendation, len(f.recs))
	copy(out, f.recs)
	return out, nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, r := range f.recs {
		if r.ID == id {
			f.recs = append(f.recs[:i], f.recs[i+1:]...)
			return nil
		}
	}
	return recommendation.NewNotFound(id)
}

// memCache is a map-backed stand-in for the Redis adapter
type memCache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{items: map[string][]byte{}}
}

func (m *memCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.items[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (m *memCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = data
	return nil
}

// DeletePattern supports trailing-star globs, enough for the keys under test
func (m *memCache) DeletePattern(_ context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range m.items {
		if strings.HasPrefix(k, prefix) {
			delete(m.items, k)
		}
	}
	return nil
}

func (m *memCache) Ping(context.Context) error { return nil }

func testConfig() config.CalendarConfig {
	return config.CalendarConfig{
		FeedObjectKey:   "calendar/soundstories.ics",
		EventDuration:   time.Hour,
		AdminPastLimit:  10,
		PublicPastLimit: 50,
	}
}

func newTestService(repo *fakeRepo, c *memCache, now time.Time) *recommendationService {
	return &recommendationService{
		repo:  repo,
		cache: c,
		cfg:   testConfig(),
		now:   func() time.Time { return now },
	}
}

// ========================================
// CREATE
// ========================================

func TestCreate_AssignsIdentityAndTimestamps(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := &fakeRepo{}
	svc := newTestService(repo, newMemCache(), now)

	loc := time.FixedZone("UTC+7", 7*60*60)
	resp, err := svc.Create(context.Background(), &recommendation.CreateRequest{
		SongTitle:     "  Bohemian Rhapsody - Queen  ",
		Story:         "an opera in six minutes",
		SpotifyLink:   "https://open.spotify.com/track/4iV5W9uYEdYUVa79Axb7Rh",
		ScheduledDate: time.Date(2026, 6, 8, 17, 0, 0, 0, loc),
	}, "admin@soundstories.app", "Alex")
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Bohemian Rhapsody - Queen", resp.SongTitle)
	assert.Equal(t, now, resp.CreatedAt)
	assert.Equal(t, time.UTC, resp.ScheduledDate.Location())

	require.Len(t, repo.recs, 1)
	assert.Equal(t, "admin@soundstories.app", repo.recs[0].AdminEmail)
	assert.Equal(t, "Alex", repo.recs[0].AdminName)
}

func TestCreate_RejectsIncompleteSubmission(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, newMemCache(), time.Now())

	cases := []struct {
		name string
		req  *recommendation.CreateRequest
	}{
		{"nil request", nil},
		{"missing title", &recommendation.CreateRequest{Story: "s", ScheduledDate: time.Now()}},
		{"missing story", &recommendation.CreateRequest{SongTitle: "A", ScheduledDate: time.Now()}},
		{"missing schedule", &recommendation.CreateRequest{SongTitle: "A", Story: "s"}},
		{"bad spotify link", &recommendation.CreateRequest{
			SongTitle: "A", Story: "s", ScheduledDate: time.Now(), SpotifyLink: "not a url",
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.req, "a@b.c", "A")

			var recErr *recommendation.RecommendationError
			require.ErrorAs(t, err, &recErr)
			assert.Equal(t, "VALIDATION_ERROR", recErr.Code)
			assert.Empty(t, repo.recs, "nothing may be persisted on validation failure")
		})
	}
}

func TestCreate_LinksAreOptional(t *testing.T) {
	svc := newTestService(&fakeRepo{}, newMemCache(), time.Now())

	resp, err := svc.Create(context.Background(), &recommendation.CreateRequest{
		SongTitle:     "A",
		Story:         "s",
		ScheduledDate: time.Date(2026, 6, 8, 10, 0, 0, 0, time.UTC),
	}, "a@b.c", "A")

	require.NoError(t, err)
	assert.Empty(t, resp.SpotifyLink)
	assert.Empty(t, resp.YoutubeLink)
}

// ========================================
// LIST
// ========================================

func TestListPartitioned_AdminView(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := &fakeRepo{}
	for i := 1; i <= 12; i++ {
		repo.recs = append(repo.recs, &recommendation.Recommendation{
			ID: "p", SongTitle: "A", Story: "s",
			ScheduledDate: now.Add(-time.Duration(i) * time.Hour),
		})
	}
	repo.recs = append(repo.recs,
		&recommendation.Recommendation{ID: "u2", SongTitle: "A", Story: "s", ScheduledDate: now.Add(48 * time.Hour)},
		&recommendation.Recommendation{ID: "u1", SongTitle: "A", Story: "s", ScheduledDate: now.Add(24 * time.Hour)},
	)

	svc := newTestService(repo, newMemCache(), now)
	p, err := svc.ListPartitioned(context.Background())
	require.NoError(t, err)

	require.Len(t, p.Upcoming, 2)
	assert.Equal(t, "u1", p.Upcoming[0].ID)
	assert.Equal(t, "u2", p.Upcoming[1].ID)

	// Past is capped to the admin limit, most recent first
	require.Len(t, p.Past, 10)
	assert.Equal(t, now.Add(-time.Hour), p.Past[0].ScheduledDate)
}

func TestListPast_ServedFromCacheOnRepeat(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := &fakeRepo{recs: []*recommendation.Recommendation{
		{ID: "a", SongTitle: "A", Story: "s", ScheduledDate: now.Add(-time.Hour)},
		{ID: "b", SongTitle: "B", Story: "s", ScheduledDate: now.Add(time.Hour)},
	}}

	svc := newTestService(repo, newMemCache(), now)

	first, err := svc.ListPast(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, "a", first[0].ID)

	second, err := svc.ListPast(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.listHits, "second call must hit the cache, not the store")
}

func TestListPast_CacheInvalidatedByWrite(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := &fakeRepo{recs: []*recommendation.Recommendation{
		{ID: "a", SongTitle: "A", Story: "s", ScheduledDate: now.Add(-time.Hour)},
	}}

	svc := newTestService(repo, newMemCache(), now)

	_, err := svc.ListPast(context.Background())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), &recommendation.CreateRequest{
		SongTitle: "B", Story: "s", ScheduledDate: now.Add(-30 * time.Minute),
	}, "a@b.c", "A")
	require.NoError(t, err)

	listing, err := svc.ListPast(context.Background())
	require.NoError(t, err)
	assert.Len(t, listing, 2)
	assert.Equal(t, 2, repo.listHits, "write must invalidate the cached listing")
}

func TestListPast_PropagatesStoreFailure(t *testing.T) {
	repo := &fakeRepo{listErr: errors.New("connection refused")}
	svc := newTestService(repo, newMemCache(), time.Now())

	_, err := svc.ListPast(context.Background())
	assert.Error(t, err)
}

// ========================================
// GET
// ========================================

func TestGet(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := &fakeRepo{recs: []*recommendation.Recommendation{
		{ID: "known", SongTitle: "A", Story: "s", ScheduledDate: now},
	}}
	svc := newTestService(repo, newMemCache(), now)

	resp, err := svc.Get(context.Background(), "known")
	require.NoError(t, err)
	assert.Equal(t, "A", resp.SongTitle)
}

func TestGet_UnknownID(t *testing.T) {
	svc := newTestService(&fakeRepo{}, newMemCache(), time.Now())

	_, err := svc.Get(context.Background(), "missing")

	var recErr *recommendation.RecommendationError
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, "RECOMMENDATION_NOT_FOUND", recErr.Code)
}

func TestGet_RejectsBlankID(t *testing.T) {
	svc := newTestService(&fakeRepo{}, newMemCache(), time.Now())

	_, err := svc.Get(context.Background(), " ")

	var recErr *recommendation.RecommendationError
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, "INVALID_RECOMMENDATION_ID", recErr.Code)
}

// ========================================
// DELETE
// ========================================

func TestDelete(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := &fakeRepo{recs: []*recommendation.Recommendation{
		{ID: "keep", SongTitle: "A", Story: "s", ScheduledDate: now.Add(-time.Hour)},
		{ID: "drop", SongTitle: "B", Story: "s", ScheduledDate: now.Add(-2 * time.Hour)},
	}}

	svc := newTestService(repo, newMemCache(), now)

	require.NoError(t, svc.Delete(context.Background(), "drop"))
	require.Len(t, repo.recs, 1)
	assert.Equal(t, "keep", repo.recs[0].ID)
}

func TestDelete_RejectsBlankID(t *testing.T) {
	svc := newTestService(&fakeRepo{}, newMemCache(), time.Now())

	err := svc.Delete(context.Background(), "   ")

	var recErr *recommendation.RecommendationError
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, "INVALID_RECOMMENDATION_ID", recErr.Code)
}

func TestDelete_UnknownID(t *testing.T) {
	svc := newTestService(&fakeRepo{}, newMemCache(), time.Now())

	err := svc.Delete(context.Background(), "missing")

	var recErr *recommendation.RecommendationError
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, "RECOMMENDATION_NOT_FOUND", recErr.Code)
}
