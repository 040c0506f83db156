package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BleepBlorpBlop/soundstories-app/internal/domains/recommendation"
)

func rec(id string, scheduled time.Time) *recommendation.Recommendation {
	return &recommendation.Recommendation{
		ID:            id,
		SongTitle:     "Song " + id,
		Story:         "Story " + id,
		ScheduledDate: scheduled,
	}
}

func TestPartition_SplitsAroundNow(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	past := rec("past", now.Add(-time.Hour))
	upcoming := rec("upcoming", now.Add(time.Hour))

	p := Partition([]*recommendation.Recommendation{past, upcoming}, now, 10)

	require.Len(t, p.Past, 1)
	require.Len(t, p.Upcoming, 1)
	assert.Equal(t, "past", p.Past[0].ID)
	assert.Equal(t, "upcoming", p.Upcoming[0].ID)
}

func TestPartition_BoundaryIsPast(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	p := Partition([]*recommendation.Recommendation{rec("exact", now)}, now, 10)

	assert.Empty(t, p.Upcoming)
	require.Len(t, p.Past, 1)
	assert.Equal(t, "exact", p.Past[0].ID)
}

func TestPartition_Ordering(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	recs := []*recommendation.Recommendation{
		rec("u2", now.Add(48*time.Hour)),
		rec("p1", now.Add(-72*time.Hour)),
		rec("u1", now.Add(24*time.Hour)),
		rec("p2", now.Add(-24*time.Hour)),
		rec("p3", now.Add(-48*time.Hour)),
	}

	p := Partition(recs, now, 10)

	// Upcoming ascending: earliest next
	require.Len(t, p.Upcoming, 2)
	assert.Equal(t, "u1", p.Upcoming[0].ID)
	assert.Equal(t, "u2", p.Upcoming[1].ID)

	// Past descending: most recent first
	require.Len(t, p.Past, 3)
	assert.Equal(t, "p2", p.Past[0].ID)
	assert.Equal(t, "p3", p.Past[1].ID)
	assert.Equal(t, "p1", p.Past[2].ID)
}

func TestPartition_PastCap(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	var recs []*recommendation.Recommendation
	for i := 1; i <= 15; i++ {
		recs = append(recs, rec(string(rune('a'+i)), now.Add(-time.Duration(i)*time.Hour)))
	}

	p := Partition(recs, now, 10)

	assert.Len(t, p.Past, 10)
	// The most recent ones survive the cut
	assert.Equal(t, now.Add(-time.Hour), p.Past[0].ScheduledDate)
	assert.Equal(t, now.Add(-10*time.Hour), p.Past[9].ScheduledDate)
}

func TestPartition_UnboundedWhenLimitZero(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	var recs []*recommendation.Recommendation
	for i := 1; i <= 15; i++ {
		recs = append(recs, rec(string(rune('a'+i)), now.Add(-time.Duration(i)*time.Hour)))
	}

	p := Partition(recs, now, 0)
	assert.Len(t, p.Past, 15)
}

func TestPartition_EmptyInput(t *testing.T) {
	p := Partition(nil, time.Now(), 10)

	assert.Empty(t, p.Upcoming)
	assert.Empty(t, p.Past)
}

func TestPartition_NoLossNoDuplication(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	recs := []*recommendation.Recommendation{
		rec("a", now.Add(-time.Hour)),
		rec("b", now),
		rec("c", now.Add(time.Minute)),
		rec("d", now.Add(time.Hour)),
		rec("e", now.Add(-time.Minute)),
	}

	p := Partition(recs, now, 0)

	seen := map[string]int{}
	for _, r := range p.Upcoming {
		seen[r.ID]++
	}
	for _, r := range p.Past {
		seen[r.ID]++
	}

	assert.Len(t, seen, len(recs))
	for _, r := range recs {
		assert.Equal(t, 1, seen[r.ID], "record %s must appear exactly once", r.ID)
	}
}

func TestPartition_DeterministicForSameNow(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	recs := []*recommendation.Recommendation{
		rec("a", now.Add(-time.Hour)),
		rec("b", now.Add(time.Hour)),
		rec("c", now.Add(-2*time.Hour)),
	}

	first := Partition(recs, now, 10)
	second := Partition(recs, now, 10)

	assert.Equal(t, first, second)
}
