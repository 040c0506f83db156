package calendar

import (
	"sort"
	"time"

	"github.com/BleepBlorpBlop/soundstories-app/internal/domains/recommendation"
)

// Partitioned holds the two display sequences derived from the full record set
type Partitioned struct {
	Upcoming []*recommendation.Recommendation
	Past     []*recommendation.Recommendation
}

// Partition splits records around a reference instant.
//
// A record scheduled strictly after now is upcoming; at or before now it is
// past (the boundary is closed on the past side). Upcoming sorts ascending so
// the next entry comes first; past sorts descending so the most recent comes
// first, truncated to pastLimit (<= 0 means unbounded).
//
// Pure function of (recs, now): callers must supply one now per logical
// operation so a record cannot flip sets mid-computation.
func Partition(recs []*recommendation.Recommendation, now time.Time, pastLimit int) Partitioned {
	var p Partitioned

	for _, rec := range recs {
		if rec.ScheduledDate.After(now) {
			p.Upcoming = append(p.Upcoming, rec)
		} else {
			p.Past = append(p.Past, rec)
		}
	}

	sort.SliceStable(p.Upcoming, func(i, j int) bool {
		return p.Upcoming[i].ScheduledDate.Before(p.Upcoming[j].ScheduledDate)
	})
	sort.SliceStable(p.Past, func(i, j int) bool {
		return p.Past[i].ScheduledDate.After(p.Past[j].ScheduledDate)
	})

	if pastLimit > 0 && len(p.Past) > pastLimit {
		p.Past = p.Past[:pastLimit]
	}

	return p
}
