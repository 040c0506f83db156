package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/BleepBlorpBlop/soundstories-app/internal/domains/recommendation"
)

// Fixed document metadata. These are part of the published feed's identity:
// changing the PRODID or UID scheme would make every subscriber's client treat
// the entire calendar as brand new events.
const (
	prodID          = "-//SoundStories//Music Recommendations//EN"
	calendarName    = "SoundStories - Weekly Music Recommendations"
	calendarDesc    = "Curated music recommendations with stories"
	refreshInterval = "PT4H"

	uidPrefix = "soundstories"
	uidDomain = "soundstories.app"

	summaryMarker   = "🎵 "
	eventLocation   = "Your favorite music app"
	eventCategories = "Music,Entertainment,SoundStories"
	descFooter      = `📅 Weekly music recommendations from SoundStories`

	// ISO instant with separators stripped, fractional seconds dropped, UTC
	icsTimeLayout = "20060102T150405Z"
)

// The iCalendar TEXT escaping rule: a literal newline, comma or semicolon
// inside free text would otherwise break the line/value structure of the
// document. Escaped form is the two-character backslash sequence.
var textEscaper = strings.NewReplacer(
	"\n", `\n`,
	",", `\,`,
	";", `\;`,
)

var textUnescaper = strings.NewReplacer(
	`\n`, "\n",
	`\,`, ",",
	`\;`, ";",
)

// EscapeText escapes free text for insertion into a property value
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}

// UnescapeText reverses EscapeText
func UnescapeText(s string) string {
	return textUnescaper.Replace(s)
}

// Encoder turns an ordered recommendation sequence into a single iCalendar
// document. It never re-sorts: event blocks appear in input order, ordering
// decisions belong to the Partitioner or the caller.
type Encoder struct {
	eventDuration time.Duration
}

// NewEncoder creates an encoder with the given nominal event duration
func NewEncoder(eventDuration time.Duration) *Encoder {
	return &Encoder{eventDuration: eventDuration}
}

// Encode produces the complete feed document.
//
// The whole document is built in memory before the caller writes anything, so
// an encoding failure can never leave a truncated artifact behind. A record
// missing songTitle, story or scheduledDate aborts the entire encode with an
// ENCODING_ERROR; upstream validation should make that impossible, this is
// the last line against store-level drift.
func (e *Encoder) Encode(recs []*recommendation.Recommendation) (string, error) {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + prodID,
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"X-WR-CALNAME:" + calendarName,
		"X-WR-CALDESC:" + calendarDesc,
		"REFRESH-INTERVAL;VALUE=DURATION:" + refreshInterval,
	}

	for _, rec := range recs {
		eventLines, err := e.encodeEvent(rec)
		if err != nil {
			return "", err
		}
		lines = append(lines, eventLines...)
	}

	lines = append(lines, "END:VCALENDAR")
	return strings.Join(lines, "\n"), nil
}

func (e *Encoder) encodeEvent(rec *recommendation.Recommendation) ([]string, error) {
	if rec.SongTitle == "" || rec.Story == "" || rec.ScheduledDate.IsZero() {
		return nil, NewEncodingError(rec.ID)
	}

	start := rec.ScheduledDate.UTC()
	end := start.Add(e.eventDuration)

	return []string{
		"BEGIN:VEVENT",
		// The UID is derived from the immutable record ID, so re-encoding the
		// same record across regenerations keeps the event identity stable and
		// calendar clients see an update, not a new event.
		fmt.Sprintf("UID:%s-%s@%s", uidPrefix, rec.ID, uidDomain),
		"DTSTART:" + start.Format(icsTimeLayout),
		"DTEND:" + end.Format(icsTimeLayout),
		"SUMMARY:" + summaryMarker + EscapeText(rec.SongTitle),
		"DESCRIPTION:" + e.description(rec),
		"LOCATION:" + eventLocation,
		"STATUS:CONFIRMED",
		"CATEGORIES:" + eventCategories,
		"END:VEVENT",
	}, nil
}

func (e *Encoder) description(rec *recommendation.Recommendation) string {
	var b strings.Builder

	b.WriteString(EscapeText(rec.Story))
	b.WriteString(`\n\n🎵 Listen Now:\n`)

	if rec.SpotifyLink != "" {
		b.WriteString(`🎧 Spotify: ` + EscapeText(rec.SpotifyLink) + `\n`)
	}
	if rec.YoutubeLink != "" {
		b.WriteString(`📺 YouTube: ` + EscapeText(rec.YoutubeLink) + `\n`)
	}

	b.WriteString(`\n` + descFooter)
	return b.String()
}
