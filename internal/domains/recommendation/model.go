package recommendation

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Recommendation is the sole persisted entity: a curated song with the story
// behind it and the instant it appears on the published calendar.
// Records are immutable after creation; the only mutation is a hard delete.
type Recommendation struct {
	ID            string    `json:"id" db:"id"`
	SongTitle     string    `json:"song_title" db:"song_title"`
	Story         string    `json:"story" db:"story"`
	SpotifyLink   string    `json:"spotify_link,omitempty" db:"spotify_link"`
	YoutubeLink   string    `json:"youtube_link,omitempty" db:"youtube_link"`
	ScheduledDate time.Time `json:"scheduled_date" db:"scheduled_date"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`

	// Attribution of the creating administrator, denormalized at write time
	AdminEmail string `json:"admin_email,omitempty" db:"admin_email"`
	AdminName  string `json:"admin_name,omitempty" db:"admin_name"`
}

// CreateRequest is the add-form payload
type CreateRequest struct {
	SongTitle     string    `json:"song_title"`
	Story         string    `json:"story"`
	SpotifyLink   string    `json:"spotify_link"`
	YoutubeLink   string    `json:"youtube_link"`
	ScheduledDate time.Time `json:"scheduled_date"`
}

// Validate enforces the submission invariants before anything is persisted
func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.SongTitle, validation.Required),
		validation.Field(&r.Story, validation.Required),
		validation.Field(&r.ScheduledDate, validation.Required),
		validation.Field(&r.SpotifyLink, is.URL),
		validation.Field(&r.YoutubeLink, is.URL),
	)
}

// Response is the API shape of a recommendation
type Response struct {
	ID            string    `json:"id"`
	SongTitle     string    `json:"song_title"`
	Story         string    `json:"story"`
	SpotifyLink   string    `json:"spotify_link,omitempty"`
	YoutubeLink   string    `json:"youtube_link,omitempty"`
	ScheduledDate time.Time `json:"scheduled_date"`
	CreatedAt     time.Time `json:"created_at"`
}

// PartitionedResponse is the admin view: what is still scheduled and what
// has already been published, each in display order.
type PartitionedResponse struct {
	Upcoming []*Response `json:"upcoming"`
	Past     []*Response `json:"past"`
}

func (r *Recommendation) ToResponse() *Response {
	return &Response{
		ID:            r.ID,
		SongTitle:     r.SongTitle,
		Story:         r.Story,
		SpotifyLink:   r.SpotifyLink,
		YoutubeLink:   r.YoutubeLink,
		ScheduledDate: r.ScheduledDate,
		CreatedAt:     r.CreatedAt,
	}
}
