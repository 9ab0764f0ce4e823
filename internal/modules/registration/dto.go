package registration

import (
	"time"

	"eventspace/internal/domain"
)

// RegisteredEvent is one row of a student's "my registrations" screen:
// the registration plus enough of the event to render it.
type RegisteredEvent struct {
	EventID       int64              `json:"event_id"`
	Title         string             `json:"title"`
	StartDatetime time.Time          `json:"start_datetime"`
	EndDatetime   time.Time          `json:"end_datetime"`
	VenueLocation string             `json:"venue_location"`
	EventStatus   domain.EventStatus `json:"event_status"`
	RegisteredAt  time.Time          `json:"registered_at"`
}
