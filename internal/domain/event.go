package domain

import "time"

type EventStatus string

const (
	EventPending   EventStatus = "Pending"
	EventUpcoming  EventStatus = "Upcoming"
	EventExpired   EventStatus = "Expired"
	EventCancelled EventStatus = "Cancelled"
)

// Venue sentinels shown in Event.VenueLocation while no room is assigned.
// The field is a cache of the last booking decision, not a source of truth.
const (
	VenueNotBooked       = "Not Booked"
	VenuePendingApproval = "Pending Approval"
)

// CreatorKind tags the single owner reference of an event or request.
// Exactly one of organizer/lecturer creates an event, so the owner is a
// tagged union rather than two nullable foreign keys.
type CreatorKind string

const (
	CreatorOrganizer CreatorKind = "organizer"
	CreatorLecturer  CreatorKind = "lecturer"
)

type Creator struct {
	Kind   CreatorKind `json:"kind"`
	UserID string      `json:"user_id"`
}

func CreatorForRole(role Role, userID string) (Creator, bool) {
	switch role {
	case RoleOrganizer:
		return Creator{Kind: CreatorOrganizer, UserID: userID}, true
	case RoleLecturer:
		return Creator{Kind: CreatorLecturer, UserID: userID}, true
	}
	return Creator{}, false
}

type Event struct {
	ID            int64       `json:"id"`
	Title         string      `json:"title" validate:"required"`
	Description   string      `json:"description,omitempty"`
	StartDatetime time.Time   `json:"start_datetime" validate:"required"`
	EndDatetime   time.Time   `json:"end_datetime" validate:"required"`
	Status        EventStatus `json:"status"`
	VenueLocation string      `json:"venue_location"`
	Capacity      int         `json:"capacity" validate:"gt=0"`
	CategoryID    int64       `json:"category_id,omitempty"`
	Creator       Creator     `json:"creator"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// EffectiveStatus derives the displayed status without mutating stored
// state: an Upcoming event whose end has passed reads as Expired.
func (e *Event) EffectiveStatus(now time.Time) EventStatus {
	if e.Status == EventUpcoming && e.EndDatetime.Before(now) {
		return EventExpired
	}
	return e.Status
}
