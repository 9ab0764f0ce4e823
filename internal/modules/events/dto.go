package events

import (
	"time"

	"eventspace/internal/domain"
)

type CreateEventRequest struct {
	Title         string    `json:"title" binding:"required"`
	Description   string    `json:"description"`
	StartDatetime time.Time `json:"start_datetime" binding:"required"`
	EndDatetime   time.Time `json:"end_datetime" binding:"required"`
	Capacity      int       `json:"capacity" binding:"required,gt=0"`
	CategoryID    int64     `json:"category_id"`
}

type ListFilters struct {
	CategoryID int64
	Search     string
	Sort       string
	Page       int
	Limit      int
}

// EventView is the read shape: Status carries the effective status, with
// expiry derived at read time rather than stored.
type EventView struct {
	ID            int64              `json:"id"`
	Title         string             `json:"title"`
	Description   string             `json:"description,omitempty"`
	StartDatetime time.Time          `json:"start_datetime"`
	EndDatetime   time.Time          `json:"end_datetime"`
	Status        domain.EventStatus `json:"status"`
	VenueLocation string             `json:"venue_location"`
	Capacity      int                `json:"capacity"`
	CategoryID    int64              `json:"category_id,omitempty"`
	Creator       domain.Creator     `json:"creator"`
}

type EventDetail struct {
	EventView
	RegisteredCount int64 `json:"registered_count"`
	SpotsLeft       int64 `json:"spots_left"`
}

type ListResponse struct {
	Events     []EventView `json:"events"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	Total      int64       `json:"total"`
	TotalPages int         `json:"total_pages"`
}

func viewOf(e *domain.Event, now time.Time) EventView {
	return EventView{
		ID:            e.ID,
		Title:         e.Title,
		Description:   e.Description,
		StartDatetime: e.StartDatetime,
		EndDatetime:   e.EndDatetime,
		Status:        e.EffectiveStatus(now),
		VenueLocation: e.VenueLocation,
		Capacity:      e.Capacity,
		CategoryID:    e.CategoryID,
		Creator:       e.Creator,
	}
}
