package booking

import (
	"time"

	"eventspace/internal/domain"
)

type SubmitBookingRequest struct {
	EventID int64 `json:"event_id" binding:"required"`
	RoomID  int64 `json:"room_id" binding:"required"`
}

type SubmitEquipmentRequest struct {
	EventID     int64 `json:"event_id" binding:"required"`
	EquipmentID int64 `json:"equipment_id" binding:"required"`
	Quantity    int   `json:"quantity" binding:"required,gt=0"`
}

type ConflictDetails struct {
	RoomID        int64     `json:"room_id"`
	ExistingStart time.Time `json:"existing_start"`
	ExistingEnd   time.Time `json:"existing_end"`
}

type EventRequests struct {
	Bookings          []domain.Booking          `json:"bookings"`
	EquipmentRequests []domain.EquipmentRequest `json:"equipment_requests"`
}
