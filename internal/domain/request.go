package domain

import "time"

// RequestStatus is the lookup shared by venue bookings and equipment
// requests: 1 Pending, 2 Approved, 3 Rejected.
type RequestStatus int

const (
	StatusPending  RequestStatus = 1
	StatusApproved RequestStatus = 2
	StatusRejected RequestStatus = 3
)

func (s RequestStatus) String() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusApproved:
		return "Approved"
	case StatusRejected:
		return "Rejected"
	}
	return "Unknown"
}

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// Booking is a venue reservation request tied to one event. The requested
// interval is copied from the event at submission time and compared
// half-open: a booking ending exactly when another starts does not clash.
type Booking struct {
	ID               int64         `json:"id"`
	RoomID           int64         `json:"room_id"`
	EventID          int64         `json:"event_id"`
	ReqStart         time.Time     `json:"req_start"`
	ReqEnd           time.Time     `json:"req_end"`
	Status           RequestStatus `json:"status"`
	Requester        Creator       `json:"requester"`
	ApprovedByAdmin  string        `json:"approved_by_admin,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// Overlaps reports whether [s,e) shares any instant with the booking's
// requested interval.
func (b *Booking) Overlaps(s, e time.Time) bool {
	return b.ReqStart.Before(e) && b.ReqEnd.After(s)
}

type EquipmentRequest struct {
	ID              int64         `json:"id"`
	EquipmentID     int64         `json:"equipment_id"`
	EventID         int64         `json:"event_id"`
	Quantity        int           `json:"quantity" validate:"gt=0"`
	Status          RequestStatus `json:"status"`
	ApprovedByAdmin string        `json:"approved_by_admin,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

type Registration struct {
	ID           int64     `json:"id"`
	StudentID    string    `json:"student_id"`
	EventID      int64     `json:"event_id"`
	Status       string    `json:"status"`
	RegisteredAt time.Time `json:"registered_at"`
}

type Announcement struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title" validate:"required"`
	Message        string    `json:"message" validate:"required"`
	TargetAudience string    `json:"target_audience,omitempty"`
	AdminID        string    `json:"admin_id"`
	SentAt         time.Time `json:"sent_at"`
}
