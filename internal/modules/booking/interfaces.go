package booking

import (
	"context"
	"time"

	"eventspace/internal/domain"
)

// Store is the persistence surface of the submission path. InTx runs fn
// against a transaction-bound Store: the conflict scan and the insert must
// commit or fail together.
type Store interface {
	InTx(ctx context.Context, fn func(Store) error) error

	EventByID(ctx context.Context, id int64) (*domain.Event, error)
	RoomByID(ctx context.Context, id int64) (*domain.Room, error)
	EquipmentByID(ctx context.Context, id int64) (*domain.Equipment, error)

	FirstOverlapping(ctx context.Context, roomID int64, start, end time.Time) (*domain.Booking, error)
	CreateBooking(ctx context.Context, b *domain.Booking) error
	CreateEquipmentRequest(ctx context.Context, req *domain.EquipmentRequest) error
	SetEventVenue(ctx context.Context, eventID int64, venue string) error

	BookingsByEvent(ctx context.Context, eventID int64) ([]domain.Booking, error)
	EquipmentRequestsByEvent(ctx context.Context, eventID int64) ([]domain.EquipmentRequest, error)
}
