package admin

import (
	"context"
	"time"

	"eventspace/internal/domain"
)

// Store is the persistence surface of the approval workflow. The
// SetXStatus* methods are compare-and-swap updates: they report false when
// the row was not in the expected source status, which the service turns
// into AlreadyProcessed. InTx binds every call inside fn to one
// transaction so a decision and its side effects commit or roll back as a
// unit.
type Store interface {
	InTx(ctx context.Context, fn func(Store) error) error

	BookingByID(ctx context.Context, id int64) (*domain.Booking, error)
	SetBookingStatusIfPending(ctx context.Context, id int64, to domain.RequestStatus, adminID string) (bool, error)
	SetBookingStatusIfApproved(ctx context.Context, id int64, to domain.RequestStatus, adminID string) (bool, error)

	EquipmentRequestByID(ctx context.Context, id int64) (*domain.EquipmentRequest, error)
	SetEquipmentRequestStatusFrom(ctx context.Context, id int64, from, to domain.RequestStatus, adminID string) (bool, error)

	RoomByID(ctx context.Context, id int64) (*domain.Room, error)
	SetEventVenue(ctx context.Context, eventID int64, venue string) error

	ReserveStock(ctx context.Context, equipmentID int64, qty int) error
	ReleaseStock(ctx context.Context, equipmentID int64, qty int) error

	PendingBookings(ctx context.Context) ([]domain.Booking, error)
	PendingEquipmentRequests(ctx context.Context) ([]domain.EquipmentRequest, error)
	CountPendingBookings(ctx context.Context) (int64, error)
	CountPendingEquipmentRequests(ctx context.Context) (int64, error)
	CountNonAdminUsers(ctx context.Context) (int64, error)
	CountUpcomingEvents(ctx context.Context, now time.Time) (int64, error)
}

// UserDirectory covers the account-management screens.
type UserDirectory interface {
	List(ctx context.Context, role domain.Role, search string) ([]domain.User, error)
	Delete(ctx context.Context, id string) error
}
