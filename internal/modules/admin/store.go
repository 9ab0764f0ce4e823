package admin

import (
	"context"
	"time"

	"eventspace/internal/domain"
	"eventspace/internal/repository"

	"gorm.io/gorm"
)

type gormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) InTx(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}

func (s *gormStore) BookingByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return repository.NewBookingRepository(s.db).GetByID(ctx, id)
}

func (s *gormStore) SetBookingStatusIfPending(ctx context.Context, id int64, to domain.RequestStatus, adminID string) (bool, error) {
	return repository.NewBookingRepository(s.db).UpdateStatusIfPending(ctx, id, to, adminID)
}

func (s *gormStore) SetBookingStatusIfApproved(ctx context.Context, id int64, to domain.RequestStatus, adminID string) (bool, error) {
	return repository.NewBookingRepository(s.db).UpdateStatusIfApproved(ctx, id, to, adminID)
}

func (s *gormStore) EquipmentRequestByID(ctx context.Context, id int64) (*domain.EquipmentRequest, error) {
	return repository.NewEquipmentRequestRepository(s.db).GetByID(ctx, id)
}

func (s *gormStore) SetEquipmentRequestStatusFrom(ctx context.Context, id int64, from, to domain.RequestStatus, adminID string) (bool, error) {
	return repository.NewEquipmentRequestRepository(s.db).UpdateStatusFrom(ctx, id, from, to, adminID)
}

func (s *gormStore) RoomByID(ctx context.Context, id int64) (*domain.Room, error) {
	return repository.NewRoomRepository(s.db).GetByID(ctx, id)
}

func (s *gormStore) SetEventVenue(ctx context.Context, eventID int64, venue string) error {
	return repository.NewEventRepository(s.db).SetVenueLocation(ctx, eventID, venue)
}

func (s *gormStore) ReserveStock(ctx context.Context, equipmentID int64, qty int) error {
	return repository.NewEquipmentRepository(s.db).Reserve(ctx, equipmentID, qty)
}

func (s *gormStore) ReleaseStock(ctx context.Context, equipmentID int64, qty int) error {
	return repository.NewEquipmentRepository(s.db).Release(ctx, equipmentID, qty)
}

func (s *gormStore) PendingBookings(ctx context.Context) ([]domain.Booking, error) {
	return repository.NewBookingRepository(s.db).ListPending(ctx)
}

func (s *gormStore) PendingEquipmentRequests(ctx context.Context) ([]domain.EquipmentRequest, error) {
	return repository.NewEquipmentRequestRepository(s.db).ListPending(ctx)
}

func (s *gormStore) CountPendingBookings(ctx context.Context) (int64, error) {
	return repository.NewBookingRepository(s.db).CountPending(ctx)
}

func (s *gormStore) CountPendingEquipmentRequests(ctx context.Context) (int64, error) {
	return repository.NewEquipmentRequestRepository(s.db).CountPending(ctx)
}

func (s *gormStore) CountNonAdminUsers(ctx context.Context) (int64, error) {
	return repository.NewUserRepository(s.db).CountNonAdmin(ctx)
}

func (s *gormStore) CountUpcomingEvents(ctx context.Context, now time.Time) (int64, error) {
	return repository.NewEventRepository(s.db).CountUpcoming(ctx, now)
}
