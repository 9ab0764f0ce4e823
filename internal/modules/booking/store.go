package booking

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

// NewStore builds the gorm-backed Store used outside of tests.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) InTx(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}

func (s *gormStore) EventByID(ctx context.Context, id int64) (*domain.Event, error) {
	return repository.NewEventRepository(s.db).GetByID(ctx, id)
}

func (s *gormStore) RoomByID(ctx context.Context, id int64) (*domain.Room, error) {
	return repository.NewRoomRepository(s.db).GetByID(ctx, id)
}

func (s *gormStore) EquipmentByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	return repository.NewEquipmentRepository(s.db).GetByID(ctx, id)
}

func (s *gormStore) FirstOverlapping(ctx context.Context, roomID int64, start, end time.Time) (*domain.Booking, error) {
	return repository.NewBookingRepository(s.db).FirstOverlapping(ctx, roomID, start, end)
}

func (s *gormStore) CreateBooking(ctx context.Context, b *domain.Booking) error {
	return repository.NewBookingRepository(s.db).Create(ctx, b)
}

func (s *gormStore) CreateEquipmentRequest(ctx context.Context, req *domain.EquipmentRequest) error {
	return repository.NewEquipmentRequestRepository(s.db).Create(ctx, req)
}

func (s *gormStore) SetEventVenue(ctx context.Context, eventID int64, venue string) error {
	return repository.NewEventRepository(s.db).SetVenueLocation(ctx, eventID, venue)
}

func (s *gormStore) BookingsByEvent(ctx context.Context, eventID int64) ([]domain.Booking, error) {
	return repository.NewBookingRepository(s.db).ListByEvent(ctx, eventID)
}

func (s *gormStore) EquipmentRequestsByEvent(ctx context.Context, eventID int64) ([]domain.EquipmentRequest, error) {
	return repository.NewEquipmentRequestRepository(s.db).ListByEvent(ctx, eventID)
}
