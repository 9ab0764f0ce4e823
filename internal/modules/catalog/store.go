package catalog

import (
	"context"

	"eventspace/internal/repository"

	"gorm.io/gorm"
)

type gormUsage struct {
	bookings *repository.BookingRepository
	requests *repository.EquipmentRequestRepository
	events   *repository.EventRepository
}

func NewUsageCounter(db *gorm.DB) UsageCounter {
	return &gormUsage{
		bookings: repository.NewBookingRepository(db),
		requests: repository.NewEquipmentRequestRepository(db),
		events:   repository.NewEventRepository(db),
	}
}

func (u *gormUsage) CountBookingsByRoom(ctx context.Context, roomID int64) (int64, error) {
	return u.bookings.CountByRoom(ctx, roomID)
}

func (u *gormUsage) CountRequestsByEquipment(ctx context.Context, equipmentID int64) (int64, error) {
	return u.requests.CountByEquipment(ctx, equipmentID)
}

func (u *gormUsage) CountEventsByCategory(ctx context.Context, categoryID int64) (int64, error) {
	return u.events.CountByCategory(ctx, categoryID)
}
