package catalog

import (
	"context"

	"eventspace/internal/domain"
)

type RoomStore interface {
	Create(ctx context.Context, r *domain.Room) error
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	Update(ctx context.Context, r *domain.Room) error
	List(ctx context.Context, activeOnly bool) ([]domain.Room, error)
	Delete(ctx context.Context, id int64) error
}

type EquipmentStore interface {
	Create(ctx context.Context, e *domain.Equipment) error
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
	Update(ctx context.Context, e *domain.Equipment) error
	List(ctx context.Context) ([]domain.Equipment, error)
	Delete(ctx context.Context, id int64) error
}

type CategoryStore interface {
	Create(ctx context.Context, c *domain.Category) error
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	FindByNameFold(ctx context.Context, name string, excludeID int64) (*domain.Category, error)
	Update(ctx context.Context, c *domain.Category) error
	List(ctx context.Context, search string) ([]domain.Category, error)
	Delete(ctx context.Context, id int64) error
}

// UsageCounter answers "is this reference row still pointed at": rooms by
// bookings, equipment by requests, categories by events.
type UsageCounter interface {
	CountBookingsByRoom(ctx context.Context, roomID int64) (int64, error)
	CountRequestsByEquipment(ctx context.Context, equipmentID int64) (int64, error)
	CountEventsByCategory(ctx context.Context, categoryID int64) (int64, error)
}
