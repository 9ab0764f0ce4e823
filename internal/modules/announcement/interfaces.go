package announcement

import (
	"context"

	"eventspace/internal/domain"
)

type Store interface {
	Create(ctx context.Context, a *domain.Announcement) error
	ListByAdmin(ctx context.Context, adminID string) ([]domain.Announcement, error)
}
