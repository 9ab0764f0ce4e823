package events

import (
	"context"

	"eventspace/internal/domain"
	"eventspace/internal/repository"
)

type EventStore interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	UpdateStatus(ctx context.Context, id int64, status domain.EventStatus) error
	List(ctx context.Context, f repository.EventFilters) ([]domain.Event, int64, error)
	ListByCreator(ctx context.Context, creator domain.Creator) ([]domain.Event, error)
	DeleteCascade(ctx context.Context, id int64) error
}

type RegistrationCounter interface {
	CountByEvent(ctx context.Context, eventID int64) (int64, error)
}

type CategoryLookup interface {
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
}
