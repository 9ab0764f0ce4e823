package registration

import (
	"context"

	"eventspace/internal/domain"
)

type RegistrationStore interface {
	Create(ctx context.Context, reg *domain.Registration) error
	Exists(ctx context.Context, studentID string, eventID int64) (bool, error)
	CountByEvent(ctx context.Context, eventID int64) (int64, error)
	ListByStudent(ctx context.Context, studentID string) ([]domain.Registration, error)
	Delete(ctx context.Context, studentID string, eventID int64) error
}

type EventLookup interface {
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
}
