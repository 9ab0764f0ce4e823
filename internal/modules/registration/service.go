package registration

import (
	"context"
	"errors"
	"time"

	"eventspace/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	registrations RegistrationStore
	events        EventLookup
}

func NewService(registrations RegistrationStore, events EventLookup) *Service {
	return &Service{registrations: registrations, events: events}
}

// Register signs a student up for a published event. Only Upcoming events
// with spots left accept registrations; expired or cancelled ones do not.
func (s *Service) Register(ctx context.Context, studentID string, eventID int64) (*domain.Registration, error) {
	e, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	now := time.Now()
	if e.EffectiveStatus(now) != domain.EventUpcoming {
		return nil, ErrEventNotOpen
	}

	exists, err := s.registrations.Exists(ctx, studentID, eventID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyRegistered
	}

	count, err := s.registrations.CountByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if count >= int64(e.Capacity) {
		return nil, ErrEventFull
	}

	reg := &domain.Registration{
		StudentID:    studentID,
		EventID:      eventID,
		Status:       "registered",
		RegisteredAt: now,
	}
	if err := s.registrations.Create(ctx, reg); err != nil {
		// Two concurrent registrations race past the Exists check; the
		// unique (student_id, event_id) index catches the loser.
		if isDuplicate(err) {
			return nil, ErrAlreadyRegistered
		}
		return nil, err
	}
	return reg, nil
}

// Cancel removes the student's registration, freeing a spot.
func (s *Service) Cancel(ctx context.Context, studentID string, eventID int64) error {
	if err := s.registrations.Delete(ctx, studentID, eventID); err != nil {
		return mapNotFound(err)
	}
	return nil
}

// MyRegistrations lists the student's registrations newest first, with the
// event snapshot each one points at.
func (s *Service) MyRegistrations(ctx context.Context, studentID string) ([]RegisteredEvent, error) {
	rows, err := s.registrations.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	out := make([]RegisteredEvent, 0, len(rows))
	for _, reg := range rows {
		e, err := s.events.GetByID(ctx, reg.EventID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		out = append(out, RegisteredEvent{
			EventID:       e.ID,
			Title:         e.Title,
			StartDatetime: e.StartDatetime,
			EndDatetime:   e.EndDatetime,
			VenueLocation: e.VenueLocation,
			EventStatus:   e.EffectiveStatus(now),
			RegisteredAt:  reg.RegisteredAt,
		})
	}
	return out, nil
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
