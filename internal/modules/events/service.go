package events

import (
	"context"
	"errors"
	"time"

	"eventspace/internal/domain"
	"eventspace/internal/pkg/validator"
	"eventspace/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	events        EventStore
	registrations RegistrationCounter
	categories    CategoryLookup
}

func NewService(events EventStore, registrations RegistrationCounter, categories CategoryLookup) *Service {
	return &Service{events: events, registrations: registrations, categories: categories}
}

// Create stores a new draft event for its creator. Events start Pending
// and unbooked; publishing and venue assignment are separate steps.
func (s *Service) Create(ctx context.Context, req CreateEventRequest, creator domain.Creator) (*domain.Event, error) {
	if !req.StartDatetime.Before(req.EndDatetime) {
		return nil, ErrValidation
	}
	if req.Capacity <= 0 {
		return nil, ErrValidation
	}
	if req.CategoryID != 0 {
		if _, err := s.categories.GetByID(ctx, req.CategoryID); err != nil {
			return nil, mapNotFound(err)
		}
	}

	e := &domain.Event{
		Title:         req.Title,
		Description:   req.Description,
		StartDatetime: req.StartDatetime,
		EndDatetime:   req.EndDatetime,
		Status:        domain.EventPending,
		VenueLocation: domain.VenueNotBooked,
		Capacity:      req.Capacity,
		CategoryID:    req.CategoryID,
		Creator:       creator,
	}
	if fieldErrs := validator.Validate(e); fieldErrs != nil {
		return nil, ErrValidation
	}
	if err := s.events.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// List serves the public browse screen: published events starting in the
// future only.
func (s *Service) List(ctx context.Context, f ListFilters) (*ListResponse, error) {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 9
	}
	if f.Page <= 0 {
		f.Page = 1
	}

	now := time.Now()
	rows, total, err := s.events.List(ctx, repository.EventFilters{
		Status:     domain.EventUpcoming,
		CategoryID: f.CategoryID,
		Search:     f.Search,
		Sort:       f.Sort,
		FromTime:   now,
		Limit:      f.Limit,
		Offset:     (f.Page - 1) * f.Limit,
	})
	if err != nil {
		return nil, err
	}

	views := make([]EventView, 0, len(rows))
	for i := range rows {
		views = append(views, viewOf(&rows[i], now))
	}

	return &ListResponse{
		Events:     views,
		Page:       f.Page,
		Limit:      f.Limit,
		Total:      total,
		TotalPages: int((total + int64(f.Limit) - 1) / int64(f.Limit)),
	}, nil
}

func (s *Service) Detail(ctx context.Context, id int64) (*EventDetail, error) {
	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	registered, err := s.registrations.CountByEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	spots := int64(e.Capacity) - registered
	if spots < 0 {
		spots = 0
	}

	return &EventDetail{
		EventView:       viewOf(e, time.Now()),
		RegisteredCount: registered,
		SpotsLeft:       spots,
	}, nil
}

func (s *Service) MyEvents(ctx context.Context, creator domain.Creator) ([]EventView, error) {
	rows, err := s.events.ListByCreator(ctx, creator)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	views := make([]EventView, 0, len(rows))
	for i := range rows {
		views = append(views, viewOf(&rows[i], now))
	}
	return views, nil
}

// Publish moves a draft to Upcoming, making it visible to students.
func (s *Service) Publish(ctx context.Context, id int64, creator domain.Creator) (*domain.Event, error) {
	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if e.Creator != creator {
		return nil, ErrForbidden
	}
	if e.Status != domain.EventPending {
		return nil, ErrInvalidTransition
	}

	if err := s.events.UpdateStatus(ctx, id, domain.EventUpcoming); err != nil {
		return nil, err
	}
	e.Status = domain.EventUpcoming
	return e, nil
}

func (s *Service) Cancel(ctx context.Context, id int64, creator domain.Creator) (*domain.Event, error) {
	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if e.Creator != creator {
		return nil, ErrForbidden
	}
	if e.Status == domain.EventCancelled {
		return nil, ErrInvalidTransition
	}

	if err := s.events.UpdateStatus(ctx, id, domain.EventCancelled); err != nil {
		return nil, err
	}
	e.Status = domain.EventCancelled
	return e, nil
}

// Delete removes the event and everything hanging off it (bookings,
// equipment requests, registrations) in one transaction.
func (s *Service) Delete(ctx context.Context, id int64, creator domain.Creator) error {
	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		return mapNotFound(err)
	}
	if e.Creator != creator {
		return ErrForbidden
	}

	return s.events.DeleteCascade(ctx, id)
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
