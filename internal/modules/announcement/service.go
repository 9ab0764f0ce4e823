package announcement

import (
	"context"
	"strings"
	"time"

	"eventspace/internal/domain"
	"eventspace/internal/pkg/validator"
)

// Audiences an announcement may target. Empty means everyone.
var validAudiences = map[string]bool{
	"":           true,
	"all":        true,
	"students":   true,
	"organizers": true,
	"lecturers":  true,
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Send records an announcement from an admin. Delivery is out of band;
// the record is the history shown back to the admin.
func (s *Service) Send(ctx context.Context, adminID string, req SendRequest) (*domain.Announcement, error) {
	title := strings.TrimSpace(req.Title)
	message := strings.TrimSpace(req.Message)
	if title == "" || message == "" {
		return nil, ErrValidation
	}
	if !validAudiences[req.TargetAudience] {
		return nil, ErrValidation
	}

	a := &domain.Announcement{
		Title:          title,
		Message:        message,
		TargetAudience: req.TargetAudience,
		AdminID:        adminID,
		SentAt:         time.Now(),
	}
	if fieldErrs := validator.Validate(a); fieldErrs != nil {
		return nil, ErrValidation
	}
	if err := s.store.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// History lists the admin's past announcements, newest first.
func (s *Service) History(ctx context.Context, adminID string) ([]domain.Announcement, error) {
	return s.store.ListByAdmin(ctx, adminID)
}
