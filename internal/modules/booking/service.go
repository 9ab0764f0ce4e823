package booking

import (
	"context"
	"errors"
	"time"

	"eventspace/internal/domain"
	"eventspace/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// SubmitBooking files a venue request for the requester's event. The
// requested interval is copied from the event. The conflict scan covers
// every non-rejected booking of the room, not just the event's own, and
// runs in the same transaction as the insert; on Postgres the
// no_double_booking constraint backstops the race between two concurrent
// submitters.
func (s *Service) SubmitBooking(ctx context.Context, req SubmitBookingRequest, requester domain.Creator) (*domain.Booking, error) {
	var (
		out              *domain.Booking
		reqStart, reqEnd time.Time
	)

	err := s.store.InTx(ctx, func(tx Store) error {
		ev, err := tx.EventByID(ctx, req.EventID)
		if err != nil {
			return mapNotFound(err)
		}
		if ev.Creator != requester {
			return ErrForbidden
		}
		if !ev.StartDatetime.Before(ev.EndDatetime) {
			return ErrValidation
		}
		if ev.Status == domain.EventCancelled {
			return ErrValidation
		}
		reqStart, reqEnd = ev.StartDatetime, ev.EndDatetime

		room, err := tx.RoomByID(ctx, req.RoomID)
		if err != nil {
			return mapNotFound(err)
		}
		if !room.IsActive {
			return ErrValidation
		}

		existing, err := tx.FirstOverlapping(ctx, room.ID, ev.StartDatetime, ev.EndDatetime)
		if err != nil {
			return err
		}
		if existing != nil {
			// Refused: the event's venue text stays whatever it was.
			return conflictWith(existing)
		}

		b := &domain.Booking{
			RoomID:    room.ID,
			EventID:   ev.ID,
			ReqStart:  ev.StartDatetime,
			ReqEnd:    ev.EndDatetime,
			Status:    domain.StatusPending,
			Requester: requester,
		}
		if err := tx.CreateBooking(ctx, b); err != nil {
			if repository.IsDoubleBookingViolation(err) {
				// A concurrent submitter won the insert; the tx is dead, so
				// the blocking interval is looked up after the rollback.
				return errConflictRaced
			}
			return err
		}

		if err := tx.SetEventVenue(ctx, ev.ID, domain.VenuePendingApproval); err != nil {
			return err
		}

		out = b
		return nil
	})
	if errors.Is(err, errConflictRaced) {
		if existing, qerr := s.store.FirstOverlapping(ctx, req.RoomID, reqStart, reqEnd); qerr == nil && existing != nil {
			return nil, conflictWith(existing)
		}
		// The winner is not visible yet (or the lookup failed); report the
		// requested window so the caller still gets a conflict.
		return nil, &ConflictError{RoomID: req.RoomID, ExistingStart: reqStart, ExistingEnd: reqEnd}
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SubmitEquipment files an equipment request. Stock is not reserved here:
// feasibility against current stock is enforced at approval time, so a
// request may ask for more than is currently available.
func (s *Service) SubmitEquipment(ctx context.Context, req SubmitEquipmentRequest, requester domain.Creator) (*domain.EquipmentRequest, error) {
	if req.Quantity <= 0 {
		return nil, ErrValidation
	}

	var out *domain.EquipmentRequest

	err := s.store.InTx(ctx, func(tx Store) error {
		ev, err := tx.EventByID(ctx, req.EventID)
		if err != nil {
			return mapNotFound(err)
		}
		if ev.Creator != requester {
			return ErrForbidden
		}

		if _, err := tx.EquipmentByID(ctx, req.EquipmentID); err != nil {
			return mapNotFound(err)
		}

		er := &domain.EquipmentRequest{
			EquipmentID: req.EquipmentID,
			EventID:     ev.ID,
			Quantity:    req.Quantity,
			Status:      domain.StatusPending,
		}
		if err := tx.CreateEquipmentRequest(ctx, er); err != nil {
			return err
		}

		out = er
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// EventRequests lists the venue and equipment requests of one event, for
// its creator.
func (s *Service) EventRequests(ctx context.Context, eventID int64, requester domain.Creator) (*EventRequests, error) {
	ev, err := s.store.EventByID(ctx, eventID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if ev.Creator != requester {
		return nil, ErrForbidden
	}

	bookings, err := s.store.BookingsByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	requests, err := s.store.EquipmentRequestsByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	return &EventRequests{Bookings: bookings, EquipmentRequests: requests}, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
