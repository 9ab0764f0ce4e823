package admin

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
	users UserDirectory
}

func NewService(store Store, users UserDirectory) *Service {
	return &Service{store: store, users: users}
}

// DecideBooking applies an administrator's approve/reject decision to a
// venue request. The Pending-only guard makes the decision single-shot:
// a second administrator (or a double click) gets AlreadyProcessed and
// causes no further side effect. Status change and venue text update
// commit atomically.
func (s *Service) DecideBooking(ctx context.Context, bookingID int64, decision domain.Decision, adminID string) (*domain.Booking, error) {
	var out *domain.Booking

	err := s.store.InTx(ctx, func(tx Store) error {
		b, err := tx.BookingByID(ctx, bookingID)
		if err != nil {
			return mapNotFound(err)
		}

		switch decision {
		case domain.DecisionApprove:
			ok, err := tx.SetBookingStatusIfPending(ctx, bookingID, domain.StatusApproved, adminID)
			if err != nil {
				return err
			}
			if !ok {
				return ErrAlreadyProcessed
			}

			room, err := tx.RoomByID(ctx, b.RoomID)
			if err != nil {
				return err
			}
			if err := tx.SetEventVenue(ctx, b.EventID, room.Name); err != nil {
				return err
			}
			b.Status = domain.StatusApproved

		case domain.DecisionReject:
			ok, err := tx.SetBookingStatusIfPending(ctx, bookingID, domain.StatusRejected, adminID)
			if err != nil {
				return err
			}
			if !ok {
				return ErrAlreadyProcessed
			}

			// Reset so the requester sees they need to try again.
			if err := tx.SetEventVenue(ctx, b.EventID, domain.VenueNotBooked); err != nil {
				return err
			}
			b.Status = domain.StatusRejected

		default:
			return ErrValidation
		}

		b.ApprovedByAdmin = adminID
		out = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RevertBookingApproval is the administrative correction path: an Approved
// booking is moved to Rejected and the event's venue text falls back to
// the not-booked sentinel.
func (s *Service) RevertBookingApproval(ctx context.Context, bookingID int64, adminID string) (*domain.Booking, error) {
	var out *domain.Booking

	err := s.store.InTx(ctx, func(tx Store) error {
		b, err := tx.BookingByID(ctx, bookingID)
		if err != nil {
			return mapNotFound(err)
		}

		ok, err := tx.SetBookingStatusIfApproved(ctx, bookingID, domain.StatusRejected, adminID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrAlreadyProcessed
		}

		if err := tx.SetEventVenue(ctx, b.EventID, domain.VenueNotBooked); err != nil {
			return err
		}

		b.Status = domain.StatusRejected
		b.ApprovedByAdmin = adminID
		out = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DecideEquipmentRequest applies an approve/reject decision to an
// equipment request.
//
// Approve deducts stock inside the same transaction as the status flip;
// when stock is short the whole transaction rolls back and the request
// STAYS Pending (no automatic rejection), mirroring the insufficient-stock
// policy of the process it models.
//
// Reject from Pending changes status only. Reject from Approved is the one
// permitted reversal: stock is given back atomically with the flip.
func (s *Service) DecideEquipmentRequest(ctx context.Context, requestID int64, decision domain.Decision, adminID string) (*domain.EquipmentRequest, error) {
	var out *domain.EquipmentRequest

	err := s.store.InTx(ctx, func(tx Store) error {
		req, err := tx.EquipmentRequestByID(ctx, requestID)
		if err != nil {
			return mapNotFound(err)
		}

		switch decision {
		case domain.DecisionApprove:
			ok, err := tx.SetEquipmentRequestStatusFrom(ctx, requestID, domain.StatusPending, domain.StatusApproved, adminID)
			if err != nil {
				return err
			}
			if !ok {
				return ErrAlreadyProcessed
			}

			if err := tx.ReserveStock(ctx, req.EquipmentID, req.Quantity); err != nil {
				if errors.Is(err, repository.ErrInsufficientStock) {
					return ErrInsufficientStock
				}
				return err
			}
			req.Status = domain.StatusApproved

		case domain.DecisionReject:
			ok, err := tx.SetEquipmentRequestStatusFrom(ctx, requestID, domain.StatusPending, domain.StatusRejected, adminID)
			if err != nil {
				return err
			}
			if !ok {
				// Reversal: an approved request being revoked returns
				// its quantity to stock.
				reverted, err := tx.SetEquipmentRequestStatusFrom(ctx, requestID, domain.StatusApproved, domain.StatusRejected, adminID)
				if err != nil {
					return err
				}
				if !reverted {
					return ErrAlreadyProcessed
				}
				if err := tx.ReleaseStock(ctx, req.EquipmentID, req.Quantity); err != nil {
					return err
				}
			}
			req.Status = domain.StatusRejected

		default:
			return ErrValidation
		}

		req.ApprovedByAdmin = adminID
		out = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PendingRequests feeds the process-requests screen.
func (s *Service) PendingRequests(ctx context.Context) (*PendingRequestsResponse, error) {
	venue, err := s.store.PendingBookings(ctx)
	if err != nil {
		return nil, err
	}
	equipment, err := s.store.PendingEquipmentRequests(ctx)
	if err != nil {
		return nil, err
	}
	return &PendingRequestsResponse{VenueRequests: venue, EquipmentRequests: equipment}, nil
}

func (s *Service) Statistics(ctx context.Context) (*StatisticsResponse, error) {
	pendingVenue, err := s.store.CountPendingBookings(ctx)
	if err != nil {
		return nil, err
	}
	pendingEquipment, err := s.store.CountPendingEquipmentRequests(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.store.CountNonAdminUsers(ctx)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.store.CountUpcomingEvents(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	return &StatisticsResponse{
		PendingRequests: int(pendingVenue + pendingEquipment),
		TotalUsers:      int(users),
		UpcomingEvents:  int(upcoming),
	}, nil
}

func (s *Service) ListUsers(ctx context.Context, role domain.Role, search string) ([]domain.User, error) {
	if !role.Valid() || role == domain.RoleAdmin {
		return nil, ErrValidation
	}
	return s.users.List(ctx, role, search)
}

func (s *Service) DeleteUser(ctx context.Context, id string) error {
	err := s.users.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		// Foreign keys keep accounts with live events or requests around.
		return ErrUserInUse
	}
	return nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
