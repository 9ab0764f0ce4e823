package booking

import (
	"errors"
	"fmt"
	"time"

	"eventspace/internal/domain"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not_found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("booking conflict")
)

// errConflictRaced marks an insert refused by the database exclusion
// constraint; the blocking interval is resolved outside the dead tx.
var errConflictRaced = errors.New("booking conflict: lost insert race")

// ConflictError carries the interval of the booking that blocked the
// submission, so the requester can pick a different slot.
type ConflictError struct {
	RoomID        int64
	ExistingStart time.Time
	ExistingEnd   time.Time
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("room %d is already booked from %s to %s",
		e.RoomID, e.ExistingStart.Format(time.RFC3339), e.ExistingEnd.Format(time.RFC3339))
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

func conflictWith(b *domain.Booking) *ConflictError {
	return &ConflictError{
		RoomID:        b.RoomID,
		ExistingStart: b.ReqStart,
		ExistingEnd:   b.ReqEnd,
	}
}
