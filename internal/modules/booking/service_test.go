package booking

import (
	"context"
	"testing"
	"time"

	"eventspace/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockStore struct {
	mock.Mock
}

// InTx runs fn against the same mock; the tests assert the calls that
// would have happened inside the transaction.
func (m *MockStore) InTx(ctx context.Context, fn func(Store) error) error {
	return fn(m)
}

func (m *MockStore) EventByID(ctx context.Context, id int64) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockStore) RoomByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockStore) EquipmentByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}

func (m *MockStore) FirstOverlapping(ctx context.Context, roomID int64, start, end time.Time) (*domain.Booking, error) {
	args := m.Called(ctx, roomID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockStore) CreateBooking(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockStore) CreateEquipmentRequest(ctx context.Context, req *domain.EquipmentRequest) error {
	args := m.Called(ctx, req)
	if req != nil {
		req.ID = 888
	}
	return args.Error(0)
}

func (m *MockStore) SetEventVenue(ctx context.Context, eventID int64, venue string) error {
	args := m.Called(ctx, eventID, venue)
	return args.Error(0)
}

func (m *MockStore) BookingsByEvent(ctx context.Context, eventID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockStore) EquipmentRequestsByEvent(ctx context.Context, eventID int64) ([]domain.EquipmentRequest, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EquipmentRequest), args.Error(1)
}

var organizer = domain.Creator{Kind: domain.CreatorOrganizer, UserID: "org-1"}

func upcomingEvent(id int64) *domain.Event {
	start := time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC)
	return &domain.Event{
		ID:            id,
		Title:         "Robotics Expo",
		StartDatetime: start,
		EndDatetime:   start.Add(2 * time.Hour),
		Status:        domain.EventUpcoming,
		VenueLocation: domain.VenueNotBooked,
		Capacity:      100,
		Creator:       organizer,
	}
}

func TestSubmitBooking_Success(t *testing.T) {
	store := new(MockStore)
	svc := NewService(store)

	ev := upcomingEvent(1)
	room := &domain.Room{ID: 5, Name: "Main Auditorium", Capacity: 300, IsActive: true}

	store.On("EventByID", mock.Anything, int64(1)).Return(ev, nil)
	store.On("RoomByID", mock.Anything, int64(5)).Return(room, nil)
	store.On("FirstOverlapping", mock.Anything, int64(5), ev.StartDatetime, ev.EndDatetime).Return(nil, nil)
	store.On("CreateBooking", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)
	store.On("SetEventVenue", mock.Anything, int64(1), domain.VenuePendingApproval).Return(nil)

	b, err := svc.SubmitBooking(context.Background(), SubmitBookingRequest{EventID: 1, RoomID: 5}, organizer)

	assert.NoError(t, err)
	assert.Equal(t, int64(999), b.ID)
	assert.Equal(t, domain.StatusPending, b.Status)
	assert.Equal(t, ev.StartDatetime, b.ReqStart)
	assert.Equal(t, ev.EndDatetime, b.ReqEnd)
	store.AssertExpectations(t)
}

func TestSubmitBooking_Conflict(t *testing.T) {
	store := new(MockStore)
	svc := NewService(store)

	ev := upcomingEvent(1)
	room := &domain.Room{ID: 5, Name: "Main Auditorium", IsActive: true}
	blocking := &domain.Booking{
		ID:       7,
		RoomID:   5,
		EventID:  2,
		ReqStart: ev.StartDatetime.Add(-time.Hour),
		ReqEnd:   ev.StartDatetime.Add(time.Hour),
		Status:   domain.StatusApproved,
	}

	store.On("EventByID", mock.Anything, int64(1)).Return(ev, nil)
	store.On("RoomByID", mock.Anything, int64(5)).Return(room, nil)
	store.On("FirstOverlapping", mock.Anything, int64(5), ev.StartDatetime, ev.EndDatetime).Return(blocking, nil)

	b, err := svc.SubmitBooking(context.Background(), SubmitBookingRequest{EventID: 1, RoomID: 5}, organizer)

	assert.Nil(t, b)
	assert.ErrorIs(t, err, ErrConflict)

	var conflict *ConflictError
	assert.ErrorAs(t, err, &conflict)
	assert.Equal(t, blocking.ReqStart, conflict.ExistingStart)
	assert.Equal(t, blocking.ReqEnd, conflict.ExistingEnd)

	// Refused before the insert: no booking row, venue text untouched.
	store.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "SetEventVenue", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitBooking_LostInsertRaceReportsWinnerInterval(t *testing.T) {
	store := new(MockStore)
	svc := NewService(store)

	ev := upcomingEvent(1)
	room := &domain.Room{ID: 5, Name: "Main Auditorium", IsActive: true}
	winner := &domain.Booking{
		ID:       11,
		RoomID:   5,
		EventID:  3,
		ReqStart: ev.StartDatetime.Add(30 * time.Minute),
		ReqEnd:   ev.EndDatetime.Add(30 * time.Minute),
		Status:   domain.StatusPending,
	}

	store.On("EventByID", mock.Anything, int64(1)).Return(ev, nil)
	store.On("RoomByID", mock.Anything, int64(5)).Return(room, nil)
	// The scan inside the tx sees nothing, then the exclusion constraint
	// rejects the insert because a concurrent submitter committed first.
	// The second scan runs after the rollback and finds the winner.
	store.On("FirstOverlapping", mock.Anything, int64(5), ev.StartDatetime, ev.EndDatetime).
		Return(nil, nil).Once()
	store.On("CreateBooking", mock.Anything, mock.AnythingOfType("*domain.Booking")).
		Return(&pgconn.PgError{Code: "23P01", ConstraintName: "no_double_booking"})
	store.On("FirstOverlapping", mock.Anything, int64(5), ev.StartDatetime, ev.EndDatetime).
		Return(winner, nil).Once()

	b, err := svc.SubmitBooking(context.Background(), SubmitBookingRequest{EventID: 1, RoomID: 5}, organizer)

	assert.Nil(t, b)
	assert.ErrorIs(t, err, ErrConflict)

	var conflict *ConflictError
	assert.ErrorAs(t, err, &conflict)
	assert.Equal(t, winner.ReqStart, conflict.ExistingStart)
	assert.Equal(t, winner.ReqEnd, conflict.ExistingEnd)

	store.AssertNotCalled(t, "SetEventVenue", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitBooking_TouchingIntervalsDoNotConflict(t *testing.T) {
	store := new(MockStore)

	ev := upcomingEvent(1)
	// A booking that ends exactly when the event starts. Half-open
	// comparison means the overlap scan does not return it.
	adjacent := &domain.Booking{
		RoomID:   5,
		ReqStart: ev.StartDatetime.Add(-2 * time.Hour),
		ReqEnd:   ev.StartDatetime,
		Status:   domain.StatusApproved,
	}
	assert.False(t, adjacent.Overlaps(ev.StartDatetime, ev.EndDatetime))

	svc := NewService(store)
	room := &domain.Room{ID: 5, Name: "Main Auditorium", IsActive: true}

	store.On("EventByID", mock.Anything, int64(1)).Return(ev, nil)
	store.On("RoomByID", mock.Anything, int64(5)).Return(room, nil)
	store.On("FirstOverlapping", mock.Anything, int64(5), ev.StartDatetime, ev.EndDatetime).Return(nil, nil)
	store.On("CreateBooking", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)
	store.On("SetEventVenue", mock.Anything, int64(1), domain.VenuePendingApproval).Return(nil)

	b, err := svc.SubmitBooking(context.Background(), SubmitBookingRequest{EventID: 1, RoomID: 5}, organizer)

	assert.NoError(t, err)
	assert.NotNil(t, b)
}

func TestSubmitBooking_ForeignEventForbidden(t *testing.T) {
	store := new(MockStore)
	svc := NewService(store)

	ev := upcomingEvent(1)
	other := domain.Creator{Kind: domain.CreatorLecturer, UserID: "lect-9"}

	store.On("EventByID", mock.Anything, int64(1)).Return(ev, nil)

	b, err := svc.SubmitBooking(context.Background(), SubmitBookingRequest{EventID: 1, RoomID: 5}, other)

	assert.Nil(t, b)
	assert.ErrorIs(t, err, ErrForbidden)
	store.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}

func TestSubmitBooking_EventNotFound(t *testing.T) {
	store := new(MockStore)
	svc := NewService(store)

	store.On("EventByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	b, err := svc.SubmitBooking(context.Background(), SubmitBookingRequest{EventID: 404, RoomID: 5}, organizer)

	assert.Nil(t, b)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmitBooking_InactiveRoomRejected(t *testing.T) {
	store := new(MockStore)
	svc := NewService(store)

	ev := upcomingEvent(1)
	room := &domain.Room{ID: 5, Name: "Old Gym", IsActive: false}

	store.On("EventByID", mock.Anything, int64(1)).Return(ev, nil)
	store.On("RoomByID", mock.Anything, int64(5)).Return(room, nil)

	b, err := svc.SubmitBooking(context.Background(), SubmitBookingRequest{EventID: 1, RoomID: 5}, organizer)

	assert.Nil(t, b)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSubmitBooking_CancelledEventRejected(t *testing.T) {
	store := new(MockStore)
	svc := NewService(store)

	ev := upcomingEvent(1)
	ev.Status = domain.EventCancelled

	store.On("EventByID", mock.Anything, int64(1)).Return(ev, nil)

	b, err := svc.SubmitBooking(context.Background(), SubmitBookingRequest{EventID: 1, RoomID: 5}, organizer)

	assert.Nil(t, b)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSubmitEquipment_NoStockCheckAtSubmission(t *testing.T) {
	store := new(MockStore)
	svc := NewService(store)

	ev := upcomingEvent(1)
	// Only 2 in stock; a request for 5 is still filed. Feasibility is
	// checked when the admin approves, against stock at that moment.
	item := &domain.Equipment{ID: 3, Name: "Projector", TotalStock: 2}

	store.On("EventByID", mock.Anything, int64(1)).Return(ev, nil)
	store.On("EquipmentByID", mock.Anything, int64(3)).Return(item, nil)
	store.On("CreateEquipmentRequest", mock.Anything, mock.AnythingOfType("*domain.EquipmentRequest")).Return(nil)

	er, err := svc.SubmitEquipment(context.Background(), SubmitEquipmentRequest{EventID: 1, EquipmentID: 3, Quantity: 5}, organizer)

	assert.NoError(t, err)
	assert.Equal(t, 5, er.Quantity)
	assert.Equal(t, domain.StatusPending, er.Status)
	store.AssertExpectations(t)
}

func TestSubmitEquipment_NonPositiveQuantity(t *testing.T) {
	store := new(MockStore)
	svc := NewService(store)

	er, err := svc.SubmitEquipment(context.Background(), SubmitEquipmentRequest{EventID: 1, EquipmentID: 3, Quantity: 0}, organizer)

	assert.Nil(t, er)
	assert.ErrorIs(t, err, ErrValidation)
	store.AssertNotCalled(t, "EventByID", mock.Anything, mock.Anything)
}

func TestEventRequests_ForbiddenForNonOwner(t *testing.T) {
	store := new(MockStore)
	svc := NewService(store)

	ev := upcomingEvent(1)
	other := domain.Creator{Kind: domain.CreatorOrganizer, UserID: "org-2"}

	store.On("EventByID", mock.Anything, int64(1)).Return(ev, nil)

	out, err := svc.EventRequests(context.Background(), 1, other)

	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestEventRequests_ListsBoth(t *testing.T) {
	store := new(MockStore)
	svc := NewService(store)

	ev := upcomingEvent(1)
	bookings := []domain.Booking{{ID: 1, EventID: 1, Status: domain.StatusPending}}
	requests := []domain.EquipmentRequest{{ID: 2, EventID: 1, Status: domain.StatusApproved}}

	store.On("EventByID", mock.Anything, int64(1)).Return(ev, nil)
	store.On("BookingsByEvent", mock.Anything, int64(1)).Return(bookings, nil)
	store.On("EquipmentRequestsByEvent", mock.Anything, int64(1)).Return(requests, nil)

	out, err := svc.EventRequests(context.Background(), 1, organizer)

	assert.NoError(t, err)
	assert.Len(t, out.Bookings, 1)
	assert.Len(t, out.EquipmentRequests, 1)
}
