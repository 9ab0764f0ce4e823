package admin

import (
	"context"
	"testing"
	"time"

	"eventspace/internal/domain"
	"eventspace/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) InTx(ctx context.Context, fn func(Store) error) error {
	return fn(m)
}

func (m *MockStore) BookingByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockStore) SetBookingStatusIfPending(ctx context.Context, id int64, to domain.RequestStatus, adminID string) (bool, error) {
	args := m.Called(ctx, id, to, adminID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) SetBookingStatusIfApproved(ctx context.Context, id int64, to domain.RequestStatus, adminID string) (bool, error) {
	args := m.Called(ctx, id, to, adminID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) EquipmentRequestByID(ctx context.Context, id int64) (*domain.EquipmentRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EquipmentRequest), args.Error(1)
}

func (m *MockStore) SetEquipmentRequestStatusFrom(ctx context.Context, id int64, from, to domain.RequestStatus, adminID string) (bool, error) {
	args := m.Called(ctx, id, from, to, adminID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) RoomByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockStore) SetEventVenue(ctx context.Context, eventID int64, venue string) error {
	args := m.Called(ctx, eventID, venue)
	return args.Error(0)
}

func (m *MockStore) ReserveStock(ctx context.Context, equipmentID int64, qty int) error {
	args := m.Called(ctx, equipmentID, qty)
	return args.Error(0)
}

func (m *MockStore) ReleaseStock(ctx context.Context, equipmentID int64, qty int) error {
	args := m.Called(ctx, equipmentID, qty)
	return args.Error(0)
}

func (m *MockStore) PendingBookings(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockStore) PendingEquipmentRequests(ctx context.Context) ([]domain.EquipmentRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EquipmentRequest), args.Error(1)
}

func (m *MockStore) CountPendingBookings(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) CountPendingEquipmentRequests(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) CountNonAdminUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) CountUpcomingEvents(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserDirectory struct {
	mock.Mock
}

func (m *MockUserDirectory) List(ctx context.Context, role domain.Role, search string) ([]domain.User, error) {
	args := m.Called(ctx, role, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserDirectory) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

const adminID = "admin-1"

func pendingBooking(id int64) *domain.Booking {
	start := time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC)
	return &domain.Booking{
		ID:       id,
		RoomID:   5,
		EventID:  1,
		ReqStart: start,
		ReqEnd:   start.Add(2 * time.Hour),
		Status:   domain.StatusPending,
	}
}

func TestDecideBooking_Approve(t *testing.T) {
	store := new(MockStore)
	svc := NewService(store, new(MockUserDirectory))

	b := pendingBooking(7)
	room := &domain.Room{ID: 5, Name: "Main Auditorium"}

	store.On("BookingByID", mock.Anything, int64(7)).Return(b, nil)
	store.On("SetBookingStatusIfPending", mock.Anything, int64(7), domain.StatusApproved, adminID).Return(true, nil)
	store.On("RoomByID", mock.Anything, int64(5)).Return(room, nil)
	store.On("SetEventVenue", mock.Anything, int64(1), "Main Auditorium").Return(nil)

	out, err := svc.DecideBooking(context.Background(), 7, domain.DecisionApprove, adminID)

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, out.Status)
	assert.Equal(t, adminID, out.ApprovedByAdmin)
	store.AssertExpectations(t)
}

func TestDecideBooking_SecondApproveIsNoOp(t *testing.T) {
	store := new(MockStore)
	svc := NewService(store, new(MockUserDirectory))

	b := pendingBooking(7)
	b.Status = domain.StatusApproved

	store.On("BookingByID", mock.Anything, int64(7)).Return(b, nil)
	// The row is no longer Pending, so the guarded update touches nothing.
	store.On("SetBookingStatusIfPending", mock.Anything, int64(7), domain.StatusApproved, adminID).Return(false, nil)

	out, err := svc.DecideBooking(context.Background(), 7, domain.DecisionApprove, adminID)

	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrAlreadyProcessed)
	store.AssertNotCalled(t, "SetEventVenue", mock.Anything, mock.Anything, mock.Anything)
}

func TestDecideBooking_RejectResetsVenue(t *testing.T) {
	store := new(MockStore)
	svc := NewService(store, new(MockUserDirectory))

	b := pendingBooking(7)

	store.On("BookingByID", mock.Anything, int64(7)).Return(b, nil)
	store.On("SetBookingStatusIfPending", mock.Anything, int64(7), domain.StatusRejected, adminID).Return(true, nil)
	store.On("SetEventVenue", mock.Anything, int64(1), domain.VenueNotBooked).Return(nil)

	out, err := svc.DecideBooking(context.Background(), 7, domain.DecisionReject, adminID)

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, out.Status)
	store.AssertExpectations(t)
}

func TestDecideBooking_NotFound(t *testing.T) {
	store := new(MockStore)
	svc := NewService(store, new(MockUserDirectory))

	store.On("BookingByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	out, err := svc.DecideBooking(context.Background(), 404, domain.DecisionApprove, adminID)

	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRevertBookingApproval(t *testing.T) {
	store := new(MockStore)
	svc := NewService(store, new(MockUserDirectory))

	b := pendingBooking(7)
	b.Status = domain.StatusApproved

	store.On("BookingByID", mock.Anything, int64(7)).Return(b, nil)
	store.On("SetBookingStatusIfApproved", mock.Anything, int64(7), domain.StatusRejected, adminID).Return(true, nil)
	store.On("SetEventVenue", mock.Anything, int64(1), domain.VenueNotBooked).Return(nil)

	out, err := svc.RevertBookingApproval(context.Background(), 7, adminID)

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, out.Status)
	store.AssertExpectations(t)
}

func TestRevertBookingApproval_NotApproved(t *testing.T) {
	store := new(MockStore)
	svc := NewService(store, new(MockUserDirectory))

	b := pendingBooking(7)

	store.On("BookingByID", mock.Anything, int64(7)).Return(b, nil)
	store.On("SetBookingStatusIfApproved", mock.Anything, int64(7), domain.StatusRejected, adminID).Return(false, nil)

	out, err := svc.RevertBookingApproval(context.Background(), 7, adminID)

	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrAlreadyProcessed)
	store.AssertNotCalled(t, "SetEventVenue", mock.Anything, mock.Anything, mock.Anything)
}

func TestDecideEquipmentRequest_ApproveDeductsStock(t *testing.T) {
	store := new(MockStore)
	svc := NewService(store, new(MockUserDirectory))

	req := &domain.EquipmentRequest{ID: 11, EquipmentID: 3, EventID: 1, Quantity: 4, Status: domain.StatusPending}

	store.On("EquipmentRequestByID", mock.Anything, int64(11)).Return(req, nil)
	store.On("SetEquipmentRequestStatusFrom", mock.Anything, int64(11), domain.StatusPending, domain.StatusApproved, adminID).Return(true, nil)
	store.On("ReserveStock", mock.Anything, int64(3), 4).Return(nil)

	out, err := svc.DecideEquipmentRequest(context.Background(), 11, domain.DecisionApprove, adminID)

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, out.Status)
	store.AssertExpectations(t)
}

func TestDecideEquipmentRequest_InsufficientStockLeavesPending(t *testing.T) {
	store := new(MockStore)
	svc := NewService(store, new(MockUserDirectory))

	req := &domain.EquipmentRequest{ID: 11, EquipmentID: 3, EventID: 1, Quantity: 50, Status: domain.StatusPending}

	store.On("EquipmentRequestByID", mock.Anything, int64(11)).Return(req, nil)
	store.On("SetEquipmentRequestStatusFrom", mock.Anything, int64(11), domain.StatusPending, domain.StatusApproved, adminID).Return(true, nil)
	store.On("ReserveStock", mock.Anything, int64(3), 50).Return(repository.ErrInsufficientStock)

	out, err := svc.DecideEquipmentRequest(context.Background(), 11, domain.DecisionApprove, adminID)

	// The error aborts the transaction, rolling back the status flip: the
	// request is still Pending and can be rejected or retried later.
	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrInsufficientStock)
}

func TestDecideEquipmentRequest_RejectPending(t *testing.T) {
	store := new(MockStore)
	svc := NewService(store, new(MockUserDirectory))

	req := &domain.EquipmentRequest{ID: 11, EquipmentID: 3, EventID: 1, Quantity: 4, Status: domain.StatusPending}

	store.On("EquipmentRequestByID", mock.Anything, int64(11)).Return(req, nil)
	store.On("SetEquipmentRequestStatusFrom", mock.Anything, int64(11), domain.StatusPending, domain.StatusRejected, adminID).Return(true, nil)

	out, err := svc.DecideEquipmentRequest(context.Background(), 11, domain.DecisionReject, adminID)

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, out.Status)
	store.AssertNotCalled(t, "ReleaseStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestDecideEquipmentRequest_RejectApprovedReturnsStock(t *testing.T) {
	store := new(MockStore)
	svc := NewService(store, new(MockUserDirectory))

	req := &domain.EquipmentRequest{ID: 11, EquipmentID: 3, EventID: 1, Quantity: 4, Status: domain.StatusApproved}

	store.On("EquipmentRequestByID", mock.Anything, int64(11)).Return(req, nil)
	store.On("SetEquipmentRequestStatusFrom", mock.Anything, int64(11), domain.StatusPending, domain.StatusRejected, adminID).Return(false, nil)
	store.On("SetEquipmentRequestStatusFrom", mock.Anything, int64(11), domain.StatusApproved, domain.StatusRejected, adminID).Return(true, nil)
	store.On("ReleaseStock", mock.Anything, int64(3), 4).Return(nil)

	out, err := svc.DecideEquipmentRequest(context.Background(), 11, domain.DecisionReject, adminID)

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, out.Status)
	store.AssertExpectations(t)
}

func TestDecideEquipmentRequest_SecondRejectIsNoOp(t *testing.T) {
	store := new(MockStore)
	svc := NewService(store, new(MockUserDirectory))

	req := &domain.EquipmentRequest{ID: 11, EquipmentID: 3, EventID: 1, Quantity: 4, Status: domain.StatusRejected}

	store.On("EquipmentRequestByID", mock.Anything, int64(11)).Return(req, nil)
	store.On("SetEquipmentRequestStatusFrom", mock.Anything, int64(11), domain.StatusPending, domain.StatusRejected, adminID).Return(false, nil)
	store.On("SetEquipmentRequestStatusFrom", mock.Anything, int64(11), domain.StatusApproved, domain.StatusRejected, adminID).Return(false, nil)

	out, err := svc.DecideEquipmentRequest(context.Background(), 11, domain.DecisionReject, adminID)

	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrAlreadyProcessed)
	store.AssertNotCalled(t, "ReleaseStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestStatistics(t *testing.T) {
	store := new(MockStore)
	svc := NewService(store, new(MockUserDirectory))

	store.On("CountPendingBookings", mock.Anything).Return(int64(3), nil)
	store.On("CountPendingEquipmentRequests", mock.Anything).Return(int64(2), nil)
	store.On("CountNonAdminUsers", mock.Anything).Return(int64(40), nil)
	store.On("CountUpcomingEvents", mock.Anything, mock.AnythingOfType("time.Time")).Return(int64(6), nil)

	out, err := svc.Statistics(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 5, out.PendingRequests)
	assert.Equal(t, 40, out.TotalUsers)
	assert.Equal(t, 6, out.UpcomingEvents)
}

func TestListUsers_AdminRoleRejected(t *testing.T) {
	svc := NewService(new(MockStore), new(MockUserDirectory))

	out, err := svc.ListUsers(context.Background(), domain.RoleAdmin, "")

	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeleteUser_InUse(t *testing.T) {
	users := new(MockUserDirectory)
	svc := NewService(new(MockStore), users)

	users.On("Delete", mock.Anything, "usr-1").Return(assert.AnError)

	err := svc.DeleteUser(context.Background(), "usr-1")

	assert.ErrorIs(t, err, ErrUserInUse)
}
