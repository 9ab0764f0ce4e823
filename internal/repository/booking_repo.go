package repository

import (
	"context"
	"time"

	"eventspace/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	RoomID          int64     `gorm:"column:room_id;index"`
	EventID         int64     `gorm:"column:event_id;index"`
	ReqStart        time.Time `gorm:"column:req_start"`
	ReqEnd          time.Time `gorm:"column:req_end"`
	StatusID        int       `gorm:"column:status_id;index"`
	RequesterKind   string    `gorm:"column:requester_kind"`
	RequesterID     string    `gorm:"column:requester_id;index"`
	ApprovedByAdmin *string   `gorm:"column:approved_by_admin_id"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var approver string
	if m.ApprovedByAdmin != nil {
		approver = *m.ApprovedByAdmin
	}

	return &domain.Booking{
		ID:       m.ID,
		RoomID:   m.RoomID,
		EventID:  m.EventID,
		ReqStart: m.ReqStart,
		ReqEnd:   m.ReqEnd,
		Status:   domain.RequestStatus(m.StatusID),
		Requester: domain.Creator{
			Kind:   domain.CreatorKind(m.RequesterKind),
			UserID: m.RequesterID,
		},
		ApprovedByAdmin: approver,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var approver *string
	if b.ApprovedByAdmin != "" {
		v := b.ApprovedByAdmin
		approver = &v
	}

	return bookingModel{
		ID:              b.ID,
		RoomID:          b.RoomID,
		EventID:         b.EventID,
		ReqStart:        b.ReqStart,
		ReqEnd:          b.ReqEnd,
		StatusID:        int(b.Status),
		RequesterKind:   string(b.Requester.Kind),
		RequesterID:     b.Requester.UserID,
		ApprovedByAdmin: approver,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// FirstOverlapping returns the earliest non-rejected booking of the room
// whose interval overlaps [start, end), or nil when the room is free.
// Intervals are half-open: touching boundaries do not overlap.
func (r *BookingRepository) FirstOverlapping(ctx context.Context, roomID int64, start, end time.Time) (*domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Where("room_id = ? AND status_id <> ? AND req_start < ? AND req_end > ?",
			roomID, int(domain.StatusRejected), end, start).
		Order("req_start ASC").
		Limit(1).
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return toDomainBooking(rows[0]), nil
}

// UpdateStatusIfPending flips the status and records the approver, but only
// while the row is still Pending: the WHERE clause is the transition guard,
// so two concurrent deciders cannot both win.
func (r *BookingRepository) UpdateStatusIfPending(ctx context.Context, id int64, to domain.RequestStatus, adminID string) (bool, error) {
	return r.updateStatusFrom(ctx, id, domain.StatusPending, to, adminID)
}

// UpdateStatusIfApproved supports the administrative correction path
// (Approved -> Rejected).
func (r *BookingRepository) UpdateStatusIfApproved(ctx context.Context, id int64, to domain.RequestStatus, adminID string) (bool, error) {
	return r.updateStatusFrom(ctx, id, domain.StatusApproved, to, adminID)
}

func (r *BookingRepository) updateStatusFrom(ctx context.Context, id int64, from, to domain.RequestStatus, adminID string) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ? AND status_id = ?", id, int(from)).
		Updates(map[string]any{
			"status_id":            int(to),
			"approved_by_admin_id": adminID,
			"updated_at":           time.Now(),
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *BookingRepository) ListPending(ctx context.Context) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Where("status_id = ?", int(domain.StatusPending)).
		Order("created_at ASC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) ListByEvent(ctx context.Context, eventID int64) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) CountByRoom(ctx context.Context, roomID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("room_id = ?", roomID).
		Count(&cnt)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return cnt, nil
}

func (r *BookingRepository) CountPending(ctx context.Context) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("status_id = ?", int(domain.StatusPending)).
		Count(&cnt)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return cnt, nil
}
