package repository

import (
	"context"
	"strings"
	"time"

	"eventspace/internal/domain"

	"gorm.io/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

type eventModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	Title         string    `gorm:"column:title"`
	Description   *string   `gorm:"column:description"`
	StartDatetime time.Time `gorm:"column:start_datetime;index"`
	EndDatetime   time.Time `gorm:"column:end_datetime"`
	Status        string    `gorm:"column:status;index"`
	VenueLocation string    `gorm:"column:venue_location"`
	Capacity      int       `gorm:"column:capacity"`
	CategoryID    *int64    `gorm:"column:category_id;index"`
	CreatorKind   string    `gorm:"column:creator_kind"`
	CreatorID     string    `gorm:"column:creator_id;index"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (eventModel) TableName() string { return "events" }

func toDomainEvent(m eventModel) *domain.Event {
	var desc string
	if m.Description != nil {
		desc = *m.Description
	}
	var categoryID int64
	if m.CategoryID != nil {
		categoryID = *m.CategoryID
	}

	return &domain.Event{
		ID:            m.ID,
		Title:         m.Title,
		Description:   desc,
		StartDatetime: m.StartDatetime,
		EndDatetime:   m.EndDatetime,
		Status:        domain.EventStatus(m.Status),
		VenueLocation: m.VenueLocation,
		Capacity:      m.Capacity,
		CategoryID:    categoryID,
		Creator: domain.Creator{
			Kind:   domain.CreatorKind(m.CreatorKind),
			UserID: m.CreatorID,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toEventModel(e *domain.Event) eventModel {
	var desc *string
	if e.Description != "" {
		v := e.Description
		desc = &v
	}
	var categoryID *int64
	if e.CategoryID != 0 {
		v := e.CategoryID
		categoryID = &v
	}

	return eventModel{
		ID:            e.ID,
		Title:         e.Title,
		Description:   desc,
		StartDatetime: e.StartDatetime,
		EndDatetime:   e.EndDatetime,
		Status:        string(e.Status),
		VenueLocation: e.VenueLocation,
		Capacity:      e.Capacity,
		CategoryID:    categoryID,
		CreatorKind:   string(e.Creator.Kind),
		CreatorID:     e.Creator.UserID,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	m := toEventModel(e)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*e = *toDomainEvent(m)
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	var m eventModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainEvent(m), nil
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	m := toEventModel(e)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *EventRepository) UpdateStatus(ctx context.Context, id int64, status domain.EventStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&eventModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetVenueLocation writes the denormalized venue text. Callers are the
// booking submission and the approval workflow, nowhere else.
func (r *EventRepository) SetVenueLocation(ctx context.Context, id int64, venue string) error {
	tx := r.db.WithContext(ctx).
		Model(&eventModel{}).
		Where("id = ?", id).
		Update("venue_location", venue)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type EventFilters struct {
	Status     domain.EventStatus
	CategoryID int64
	Search     string
	Sort       string // "date", "a-z", "z-a"
	FromTime   time.Time
	Limit      int
	Offset     int
}

func (r *EventRepository) List(ctx context.Context, f EventFilters) ([]domain.Event, int64, error) {
	q := r.db.WithContext(ctx).Model(&eventModel{})

	if f.Status != "" {
		q = q.Where("status = ?", string(f.Status))
	}
	if f.CategoryID != 0 {
		q = q.Where("category_id = ?", f.CategoryID)
	}
	if f.Search != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(f.Search)+"%")
	}
	if !f.FromTime.IsZero() {
		q = q.Where("start_datetime >= ?", f.FromTime)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch f.Sort {
	case "a-z":
		q = q.Order("title ASC")
	case "z-a":
		q = q.Order("title DESC")
	default:
		q = q.Order("start_datetime ASC")
	}

	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	var rows []eventModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]domain.Event, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainEvent(m))
	}
	return out, total, nil
}

func (r *EventRepository) ListByCreator(ctx context.Context, creator domain.Creator) ([]domain.Event, error) {
	var rows []eventModel
	tx := r.db.WithContext(ctx).
		Where("creator_kind = ? AND creator_id = ?", string(creator.Kind), creator.UserID).
		Order("start_datetime DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Event, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainEvent(m))
	}
	return out, nil
}

func (r *EventRepository) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&eventModel{}).
		Where("category_id = ?", categoryID).
		Count(&cnt)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return cnt, nil
}

func (r *EventRepository) CountUpcoming(ctx context.Context, now time.Time) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&eventModel{}).
		Where("status = ? AND start_datetime > ?", string(domain.EventUpcoming), now).
		Count(&cnt)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return cnt, nil
}

// DeleteCascade removes an event together with its bookings, equipment
// requests and registrations in one transaction; a failure at any step
// leaves everything intact.
func (r *EventRepository) DeleteCascade(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&bookingModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&equipmentRequestModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&registrationModel{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&eventModel{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
