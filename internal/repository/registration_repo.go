package repository

import (
	"context"
	"time"

	"eventspace/internal/domain"

	"gorm.io/gorm"
)

type RegistrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

type registrationModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	StudentID    string    `gorm:"column:student_id;index:idx_reg_student_event,unique"`
	EventID      int64     `gorm:"column:event_id;index:idx_reg_student_event,unique"`
	Status       string    `gorm:"column:status"`
	RegisteredAt time.Time `gorm:"column:registered_at"`
}

func (registrationModel) TableName() string { return "registrations" }

func toDomainRegistration(m registrationModel) *domain.Registration {
	return &domain.Registration{
		ID:           m.ID,
		StudentID:    m.StudentID,
		EventID:      m.EventID,
		Status:       m.Status,
		RegisteredAt: m.RegisteredAt,
	}
}

func (r *RegistrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	m := registrationModel{
		StudentID:    reg.StudentID,
		EventID:      reg.EventID,
		Status:       reg.Status,
		RegisteredAt: reg.RegisteredAt,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*reg = *toDomainRegistration(m)
	return nil
}

func (r *RegistrationRepository) Exists(ctx context.Context, studentID string, eventID int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&registrationModel{}).
		Where("student_id = ? AND event_id = ?", studentID, eventID).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *RegistrationRepository) CountByEvent(ctx context.Context, eventID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&registrationModel{}).
		Where("event_id = ?", eventID).
		Count(&cnt)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return cnt, nil
}

func (r *RegistrationRepository) ListByStudent(ctx context.Context, studentID string) ([]domain.Registration, error) {
	var rows []registrationModel
	tx := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("registered_at DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Registration, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainRegistration(m))
	}
	return out, nil
}

func (r *RegistrationRepository) Delete(ctx context.Context, studentID string, eventID int64) error {
	tx := r.db.WithContext(ctx).
		Where("student_id = ? AND event_id = ?", studentID, eventID).
		Delete(&registrationModel{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
