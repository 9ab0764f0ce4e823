package repository

import (
	"context"
	"time"

	"eventspace/internal/domain"

	"gorm.io/gorm"
)

type EquipmentRequestRepository struct {
	db *gorm.DB
}

func NewEquipmentRequestRepository(db *gorm.DB) *EquipmentRequestRepository {
	return &EquipmentRequestRepository{db: db}
}

type equipmentRequestModel struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	EquipmentID     int64     `gorm:"column:equipment_id;index"`
	EventID         int64     `gorm:"column:event_id;index"`
	Quantity        int       `gorm:"column:quantity"`
	StatusID        int       `gorm:"column:status_id;index"`
	ApprovedByAdmin *string   `gorm:"column:approved_by_admin_id"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (equipmentRequestModel) TableName() string { return "equipment_requests" }

func toDomainEquipmentRequest(m equipmentRequestModel) *domain.EquipmentRequest {
	var approver string
	if m.ApprovedByAdmin != nil {
		approver = *m.ApprovedByAdmin
	}

	return &domain.EquipmentRequest{
		ID:              m.ID,
		EquipmentID:     m.EquipmentID,
		EventID:         m.EventID,
		Quantity:        m.Quantity,
		Status:          domain.RequestStatus(m.StatusID),
		ApprovedByAdmin: approver,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func (r *EquipmentRequestRepository) Create(ctx context.Context, req *domain.EquipmentRequest) error {
	m := equipmentRequestModel{
		EquipmentID: req.EquipmentID,
		EventID:     req.EventID,
		Quantity:    req.Quantity,
		StatusID:    int(req.Status),
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*req = *toDomainEquipmentRequest(m)
	return nil
}

func (r *EquipmentRequestRepository) GetByID(ctx context.Context, id int64) (*domain.EquipmentRequest, error) {
	var m equipmentRequestModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainEquipmentRequest(m), nil
}

// UpdateStatusFrom is the transition guard for equipment requests: the row
// moves from exactly `from` to `to` or not at all.
func (r *EquipmentRequestRepository) UpdateStatusFrom(ctx context.Context, id int64, from, to domain.RequestStatus, adminID string) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&equipmentRequestModel{}).
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

func (r *EquipmentRequestRepository) ListPending(ctx context.Context) ([]domain.EquipmentRequest, error) {
	var rows []equipmentRequestModel
	tx := r.db.WithContext(ctx).
		Where("status_id = ?", int(domain.StatusPending)).
		Order("created_at ASC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.EquipmentRequest, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainEquipmentRequest(m))
	}
	return out, nil
}

func (r *EquipmentRequestRepository) ListByEvent(ctx context.Context, eventID int64) ([]domain.EquipmentRequest, error) {
	var rows []equipmentRequestModel
	tx := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.EquipmentRequest, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainEquipmentRequest(m))
	}
	return out, nil
}

func (r *EquipmentRequestRepository) CountByEquipment(ctx context.Context, equipmentID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&equipmentRequestModel{}).
		Where("equipment_id = ?", equipmentID).
		Count(&cnt)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return cnt, nil
}

func (r *EquipmentRequestRepository) CountPending(ctx context.Context) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&equipmentRequestModel{}).
		Where("status_id = ?", int(domain.StatusPending)).
		Count(&cnt)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return cnt, nil
}
