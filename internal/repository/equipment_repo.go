package repository

import (
	"context"
	"errors"
	"time"

	"eventspace/internal/domain"

	"gorm.io/gorm"
)

// ErrInsufficientStock is returned by Reserve when the deduction would drive
// total_stock below zero. The conditional UPDATE keeps the check and the
// deduction in one statement, so concurrent approvals cannot both pass it.
var ErrInsufficientStock = errors.New("insufficient stock")

type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

type equipmentModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	Name       string    `gorm:"column:name"`
	TotalStock int       `gorm:"column:total_stock"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (equipmentModel) TableName() string { return "equipments" }

func toDomainEquipment(m equipmentModel) *domain.Equipment {
	return &domain.Equipment{
		ID:         m.ID,
		Name:       m.Name,
		TotalStock: m.TotalStock,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func (r *EquipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	m := equipmentModel{Name: e.Name, TotalStock: e.TotalStock}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*e = *toDomainEquipment(m)
	return nil
}

func (r *EquipmentRepository) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	var m equipmentModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainEquipment(m), nil
}

func (r *EquipmentRepository) Update(ctx context.Context, e *domain.Equipment) error {
	return r.db.WithContext(ctx).
		Model(&equipmentModel{}).
		Where("id = ?", e.ID).
		Updates(map[string]any{"name": e.Name, "total_stock": e.TotalStock}).Error
}

func (r *EquipmentRepository) List(ctx context.Context) ([]domain.Equipment, error) {
	var rows []equipmentModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Equipment, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainEquipment(m))
	}
	return out, nil
}

func (r *EquipmentRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&equipmentModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Reserve deducts qty from the item's stock, failing closed when not enough
// is left. Zero rows affected means the guard `total_stock >= qty` did not
// hold (or the item is gone).
func (r *EquipmentRepository) Reserve(ctx context.Context, id int64, qty int) error {
	tx := r.db.WithContext(ctx).
		Model(&equipmentModel{}).
		Where("id = ? AND total_stock >= ?", id, qty).
		Update("total_stock", gorm.Expr("total_stock - ?", qty))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrInsufficientStock
	}
	return nil
}

// Release gives qty back, compensating a reversed approval.
func (r *EquipmentRepository) Release(ctx context.Context, id int64, qty int) error {
	tx := r.db.WithContext(ctx).
		Model(&equipmentModel{}).
		Where("id = ?", id).
		Update("total_stock", gorm.Expr("total_stock + ?", qty))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
