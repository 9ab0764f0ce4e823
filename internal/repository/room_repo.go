package repository

import (
	"context"
	"time"

	"eventspace/internal/domain"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type roomModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Capacity  int       `gorm:"column:capacity"`
	Location  string    `gorm:"column:location"`
	RoomType  string    `gorm:"column:room_type"`
	IsActive  bool      `gorm:"column:is_active"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (roomModel) TableName() string { return "rooms" }

func toDomainRoom(m roomModel) *domain.Room {
	return &domain.Room{
		ID:        m.ID,
		Name:      m.Name,
		Capacity:  m.Capacity,
		Location:  m.Location,
		RoomType:  m.RoomType,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toRoomModel(rm *domain.Room) roomModel {
	return roomModel{
		ID:        rm.ID,
		Name:      rm.Name,
		Capacity:  rm.Capacity,
		Location:  rm.Location,
		RoomType:  rm.RoomType,
		IsActive:  rm.IsActive,
		CreatedAt: rm.CreatedAt,
		UpdatedAt: rm.UpdatedAt,
	}
}

func (r *RoomRepository) Create(ctx context.Context, rm *domain.Room) error {
	m := toRoomModel(rm)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*rm = *toDomainRoom(m)
	return nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var m roomModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRoom(m), nil
}

func (r *RoomRepository) Update(ctx context.Context, rm *domain.Room) error {
	m := toRoomModel(rm)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *RoomRepository) List(ctx context.Context, activeOnly bool) ([]domain.Room, error) {
	q := r.db.WithContext(ctx).Model(&roomModel{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var rows []roomModel
	if err := q.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Room, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}

func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&roomModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
