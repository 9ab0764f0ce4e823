package repository

import (
	"context"
	"time"

	"eventspace/internal/domain"

	"gorm.io/gorm"
)

type AnnouncementRepository struct {
	db *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

type announcementModel struct {
	ID             int64     `gorm:"column:id;primaryKey"`
	Title          string    `gorm:"column:title"`
	Message        string    `gorm:"column:message"`
	TargetAudience string    `gorm:"column:target_audience"`
	AdminID        string    `gorm:"column:admin_id;index"`
	SentAt         time.Time `gorm:"column:sent_at"`
}

func (announcementModel) TableName() string { return "announcements" }

func toDomainAnnouncement(m announcementModel) *domain.Announcement {
	return &domain.Announcement{
		ID:             m.ID,
		Title:          m.Title,
		Message:        m.Message,
		TargetAudience: m.TargetAudience,
		AdminID:        m.AdminID,
		SentAt:         m.SentAt,
	}
}

func (r *AnnouncementRepository) Create(ctx context.Context, a *domain.Announcement) error {
	m := announcementModel{
		Title:          a.Title,
		Message:        a.Message,
		TargetAudience: a.TargetAudience,
		AdminID:        a.AdminID,
		SentAt:         a.SentAt,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*a = *toDomainAnnouncement(m)
	return nil
}

func (r *AnnouncementRepository) ListByAdmin(ctx context.Context, adminID string) ([]domain.Announcement, error) {
	var rows []announcementModel
	tx := r.db.WithContext(ctx).
		Where("admin_id = ?", adminID).
		Order("sent_at DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Announcement, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainAnnouncement(m))
	}
	return out, nil
}
