package repository

import (
	"context"
	"strings"

	"eventspace/internal/domain"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

type categoryModel struct {
	ID               int64   `gorm:"column:id;primaryKey"`
	Name             string  `gorm:"column:name"`
	CreatedByAdminID *string `gorm:"column:created_by_admin_id"`
}

func (categoryModel) TableName() string { return "categories" }

func toDomainCategory(m categoryModel) *domain.Category {
	var admin string
	if m.CreatedByAdminID != nil {
		admin = *m.CreatedByAdminID
	}
	return &domain.Category{ID: m.ID, Name: m.Name, CreatedByAdminID: admin}
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	m := categoryModel{Name: c.Name}
	if c.CreatedByAdminID != "" {
		v := c.CreatedByAdminID
		m.CreatedByAdminID = &v
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainCategory(m)
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	var m categoryModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainCategory(m), nil
}

// FindByNameFold does a case-insensitive exact-name lookup, excluding the
// given id (0 to exclude none). Used for the uniqueness check on add/edit.
func (r *CategoryRepository) FindByNameFold(ctx context.Context, name string, excludeID int64) (*domain.Category, error) {
	var rows []categoryModel
	tx := r.db.WithContext(ctx).
		Where("LOWER(name) = ? AND id <> ?", strings.ToLower(name), excludeID).
		Limit(1).
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return toDomainCategory(rows[0]), nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *domain.Category) error {
	return r.db.WithContext(ctx).
		Model(&categoryModel{}).
		Where("id = ?", c.ID).
		Update("name", c.Name).Error
}

func (r *CategoryRepository) List(ctx context.Context, search string) ([]domain.Category, error) {
	q := r.db.WithContext(ctx).Model(&categoryModel{})
	if search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var rows []categoryModel
	if err := q.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Category, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainCategory(m))
	}
	return out, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&categoryModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
