package catalog

import (
	"context"
	"errors"
	"strings"

	"eventspace/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	rooms      RoomStore
	equipment  EquipmentStore
	categories CategoryStore
	usage      UsageCounter
}

func NewService(rooms RoomStore, equipment EquipmentStore, categories CategoryStore, usage UsageCounter) *Service {
	return &Service{rooms: rooms, equipment: equipment, categories: categories, usage: usage}
}

// Rooms.

func (s *Service) CreateRoom(ctx context.Context, req CreateRoomRequest) (*domain.Room, error) {
	r := &domain.Room{
		Name:     strings.TrimSpace(req.Name),
		Capacity: req.Capacity,
		Location: strings.TrimSpace(req.Location),
		RoomType: req.RoomType,
		IsActive: true,
	}
	if r.Name == "" || r.Location == "" {
		return nil, ErrValidation
	}
	if err := s.rooms.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) UpdateRoom(ctx context.Context, id int64, req UpdateRoomRequest) (*domain.Room, error) {
	r, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	if req.Name != "" {
		r.Name = strings.TrimSpace(req.Name)
	}
	if req.Capacity > 0 {
		r.Capacity = req.Capacity
	}
	if req.Location != "" {
		r.Location = strings.TrimSpace(req.Location)
	}
	if req.RoomType != "" {
		r.RoomType = req.RoomType
	}
	if req.IsActive != nil {
		r.IsActive = *req.IsActive
	}

	if err := s.rooms.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) ListRooms(ctx context.Context, activeOnly bool) ([]domain.Room, error) {
	return s.rooms.List(ctx, activeOnly)
}

// DeleteRoom refuses while any booking, whatever its status, still points
// at the room; deactivate instead to retire a room with history.
func (s *Service) DeleteRoom(ctx context.Context, id int64) error {
	if _, err := s.rooms.GetByID(ctx, id); err != nil {
		return mapNotFound(err)
	}

	n, err := s.usage.CountBookingsByRoom(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrInUse
	}
	return mapNotFound(s.rooms.Delete(ctx, id))
}

// Equipment.

func (s *Service) CreateEquipment(ctx context.Context, req CreateEquipmentRequest) (*domain.Equipment, error) {
	e := &domain.Equipment{
		Name:       strings.TrimSpace(req.Name),
		TotalStock: req.TotalStock,
	}
	if e.Name == "" {
		return nil, ErrValidation
	}
	if err := s.equipment.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) UpdateEquipment(ctx context.Context, id int64, req UpdateEquipmentRequest) (*domain.Equipment, error) {
	e, err := s.equipment.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	if req.Name != "" {
		e.Name = strings.TrimSpace(req.Name)
	}
	if req.TotalStock != nil {
		e.TotalStock = *req.TotalStock
	}

	if err := s.equipment.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) ListEquipment(ctx context.Context) ([]domain.Equipment, error) {
	return s.equipment.List(ctx)
}

func (s *Service) DeleteEquipment(ctx context.Context, id int64) error {
	if _, err := s.equipment.GetByID(ctx, id); err != nil {
		return mapNotFound(err)
	}

	n, err := s.usage.CountRequestsByEquipment(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrInUse
	}
	return mapNotFound(s.equipment.Delete(ctx, id))
}

// Categories.

// CreateCategory enforces case-insensitive name uniqueness: "Music" and
// "music" are the same category.
func (s *Service) CreateCategory(ctx context.Context, req CategoryRequest, adminID string) (*domain.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrValidation
	}

	if err := s.ensureCategoryNameFree(ctx, name, 0); err != nil {
		return nil, err
	}

	c := &domain.Category{Name: name, CreatedByAdminID: adminID}
	if err := s.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) UpdateCategory(ctx context.Context, id int64, req CategoryRequest) (*domain.Category, error) {
	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrValidation
	}
	if err := s.ensureCategoryNameFree(ctx, name, id); err != nil {
		return nil, err
	}

	c.Name = name
	if err := s.categories.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) ListCategories(ctx context.Context, search string) ([]domain.Category, error) {
	return s.categories.List(ctx, search)
}

func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	if _, err := s.categories.GetByID(ctx, id); err != nil {
		return mapNotFound(err)
	}

	n, err := s.usage.CountEventsByCategory(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrInUse
	}
	return mapNotFound(s.categories.Delete(ctx, id))
}

func (s *Service) ensureCategoryNameFree(ctx context.Context, name string, excludeID int64) error {
	existing, err := s.categories.FindByNameFold(ctx, name, excludeID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if existing != nil {
		return ErrDuplicateName
	}
	return nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
