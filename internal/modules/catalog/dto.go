package catalog

type CreateRoomRequest struct {
	Name     string `json:"name" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,gt=0"`
	Location string `json:"location" binding:"required"`
	RoomType string `json:"room_type"`
}

type UpdateRoomRequest struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity" binding:"omitempty,gt=0"`
	Location string `json:"location"`
	RoomType string `json:"room_type"`
	IsActive *bool  `json:"is_active"`
}

type CreateEquipmentRequest struct {
	Name       string `json:"name" binding:"required"`
	TotalStock int    `json:"total_stock" binding:"required,gte=0"`
}

type UpdateEquipmentRequest struct {
	Name       string `json:"name"`
	TotalStock *int   `json:"total_stock" binding:"omitempty,gte=0"`
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}
