package domain

import "time"

type Room struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Capacity  int       `json:"capacity" validate:"required,gt=0"`
	Location  string    `json:"location,omitempty"`
	RoomType  string    `json:"room_type,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Equipment is a loanable item. TotalStock is the quantity still available
// for approval; it is mutated only by the stock ledger operations and never
// drops below zero.
type Equipment struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name" validate:"required"`
	TotalStock int       `json:"total_stock" validate:"gte=0"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Category struct {
	ID               int64  `json:"id"`
	Name             string `json:"name" validate:"required"`
	CreatedByAdminID string `json:"created_by_admin_id,omitempty"`
}
