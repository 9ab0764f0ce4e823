package domain

import "time"

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleOrganizer Role = "organizer"
	RoleLecturer  Role = "lecturer"
	RoleStudent   Role = "student"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleOrganizer, RoleLecturer, RoleStudent:
		return true
	}
	return false
}

// CanCreateEvents reports whether the role may own events and submit
// venue/equipment requests.
func (r Role) CanCreateEvents() bool {
	return r == RoleOrganizer || r == RoleLecturer
}

type AccountStatus string

const (
	AccountActive   AccountStatus = "Active"
	AccountDisabled AccountStatus = "Disabled"
)

type User struct {
	ID            string        `json:"id"`
	Name          string        `json:"name" validate:"required"`
	Email         string        `json:"email" validate:"required,email"`
	PasswordHash  string        `json:"-"`
	Phone         string        `json:"phone,omitempty"`
	Role          Role          `json:"role"`
	AccountStatus AccountStatus `json:"account_status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
