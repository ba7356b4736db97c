package entity

import "time"

// AdminStatus toggles whether an admin account may act.
type AdminStatus string

const (
	AdminStatusActive   AdminStatus = "active"
	AdminStatusInactive AdminStatus = "inactive"

	// DefaultAdminRole is assigned when none is given.
	DefaultAdminRole = "admin"
)

// Toggled returns the opposite status.
func (s AdminStatus) Toggled() AdminStatus {
	if s == AdminStatusActive {
		return AdminStatusInactive
	}

	return AdminStatusActive
}

// Admin is a back-office account.
type Admin struct {
	AdminID   string      `json:"admin_id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      string      `json:"role"`
	Status    AdminStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
