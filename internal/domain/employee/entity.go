package employee

import "time"

// Role gates visibility of HR records.
type Role string

const (
	RoleUser    Role = "USER"
	RoleManager Role = "MANAGER"
	RoleAdmin   Role = "ADMIN"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// Employee represents an employee record in the system.
type Employee struct {
	ID           int64
	Name         string
	Email        string // unique
	PasswordHash string
	Role         Role
	Department   string
	Title        string
	ManagerID    int64 // 0 when the employee has no manager
	HiredAt      time.Time
}

// IsAdmin reports whether the employee holds the ADMIN role.
func (e *Employee) IsAdmin() bool {
	return e.Role == RoleAdmin
}

// IsManager reports whether the employee holds the MANAGER role.
func (e *Employee) IsManager() bool {
	return e.Role == RoleManager
}
