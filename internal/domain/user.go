package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account provisioned by the sign-in service. Applications
// reference it as their owner.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      *string
	Role      UserRole
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin reports whether the user may review all applications.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role.IsAdmin()
}
