// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. Roles are granted explicitly:
// every account starts as a plain user, the seller role is added when the
// account's first store submission is committed, and the admin role is
// assigned out of band.
type User struct {
	ID           uuid.UUID
	Email        string // Primary contact email, used as the login identifier.
	Name         string
	PasswordHash string // Never exposed through the delivery layer.
	Roles        Roles
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(role Role) bool {
	return u.Roles.Contains(role)
}
