package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Role identifies what a principal is allowed to do. Admin roles form a
// closed set validated at creation time; customers carry the single
// implicit customer role.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleEditor     Role = "editor"
	RoleSuperAdmin Role = "superadmin"
	RoleCustomer   Role = "customer"
)

// ErrUnknownRole is returned for role strings outside the admin role set
var ErrUnknownRole = errors.New("unknown admin role")

// ParseAdminRole validates a role string against the admin role set.
func ParseAdminRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleEditor, RoleSuperAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// AdminUser represents a back-office user (lead managers, editors, superadmins)
type AdminUser struct {
	ID           uuid.UUID `json:"id" db:"id"`
	FullName     string    `json:"fullname" db:"fullname"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         Role      `json:"role" db:"role"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Customer represents a loan customer identified by phone number.
// Customers have no password; they authenticate through OTP challenges.
type Customer struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Phone     string    `json:"phone" db:"phone"`
	FullName  string    `json:"fullname" db:"fullname"`
	Email     string    `json:"email" db:"email"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Principal is the authenticated actor attached to request-scoped state
// by the authentication middleware. Exactly one principal is attached per
// request, or none for anonymous requests.
type Principal struct {
	ID       uuid.UUID `json:"id"`
	Domain   string    `json:"domain"`
	Role     Role      `json:"role"`
	FullName string    `json:"fullname"`
}
