// Package user models staff accounts and their roles.
package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidRole      = errors.New("invalid role")
	ErrNameRequired     = errors.New("user name is required")
	ErrEmailRequired    = errors.New("user email is required")
	ErrPasswordRequired = errors.New("user password is required")
)

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleStaff Role = "STAFF"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStaff:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Role      Role
	CreatedAt time.Time
}

// Form creates a staff account. The password travels to the server in clear;
// hashing is the server's job.
type Form struct {
	Name     string
	Email    string
	Password string
	Role     Role
}

func (f Form) Validate() error {
	if f.Name == "" {
		return ErrNameRequired
	}
	if f.Email == "" {
		return ErrEmailRequired
	}
	if f.Password == "" {
		return ErrPasswordRequired
	}
	if f.Role != "" && !f.Role.IsValid() {
		return ErrInvalidRole
	}
	return nil
}
