package user

import (
	"errors"
	"time"
)

var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
)

type Role string

const (
	RoleFarmer   Role = "farmer"
	RoleInvestor Role = "investor"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool { return r == RoleFarmer || r == RoleInvestor }

type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// Email is unique across the directory; matched case-sensitively as stored.
	Email string `json:"email"`
	// Password is stored and compared in plaintext as a placeholder.
	// A production deployment needs a credential-hashing collaborator in
	// front of this directory; that is outside the core's scope.
	Password  string    `json:"password"`
	Role      Role      `json:"role"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}
