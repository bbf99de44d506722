package domain

import (
	"fmt"
	"strings"
	"time"
)

// Role is the closed set of roles a user can hold. It is fixed at creation.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleShop  Role = "SHOP"
)

// ParseRole converts raw input into a Role. Matching is case-insensitive so
// "admin" and "ADMIN" are equivalent; anything else is rejected.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleShop:
		return RoleShop, nil
	default:
		return "", fmt.Errorf("%w: unknown role %q", ErrBadRequest, s)
	}
}

// Valid reports whether r is one of the two known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleShop:
		return true
	default:
		return false
	}
}

func (r Role) String() string { return string(r) }

// User models an account able to authenticate against the directory.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Identity returns the acting identity derived from the stored user.
func (u *User) Identity() UserIdentity {
	return UserIdentity{UserID: u.ID, Username: u.Username, Role: u.Role}
}

// UserIdentity is the authenticated actor of a request. It is built once from
// a verified token and handed explicitly to every service call.
type UserIdentity struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// IsAdmin reports whether the identity carries the administrator role.
func (i UserIdentity) IsAdmin() bool { return i.Role == RoleAdmin }
