package domain

import (
	"regexp"
	"time"
)

// Role restricts what a user account is allowed to do.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleRegular     Role = "regular"
	RoleInstitution Role = "institution"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleRegular, RoleInstitution:
		return true
	}
	return false
}

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ValidEmail reports whether the address has a plausible mailbox shape.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// User is an identity record. PasswordHash is never serialized.
type User struct {
	ID           int64     `json:"id,string"`
	Pseudo       string    `json:"pseudo"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}
