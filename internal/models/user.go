package models

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/avelasco/reel/internal/shared"
)

// MinPasswordLength is the minimum accepted raw password length at registration.
const MinPasswordLength = 4

// User represents an account. The credential hash is opaque to everything
// except the repository layer that produced it.
type User struct {
	id             string
	username       string
	hashedPassword string
	createdAt      time.Time
}

var _ Model = (*User)(nil)

// NewUser creates a User with the given name and credential hash.
// The ID is assigned by the repository at insert time.
func NewUser(username, hashedPassword string) *User {
	return &User{
		username:       username,
		hashedPassword: hashedPassword,
		createdAt:      time.Now(),
	}
}

func (u *User) ID() string             { return u.id }
func (u *User) Username() string       { return u.username }
func (u *User) HashedPassword() string { return u.hashedPassword }
func (u *User) CreatedAt() time.Time   { return u.createdAt }

func (u *User) SetID(id string)               { u.id = id }
func (u *User) SetCreatedAt(t time.Time)      { u.createdAt = t }
func (u *User) SetHashedPassword(hash string) { u.hashedPassword = hash }

// Validate checks the account invariants: non-empty name with no embedded
// whitespace, and a non-empty credential hash.
func (u *User) Validate() error {
	if u.username == "" {
		return fmt.Errorf("%w: username cannot be empty", shared.ErrInvalidInput)
	}
	if strings.IndexFunc(u.username, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: username cannot contain whitespace", shared.ErrInvalidInput)
	}
	if u.hashedPassword == "" {
		return fmt.Errorf("%w: credential hash cannot be empty", shared.ErrInvalidInput)
	}
	return nil
}

// ValidatePassword checks a raw password before hashing.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", shared.ErrInvalidInput, MinPasswordLength)
	}
	return nil
}
