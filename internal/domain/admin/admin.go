package admin

import (
	"fmt"
	"strings"
	"time"
)

// Admin is an operator account. Admins manage customer subscriptions
// and run bulk ingestion; they hold no trade-data entitlements of
// their own.
type Admin struct {
	id           uint
	email        string
	fullName     string
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewAdmin(email, fullName, passwordHash string) (*Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	now := time.Now()
	return &Admin{
		email:        email,
		fullName:     strings.TrimSpace(fullName),
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// Reconstruct rebuilds an admin from persistence.
func Reconstruct(id uint, email, fullName, passwordHash string, createdAt, updatedAt time.Time) (*Admin, error) {
	if id == 0 {
		return nil, fmt.Errorf("admin ID cannot be zero")
	}
	return &Admin{
		id:           id,
		email:        email,
		fullName:     fullName,
		passwordHash: passwordHash,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

// SetID assigns the storage-generated ID after the first insert.
func (a *Admin) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("admin ID already set")
	}
	if id == 0 {
		return fmt.Errorf("admin ID cannot be zero")
	}
	a.id = id
	return nil
}

func (a *Admin) ID() uint             { return a.id }
func (a *Admin) Email() string        { return a.email }
func (a *Admin) FullName() string     { return a.fullName }
func (a *Admin) PasswordHash() string { return a.passwordHash }
func (a *Admin) CreatedAt() time.Time { return a.createdAt }
func (a *Admin) UpdatedAt() time.Time { return a.updatedAt }

// ChangePassword replaces the stored password hash.
func (a *Admin) ChangePassword(passwordHash string) error {
	if passwordHash == "" {
		return fmt.Errorf("password hash is required")
	}
	a.passwordHash = passwordHash
	a.updatedAt = time.Now()
	return nil
}
