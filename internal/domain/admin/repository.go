package admin

import (
	"context"
	"errors"
)

var ErrAdminNotFound = errors.New("admin not found")

// Repository is the storage contract for admin accounts.
// Lookups return (nil, nil) when no admin exists.
type Repository interface {
	Create(ctx context.Context, a *Admin) error
	Update(ctx context.Context, a *Admin) error
	GetByID(ctx context.Context, id uint) (*Admin, error)
	GetByEmail(ctx context.Context, email string) (*Admin, error)
}
