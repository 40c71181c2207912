package customer

import (
	"context"

	"github.com/tradesift-io/tradesift/internal/domain/shipment"
)

// Repository is the storage contract for customers.
// Lookups return (nil, nil) when no customer exists: a missing customer
// is an expected outcome on the search path, not an error.
type Repository interface {
	Create(ctx context.Context, c *Customer) error
	Update(ctx context.Context, c *Customer) error
	GetByID(ctx context.Context, id uint) (*Customer, error)
	GetByEmail(ctx context.Context, email string) (*Customer, error)

	// ConsumeDownloadQuota decrements the direction's download quota by
	// amount in a single conditional update. It fails with
	// ErrQuotaExhausted when the remaining quota is below amount, in
	// which case nothing is persisted. The quota never goes negative,
	// even under concurrent consumption.
	ConsumeDownloadQuota(ctx context.Context, id uint, direction shipment.Direction, amount int) error
}
