package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tradesift-io/tradesift/internal/domain/customer"
	"github.com/tradesift-io/tradesift/internal/domain/shipment"
	"github.com/tradesift-io/tradesift/internal/shared/logger"
)

// CachedSubscription is the cached form of one direction's state.
type CachedSubscription struct {
	Codes             []string  `json:"codes"`
	ValidUpto         time.Time `json:"valid_upto"`
	DownloadRemaining int       `json:"download_remaining"`
}

// CachedCustomer is a customer's entitlement snapshot. NotFound marks a
// confirmed missing account so repeated lookups skip the database
// (cache penetration protection).
type CachedCustomer struct {
	ID          uint               `json:"id"`
	Email       string             `json:"email"`
	FullName    string             `json:"full_name"`
	CompanyName string             `json:"company_name"`
	ExportSub   CachedSubscription `json:"export_sub"`
	ImportSub   CachedSubscription `json:"import_sub"`
	NotFound    bool               `json:"not_found,omitempty"`
}

// CustomerSubscriptionCache caches customer entitlement snapshots so
// the search path does not hit the database on every request.
type CustomerSubscriptionCache interface {
	Get(ctx context.Context, customerID uint) (*CachedCustomer, error)
	Set(ctx context.Context, cust *customer.Customer) error
	// SetNullMarker caches a short-lived marker for a customer that was
	// confirmed missing in the database.
	SetNullMarker(ctx context.Context, customerID uint) error
	InvalidateCustomer(ctx context.Context, customerID uint) error
}

const (
	customerKeyPrefix    = "customer:subscription:"
	baseCustomerTTL      = 30 * time.Minute
	customerTTLJitter    = 10 * time.Minute // TTL range: 30-40 min (anti-stampede)
	customerNullMarkTTL  = 2 * time.Minute
	customerNullSentinel = "null"
)

// RedisCustomerSubscriptionCache implements CustomerSubscriptionCache
// on Redis.
type RedisCustomerSubscriptionCache struct {
	client *redis.Client
	logger logger.Interface
}

func NewRedisCustomerSubscriptionCache(client *redis.Client, logger logger.Interface) *RedisCustomerSubscriptionCache {
	return &RedisCustomerSubscriptionCache{
		client: client,
		logger: logger,
	}
}

func (c *RedisCustomerSubscriptionCache) key(customerID uint) string {
	return fmt.Sprintf("%s%d", customerKeyPrefix, customerID)
}

// Get returns the cached snapshot, (nil, nil) on a cache miss.
func (c *RedisCustomerSubscriptionCache) Get(ctx context.Context, customerID uint) (*CachedCustomer, error) {
	raw, err := c.client.Get(ctx, c.key(customerID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get customer from cache: %w", err)
	}

	if raw == customerNullSentinel {
		return &CachedCustomer{ID: customerID, NotFound: true}, nil
	}

	var cached CachedCustomer
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		return nil, fmt.Errorf("failed to decode cached customer: %w", err)
	}
	return &cached, nil
}

// Set stores the customer's entitlement snapshot with a jittered TTL.
func (c *RedisCustomerSubscriptionCache) Set(ctx context.Context, cust *customer.Customer) error {
	cached := snapshotOf(cust)
	raw, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("failed to encode customer snapshot: %w", err)
	}

	ttl := baseCustomerTTL + rand.N(customerTTLJitter)
	if err := c.client.Set(ctx, c.key(cust.ID()), raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache customer snapshot: %w", err)
	}
	return nil
}

func (c *RedisCustomerSubscriptionCache) SetNullMarker(ctx context.Context, customerID uint) error {
	if err := c.client.Set(ctx, c.key(customerID), customerNullSentinel, customerNullMarkTTL).Err(); err != nil {
		return fmt.Errorf("failed to set null marker: %w", err)
	}
	return nil
}

// InvalidateCustomer drops the snapshot after any mutation of the
// customer's subscription state.
func (c *RedisCustomerSubscriptionCache) InvalidateCustomer(ctx context.Context, customerID uint) error {
	if err := c.client.Del(ctx, c.key(customerID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate customer cache: %w", err)
	}
	return nil
}

func snapshotOf(cust *customer.Customer) *CachedCustomer {
	exportSub := cust.Subscription(shipment.DirectionExport)
	importSub := cust.Subscription(shipment.DirectionImport)
	return &CachedCustomer{
		ID:          cust.ID(),
		Email:       cust.Email(),
		FullName:    cust.FullName(),
		CompanyName: cust.CompanyName(),
		ExportSub: CachedSubscription{
			Codes:             exportSub.Codes,
			ValidUpto:         exportSub.ValidUpto,
			DownloadRemaining: exportSub.DownloadRemaining,
		},
		ImportSub: CachedSubscription{
			Codes:             importSub.Codes,
			ValidUpto:         importSub.ValidUpto,
			DownloadRemaining: importSub.DownloadRemaining,
		},
	}
}

// ToEntity rebuilds a customer aggregate from the snapshot. The
// password hash is never cached; callers needing it must load from the
// repository.
func (cc *CachedCustomer) ToEntity() (*customer.Customer, error) {
	if cc.NotFound {
		return nil, nil
	}
	return customer.Reconstruct(
		cc.ID,
		cc.Email,
		cc.FullName,
		cc.CompanyName,
		"",
		customer.CodeSubscription{
			Codes:             cc.ExportSub.Codes,
			ValidUpto:         cc.ExportSub.ValidUpto,
			DownloadRemaining: cc.ExportSub.DownloadRemaining,
		},
		customer.CodeSubscription{
			Codes:             cc.ImportSub.Codes,
			ValidUpto:         cc.ImportSub.ValidUpto,
			DownloadRemaining: cc.ImportSub.DownloadRemaining,
		},
		time.Time{},
		time.Time{},
	)
}
