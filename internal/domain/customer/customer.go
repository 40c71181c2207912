package customer

import (
	"fmt"
	"strings"
	"time"

	"github.com/tradesift-io/tradesift/internal/domain/shipment"
)

// CodeSubscription is a customer's entitlement to one trade direction:
// the classification-code prefixes they subscribed to, the expiry of
// that entitlement, and the independent download-record quota.
type CodeSubscription struct {
	Codes             []string
	ValidUpto         time.Time
	DownloadRemaining int
}

// Covers reports whether the subscription entitles the holder to the
// requested classification code at the given instant. All three must
// hold: a non-empty code set, some subscribed code being a literal
// string-prefix of the requested code, and the expiry not having passed.
func (s CodeSubscription) Covers(hsCode string, now time.Time) bool {
	if len(s.Codes) == 0 {
		return false
	}
	if s.ValidUpto.Before(now) {
		return false
	}
	for _, code := range s.Codes {
		if code != "" && strings.HasPrefix(hsCode, code) {
			return true
		}
	}
	return false
}

// Customer is the aggregate root for a paying user. Subscription state
// is held per direction; export and import entitlements never cross.
type Customer struct {
	id           uint
	email        string
	fullName     string
	companyName  string
	passwordHash string
	exportSub    CodeSubscription
	importSub    CodeSubscription
	createdAt    time.Time
	updatedAt    time.Time
}

// NewCustomer creates a customer with empty subscriptions.
func NewCustomer(email, fullName, companyName, passwordHash string) (*Customer, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := time.Now()
	return &Customer{
		email:        email,
		fullName:     strings.TrimSpace(fullName),
		companyName:  strings.TrimSpace(companyName),
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// Reconstruct rebuilds a customer from persistence.
func Reconstruct(
	id uint,
	email, fullName, companyName, passwordHash string,
	exportSub, importSub CodeSubscription,
	createdAt, updatedAt time.Time,
) (*Customer, error) {
	if id == 0 {
		return nil, fmt.Errorf("customer ID cannot be zero")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	return &Customer{
		id:           id,
		email:        email,
		fullName:     fullName,
		companyName:  companyName,
		passwordHash: passwordHash,
		exportSub:    exportSub,
		importSub:    importSub,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

// SetID assigns the storage-generated ID after the first insert.
func (c *Customer) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("customer ID already set")
	}
	if id == 0 {
		return fmt.Errorf("customer ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Customer) ID() uint             { return c.id }
func (c *Customer) Email() string        { return c.email }
func (c *Customer) FullName() string     { return c.fullName }
func (c *Customer) CompanyName() string  { return c.companyName }
func (c *Customer) PasswordHash() string { return c.passwordHash }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }

// Subscription returns the subscription state for one direction.
func (c *Customer) Subscription(direction shipment.Direction) CodeSubscription {
	if direction == shipment.DirectionImport {
		return c.importSub
	}
	return c.exportSub
}

// IsSubscribed reports whether the customer holds a live entitlement to
// the requested code in the requested direction.
func (c *Customer) IsSubscribed(direction shipment.Direction, hsCode string, now time.Time) bool {
	return c.Subscription(direction).Covers(hsCode, now)
}

// RenewSubscription replaces the subscription state for one direction.
func (c *Customer) RenewSubscription(direction shipment.Direction, sub CodeSubscription) {
	if direction == shipment.DirectionImport {
		c.importSub = sub
	} else {
		c.exportSub = sub
	}
	c.updatedAt = time.Now()
}

// ChangePassword replaces the stored password hash.
func (c *Customer) ChangePassword(passwordHash string) error {
	if passwordHash == "" {
		return fmt.Errorf("password hash is required")
	}
	c.passwordHash = passwordHash
	c.updatedAt = time.Now()
	return nil
}

// UpdateProfile replaces mutable profile fields.
func (c *Customer) UpdateProfile(fullName, companyName string) {
	c.fullName = strings.TrimSpace(fullName)
	c.companyName = strings.TrimSpace(companyName)
	c.updatedAt = time.Now()
}
