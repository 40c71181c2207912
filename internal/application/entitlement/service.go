// Package entitlement decides, per request, whether a caller receives
// full, restricted, or no results for a classification code.
package entitlement

import (
	"context"
	"time"

	"github.com/tradesift-io/tradesift/internal/domain/customer"
	"github.com/tradesift-io/tradesift/internal/domain/shipment"
	"github.com/tradesift-io/tradesift/internal/shared/logger"
)

// AccessLevel is the derived entitlement decision for one request.
type AccessLevel int

const (
	// AccessRestricted grants the narrow field projection only.
	AccessRestricted AccessLevel = iota
	// AccessFull grants every stored field and analytics access.
	AccessFull
)

func (l AccessLevel) IsFull() bool {
	return l == AccessFull
}

// Evaluator derives access decisions from customer subscription state.
type Evaluator struct {
	logger logger.Interface
}

func NewEvaluator(logger logger.Interface) *Evaluator {
	return &Evaluator{logger: logger}
}

// Evaluate returns the access level for a (customer, direction, code)
// triple. A nil customer (anonymous caller or unknown account) is
// restricted, never an error.
func (e *Evaluator) Evaluate(cust *customer.Customer, direction shipment.Direction, hsCode string) AccessLevel {
	if cust == nil {
		return AccessRestricted
	}
	if !cust.IsSubscribed(direction, hsCode, time.Now()) {
		return AccessRestricted
	}
	return AccessFull
}

// QuotaDecision is the outcome of the download-quota gate.
type QuotaDecision struct {
	Allowed      bool
	Reason       string
	TotalRecords int64
}

// CheckDownloadQuota runs the pre-fetch quota gate for a download
// request: the customer must have at least one download remaining, and
// the matching record count must not exceed the remaining quota. The
// decision never mutates quota; consumption happens after the page
// fetch succeeds.
func (e *Evaluator) CheckDownloadQuota(
	ctx context.Context,
	repo shipment.Repository,
	cust *customer.Customer,
	direction shipment.Direction,
	pred shipment.Predicate,
) (*QuotaDecision, error) {
	remaining := cust.Subscription(direction).DownloadRemaining
	if remaining < 1 {
		return &QuotaDecision{Allowed: false, Reason: "Download Subscription Expired"}, nil
	}

	total, err := repo.Count(ctx, direction, pred)
	if err != nil {
		return nil, err
	}

	if total > int64(remaining) {
		e.logger.Infow("download quota insufficient",
			"customer_id", cust.ID(),
			"direction", direction,
			"matching_records", total,
			"remaining", remaining,
		)
		return &QuotaDecision{Allowed: false, Reason: "Download Subscription Not Enough", TotalRecords: total}, nil
	}

	return &QuotaDecision{Allowed: true, TotalRecords: total}, nil
}
