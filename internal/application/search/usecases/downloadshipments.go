package usecases

import (
	"context"
	stderrors "errors"

	"github.com/tradesift-io/tradesift/internal/application/entitlement"
	"github.com/tradesift-io/tradesift/internal/application/search/dto"
	"github.com/tradesift-io/tradesift/internal/domain/customer"
	"github.com/tradesift-io/tradesift/internal/domain/shipment"
	"github.com/tradesift-io/tradesift/internal/shared/errors"
	"github.com/tradesift-io/tradesift/internal/shared/logger"
	"github.com/tradesift-io/tradesift/internal/shared/utils"
)

// DecrementPolicy names how much quota a served download consumes.
type DecrementPolicy string

const (
	// DecrementByPageSize charges the page window that was requested.
	// This is the legacy accounting behavior: quota buys page fetches.
	DecrementByPageSize DecrementPolicy = "by_page_size"
	// DecrementByRecordsReturned charges only the records actually
	// served.
	DecrementByRecordsReturned DecrementPolicy = "by_records_returned"
)

// ParseDecrementPolicy maps a config value onto a policy, defaulting to
// the legacy page-size accounting.
func ParseDecrementPolicy(s string) DecrementPolicy {
	if DecrementPolicy(s) == DecrementByRecordsReturned {
		return DecrementByRecordsReturned
	}
	return DecrementByPageSize
}

// SubscriptionCacheInvalidator drops a customer's cached subscription
// snapshot after a quota mutation.
type SubscriptionCacheInvalidator interface {
	InvalidateCustomer(ctx context.Context, customerID uint) error
}

// DownloadShipmentsUseCase serves quota-consuming download requests:
// quota gate, page fetch, then an atomic decrement-and-persist.
type DownloadShipmentsUseCase struct {
	repo      shipment.Repository
	customers customer.Repository
	evaluator *entitlement.Evaluator
	cache     SubscriptionCacheInvalidator
	policy    DecrementPolicy
	logger    logger.Interface
}

func NewDownloadShipmentsUseCase(
	repo shipment.Repository,
	customers customer.Repository,
	evaluator *entitlement.Evaluator,
	cache SubscriptionCacheInvalidator,
	policy DecrementPolicy,
	logger logger.Interface,
) *DownloadShipmentsUseCase {
	return &DownloadShipmentsUseCase{
		repo:      repo,
		customers: customers,
		evaluator: evaluator,
		cache:     cache,
		policy:    policy,
		logger:    logger,
	}
}

// Execute runs the download path. Ordering is fixed: entitlement check,
// quota check, page fetch, decrement-and-persist. A customer without a
// live covering subscription never reaches the quota gate and never
// receives the full projection; the handler routes such callers to the
// restricted search path instead. A failed quota check returns before
// any page fetch and never decrements. The decrement itself is a single
// conditional update at the storage layer, so two concurrent downloads
// cannot push the quota negative.
func (uc *DownloadShipmentsUseCase) Execute(
	ctx context.Context,
	cust *customer.Customer,
	direction shipment.Direction,
	query shipment.SearchQuery,
	page utils.Pagination,
) (*dto.DownloadResponse, error) {
	if !uc.evaluator.Evaluate(cust, direction, query.HSCode).IsFull() {
		return nil, errors.NewForbiddenError("download requires a covering subscription")
	}

	pred := shipment.BuildPredicate(query)

	decision, err := uc.evaluator.CheckDownloadQuota(ctx, uc.repo, cust, direction, pred)
	if err != nil {
		uc.logger.Errorw("failed to run download quota check",
			"customer_id", cust.ID(),
			"direction", direction,
			"error", err,
		)
		return nil, errors.NewInternalError("failed to process download request")
	}
	if !decision.Allowed {
		return nil, errors.NewBadRequestError(decision.Reason)
	}

	records, err := uc.repo.Search(ctx, direction, pred, page.Offset(), page.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to fetch download page",
			"customer_id", cust.ID(),
			"direction", direction,
			"error", err,
		)
		return nil, errors.NewInternalError("failed to process download request")
	}

	amount := page.PageSize
	if uc.policy == DecrementByRecordsReturned {
		amount = len(records)
	}

	if amount > 0 {
		if err := uc.customers.ConsumeDownloadQuota(ctx, cust.ID(), direction, amount); err != nil {
			if stderrors.Is(err, customer.ErrQuotaExhausted) {
				return nil, errors.NewBadRequestError("Download Subscription Not Enough")
			}
			uc.logger.Errorw("failed to consume download quota",
				"customer_id", cust.ID(),
				"direction", direction,
				"amount", amount,
				"error", err,
			)
			return nil, errors.NewInternalError("failed to process download request")
		}

		if uc.cache != nil {
			if err := uc.cache.InvalidateCustomer(ctx, cust.ID()); err != nil {
				uc.logger.Warnw("failed to invalidate customer cache after quota decrement",
					"customer_id", cust.ID(),
					"error", err,
				)
			}
		}
	}

	uc.logger.Infow("download served",
		"customer_id", cust.ID(),
		"direction", direction,
		"records", len(records),
		"quota_consumed", amount,
		"policy", uc.policy,
	)

	return &dto.DownloadResponse{
		TotalRecords: decision.TotalRecords,
		Records:      dto.ToRecordDTOs(records),
	}, nil
}
