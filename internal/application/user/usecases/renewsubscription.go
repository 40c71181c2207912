package usecases

import (
	"context"
	"strings"

	searchusecases "github.com/tradesift-io/tradesift/internal/application/search/usecases"
	"github.com/tradesift-io/tradesift/internal/application/user/dto"
	"github.com/tradesift-io/tradesift/internal/domain/customer"
	"github.com/tradesift-io/tradesift/internal/domain/shipment"
	"github.com/tradesift-io/tradesift/internal/shared/errors"
	"github.com/tradesift-io/tradesift/internal/shared/logger"
)

// RenewSubscriptionUseCase replaces one direction's subscription state
// for a customer. Admin-only; the other direction is left untouched.
type RenewSubscriptionUseCase struct {
	customers customer.Repository
	cache     searchusecases.SubscriptionCacheInvalidator
	logger    logger.Interface
}

func NewRenewSubscriptionUseCase(
	customers customer.Repository,
	cache searchusecases.SubscriptionCacheInvalidator,
	logger logger.Interface,
) *RenewSubscriptionUseCase {
	return &RenewSubscriptionUseCase{
		customers: customers,
		cache:     cache,
		logger:    logger,
	}
}

func (uc *RenewSubscriptionUseCase) Execute(ctx context.Context, customerID uint, req dto.RenewSubscriptionRequest) (*dto.CustomerProfileDTO, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	direction, err := shipment.ParseDirection(req.Direction)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	codes := make([]string, 0, len(req.Codes))
	for _, code := range req.Codes {
		if c := strings.TrimSpace(code); c != "" {
			codes = append(codes, c)
		}
	}
	if len(codes) == 0 {
		return nil, errors.NewValidationError("at least one non-empty code is required")
	}

	cust, err := uc.customers.GetByID(ctx, customerID)
	if err != nil {
		uc.logger.Errorw("failed to load customer", "customer_id", customerID, "error", err)
		return nil, errors.NewInternalError("failed to renew subscription")
	}
	if cust == nil {
		return nil, errors.NewNotFoundError("customer not found")
	}

	cust.RenewSubscription(direction, customer.CodeSubscription{
		Codes:             codes,
		ValidUpto:         req.ValidUpto,
		DownloadRemaining: req.DownloadRemaining,
	})

	if err := uc.customers.Update(ctx, cust); err != nil {
		uc.logger.Errorw("failed to persist subscription renewal", "customer_id", customerID, "error", err)
		return nil, errors.NewInternalError("failed to renew subscription")
	}

	if uc.cache != nil {
		if err := uc.cache.InvalidateCustomer(ctx, customerID); err != nil {
			uc.logger.Warnw("failed to invalidate customer cache after renewal",
				"customer_id", customerID,
				"error", err,
			)
		}
	}

	uc.logger.Infow("subscription renewed",
		"customer_id", customerID,
		"direction", direction,
		"codes", len(codes),
		"valid_upto", req.ValidUpto,
		"download_remaining", req.DownloadRemaining,
	)
	return dto.ToCustomerProfileDTO(cust), nil
}
