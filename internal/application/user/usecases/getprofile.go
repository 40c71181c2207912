package usecases

import (
	"context"

	"github.com/tradesift-io/tradesift/internal/application/user/dto"
	"github.com/tradesift-io/tradesift/internal/domain/customer"
	"github.com/tradesift-io/tradesift/internal/shared/errors"
	"github.com/tradesift-io/tradesift/internal/shared/logger"
)

// GetProfileUseCase returns the authenticated customer's profile and
// subscription state.
type GetProfileUseCase struct {
	customers customer.Repository
	logger    logger.Interface
}

func NewGetProfileUseCase(customers customer.Repository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{
		customers: customers,
		logger:    logger,
	}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, customerID uint) (*dto.CustomerProfileDTO, error) {
	cust, err := uc.customers.GetByID(ctx, customerID)
	if err != nil {
		uc.logger.Errorw("failed to load customer", "customer_id", customerID, "error", err)
		return nil, errors.NewInternalError("failed to load profile")
	}
	if cust == nil {
		return nil, errors.NewNotFoundError("customer not found")
	}
	return dto.ToCustomerProfileDTO(cust), nil
}
