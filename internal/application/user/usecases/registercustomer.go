package usecases

import (
	"context"

	"github.com/tradesift-io/tradesift/internal/application/user"
	"github.com/tradesift-io/tradesift/internal/application/user/dto"
	"github.com/tradesift-io/tradesift/internal/domain/customer"
	"github.com/tradesift-io/tradesift/internal/shared/errors"
	"github.com/tradesift-io/tradesift/internal/shared/logger"
)

// RegisterCustomerUseCase creates a customer account with empty
// subscriptions.
type RegisterCustomerUseCase struct {
	customers customer.Repository
	hasher    user.PasswordHasher
	logger    logger.Interface
}

func NewRegisterCustomerUseCase(
	customers customer.Repository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *RegisterCustomerUseCase {
	return &RegisterCustomerUseCase{
		customers: customers,
		hasher:    hasher,
		logger:    logger,
	}
}

func (uc *RegisterCustomerUseCase) Execute(ctx context.Context, req dto.RegisterCustomerRequest) (*dto.CustomerProfileDTO, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	existing, err := uc.customers.GetByEmail(ctx, req.Email)
	if err != nil {
		uc.logger.Errorw("failed to look up customer by email", "error", err)
		return nil, errors.NewInternalError("failed to register customer")
	}
	if existing != nil {
		return nil, errors.NewValidationError("email already registered")
	}

	hash, err := uc.hasher.Hash(req.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to register customer")
	}

	cust, err := customer.NewCustomer(req.Email, req.FullName, req.CompanyName, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.customers.Create(ctx, cust); err != nil {
		uc.logger.Errorw("failed to create customer", "email", req.Email, "error", err)
		return nil, errors.NewInternalError("failed to register customer")
	}

	uc.logger.Infow("customer registered", "customer_id", cust.ID(), "email", cust.Email())
	return dto.ToCustomerProfileDTO(cust), nil
}
