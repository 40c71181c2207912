package usecases

import (
	"context"

	"github.com/tradesift-io/tradesift/internal/application/user"
	"github.com/tradesift-io/tradesift/internal/application/user/dto"
	"github.com/tradesift-io/tradesift/internal/domain/customer"
	"github.com/tradesift-io/tradesift/internal/shared/authorization"
	"github.com/tradesift-io/tradesift/internal/shared/errors"
	"github.com/tradesift-io/tradesift/internal/shared/logger"
)

// LoginCustomerUseCase authenticates a customer and issues a token
// pair. Wrong email and wrong password produce the same error so the
// endpoint cannot be used to enumerate registered addresses.
type LoginCustomerUseCase struct {
	customers customer.Repository
	hasher    user.PasswordHasher
	tokens    user.TokenIssuer
	logger    logger.Interface
}

func NewLoginCustomerUseCase(
	customers customer.Repository,
	hasher user.PasswordHasher,
	tokens user.TokenIssuer,
	logger logger.Interface,
) *LoginCustomerUseCase {
	return &LoginCustomerUseCase{
		customers: customers,
		hasher:    hasher,
		tokens:    tokens,
		logger:    logger,
	}
}

func (uc *LoginCustomerUseCase) Execute(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	cust, err := uc.customers.GetByEmail(ctx, req.Email)
	if err != nil {
		uc.logger.Errorw("failed to look up customer by email", "error", err)
		return nil, errors.NewInternalError("failed to log in")
	}
	if cust == nil {
		return nil, errors.NewUnauthorizedError("email or password is wrong")
	}

	if err := uc.hasher.Verify(cust.PasswordHash(), req.Password); err != nil {
		return nil, errors.NewUnauthorizedError("email or password is wrong")
	}

	pair, err := uc.tokens.IssuePair(cust.ID(), authorization.UserTypeCustomer)
	if err != nil {
		uc.logger.Errorw("failed to issue token pair", "customer_id", cust.ID(), "error", err)
		return nil, errors.NewInternalError("failed to log in")
	}

	uc.logger.Infow("customer logged in", "customer_id", cust.ID())
	return &dto.LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		Profile:      dto.ToCustomerProfileDTO(cust),
	}, nil
}
