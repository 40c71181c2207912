package usecases

import (
	"context"

	"github.com/tradesift-io/tradesift/internal/application/user"
	"github.com/tradesift-io/tradesift/internal/application/user/dto"
	"github.com/tradesift-io/tradesift/internal/domain/customer"
	"github.com/tradesift-io/tradesift/internal/shared/errors"
	"github.com/tradesift-io/tradesift/internal/shared/logger"
)

// ChangePasswordUseCase rotates a customer's password after verifying
// the current one.
type ChangePasswordUseCase struct {
	customers customer.Repository
	hasher    user.PasswordHasher
	logger    logger.Interface
}

func NewChangePasswordUseCase(
	customers customer.Repository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		customers: customers,
		hasher:    hasher,
		logger:    logger,
	}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, customerID uint, req dto.ChangePasswordRequest) error {
	if err := dto.Validate(req); err != nil {
		return err
	}

	cust, err := uc.customers.GetByID(ctx, customerID)
	if err != nil {
		uc.logger.Errorw("failed to load customer", "customer_id", customerID, "error", err)
		return errors.NewInternalError("failed to change password")
	}
	if cust == nil {
		return errors.NewNotFoundError("customer not found")
	}

	if err := uc.hasher.Verify(cust.PasswordHash(), req.CurrentPassword); err != nil {
		return errors.NewUnauthorizedError("current password is incorrect")
	}

	hash, err := uc.hasher.Hash(req.NewPassword)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "customer_id", customerID, "error", err)
		return errors.NewInternalError("failed to change password")
	}
	if err := cust.ChangePassword(hash); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.customers.Update(ctx, cust); err != nil {
		uc.logger.Errorw("failed to persist password change", "customer_id", customerID, "error", err)
		return errors.NewInternalError("failed to change password")
	}

	uc.logger.Infow("customer password changed", "customer_id", customerID)
	return nil
}
