package usecases

import (
	"context"

	"github.com/tradesift-io/tradesift/internal/application/user"
	"github.com/tradesift-io/tradesift/internal/application/user/dto"
	"github.com/tradesift-io/tradesift/internal/domain/admin"
	"github.com/tradesift-io/tradesift/internal/shared/errors"
	"github.com/tradesift-io/tradesift/internal/shared/logger"
)

// CreateAdminUseCase provisions an operator account. It backs the CLI
// bootstrap command, not a public endpoint.
type CreateAdminUseCase struct {
	admins admin.Repository
	hasher user.PasswordHasher
	logger logger.Interface
}

func NewCreateAdminUseCase(
	admins admin.Repository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *CreateAdminUseCase {
	return &CreateAdminUseCase{
		admins: admins,
		hasher: hasher,
		logger: logger,
	}
}

func (uc *CreateAdminUseCase) Execute(ctx context.Context, req dto.CreateAdminRequest) (*admin.Admin, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	existing, err := uc.admins.GetByEmail(ctx, req.Email)
	if err != nil {
		uc.logger.Errorw("failed to look up admin by email", "error", err)
		return nil, errors.NewInternalError("failed to create admin")
	}
	if existing != nil {
		return nil, errors.NewValidationError("email already registered")
	}

	hash, err := uc.hasher.Hash(req.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to create admin")
	}

	a, err := admin.NewAdmin(req.Email, req.FullName, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.admins.Create(ctx, a); err != nil {
		uc.logger.Errorw("failed to create admin", "email", req.Email, "error", err)
		return nil, errors.NewInternalError("failed to create admin")
	}

	uc.logger.Infow("admin created", "admin_id", a.ID(), "email", a.Email())
	return a, nil
}
