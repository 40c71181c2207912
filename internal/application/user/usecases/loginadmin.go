package usecases

import (
	"context"

	"github.com/tradesift-io/tradesift/internal/application/user"
	"github.com/tradesift-io/tradesift/internal/application/user/dto"
	"github.com/tradesift-io/tradesift/internal/domain/admin"
	"github.com/tradesift-io/tradesift/internal/shared/authorization"
	"github.com/tradesift-io/tradesift/internal/shared/errors"
	"github.com/tradesift-io/tradesift/internal/shared/logger"
)

// LoginAdminUseCase authenticates an operator and issues a token pair.
type LoginAdminUseCase struct {
	admins admin.Repository
	hasher user.PasswordHasher
	tokens user.TokenIssuer
	logger logger.Interface
}

func NewLoginAdminUseCase(
	admins admin.Repository,
	hasher user.PasswordHasher,
	tokens user.TokenIssuer,
	logger logger.Interface,
) *LoginAdminUseCase {
	return &LoginAdminUseCase{
		admins: admins,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
}

func (uc *LoginAdminUseCase) Execute(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	a, err := uc.admins.GetByEmail(ctx, req.Email)
	if err != nil {
		uc.logger.Errorw("failed to look up admin by email", "error", err)
		return nil, errors.NewInternalError("failed to log in")
	}
	if a == nil {
		return nil, errors.NewUnauthorizedError("email or password is wrong")
	}

	if err := uc.hasher.Verify(a.PasswordHash(), req.Password); err != nil {
		return nil, errors.NewUnauthorizedError("email or password is wrong")
	}

	pair, err := uc.tokens.IssuePair(a.ID(), authorization.UserTypeAdmin)
	if err != nil {
		uc.logger.Errorw("failed to issue token pair", "admin_id", a.ID(), "error", err)
		return nil, errors.NewInternalError("failed to log in")
	}

	uc.logger.Infow("admin logged in", "admin_id", a.ID())
	return &dto.LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}
