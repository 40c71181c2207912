package usecases

import (
	"context"

	"github.com/tradesift-io/tradesift/internal/application/user"
	"github.com/tradesift-io/tradesift/internal/application/user/dto"
	"github.com/tradesift-io/tradesift/internal/shared/errors"
	"github.com/tradesift-io/tradesift/internal/shared/logger"
)

// RefreshTokenUseCase exchanges a valid refresh token for a fresh pair.
type RefreshTokenUseCase struct {
	tokens user.TokenIssuer
	logger logger.Interface
}

func NewRefreshTokenUseCase(tokens user.TokenIssuer, logger logger.Interface) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		tokens: tokens,
		logger: logger,
	}
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, req dto.RefreshTokenRequest) (*user.TokenPair, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	pair, err := uc.tokens.Refresh(req.RefreshToken)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid or expired refresh token")
	}
	return pair, nil
}
