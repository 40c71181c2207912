package usecases

import (
	"context"

	"github.com/tradesift-io/tradesift/internal/application/analytics/dto"
	"github.com/tradesift-io/tradesift/internal/application/entitlement"
	"github.com/tradesift-io/tradesift/internal/domain/shipment"
	"github.com/tradesift-io/tradesift/internal/shared/errors"
	"github.com/tradesift-io/tradesift/internal/shared/logger"
)

// SortAnalysisUseCase computes the summary analytics over a matched
// set: the total record count plus the distinct-value cardinality of
// every aggregation dimension.
type SortAnalysisUseCase struct {
	repo   shipment.Repository
	logger logger.Interface
}

func NewSortAnalysisUseCase(repo shipment.Repository, logger logger.Interface) *SortAnalysisUseCase {
	return &SortAnalysisUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute runs the summary aggregation. Analytics are a full-access
// feature; restricted callers are rejected before any storage query.
func (uc *SortAnalysisUseCase) Execute(
	ctx context.Context,
	direction shipment.Direction,
	query shipment.SearchQuery,
	access entitlement.AccessLevel,
) (*dto.SortAnalysisResponse, error) {
	if !access.IsFull() {
		return nil, errors.NewBadRequestError("Invalid Subscription")
	}

	pred := shipment.BuildPredicate(query)

	total, err := uc.repo.Count(ctx, direction, pred)
	if err != nil {
		uc.logger.Errorw("failed to count matching shipments",
			"direction", direction,
			"error", err,
		)
		return nil, errors.NewInternalError("failed to compute analysis")
	}

	card, err := uc.repo.DistinctCounts(ctx, direction, pred)
	if err != nil {
		uc.logger.Errorw("failed to compute distinct counts",
			"direction", direction,
			"error", err,
		)
		return nil, errors.NewInternalError("failed to compute analysis")
	}

	return &dto.SortAnalysisResponse{
		TotalRecords:     total,
		Countries:        card.Countries,
		Buyers:           card.Buyers,
		Suppliers:        card.Suppliers,
		OriginPorts:      card.OriginPorts,
		DestinationPorts: card.DestinationPorts,
	}, nil
}
