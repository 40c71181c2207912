package usecases

import (
	"context"

	"github.com/tradesift-io/tradesift/internal/application/analytics/dto"
	"github.com/tradesift-io/tradesift/internal/application/entitlement"
	"github.com/tradesift-io/tradesift/internal/domain/shipment"
	"github.com/tradesift-io/tradesift/internal/shared/errors"
	"github.com/tradesift-io/tradesift/internal/shared/logger"
)

// DetailAnalysisUseCase computes one descending-sorted breakdown per
// aggregation dimension over the full matched set.
type DetailAnalysisUseCase struct {
	repo   shipment.Repository
	logger logger.Interface
}

func NewDetailAnalysisUseCase(repo shipment.Repository, logger logger.Interface) *DetailAnalysisUseCase {
	return &DetailAnalysisUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute runs every per-dimension breakdown with the selected metric.
// Analytics are a full-access feature; restricted callers are rejected
// before any storage query. The breakdowns cover the entire matched
// set, never a page window.
func (uc *DetailAnalysisUseCase) Execute(
	ctx context.Context,
	direction shipment.Direction,
	query shipment.SearchQuery,
	metric shipment.Metric,
	access entitlement.AccessLevel,
) (*dto.DetailAnalysisResponse, error) {
	if !access.IsFull() {
		return nil, errors.NewBadRequestError("Invalid Subscription")
	}

	pred := shipment.BuildPredicate(query)

	resp := &dto.DetailAnalysisResponse{Metric: metric}
	for _, dim := range shipment.AnalysisDimensions() {
		entries, err := uc.repo.Breakdown(ctx, direction, pred, dim, metric)
		if err != nil {
			uc.logger.Errorw("failed to compute breakdown",
				"direction", direction,
				"dimension", dim,
				"metric", metric,
				"error", err,
			)
			return nil, errors.NewInternalError("failed to compute analysis")
		}

		switch dim {
		case shipment.DimensionCountry:
			resp.Countries = entries
		case shipment.DimensionBuyer:
			resp.Buyers = entries
		case shipment.DimensionSupplier:
			resp.Suppliers = entries
		case shipment.DimensionOriginPort:
			resp.OriginPorts = entries
		case shipment.DimensionDestinationPort:
			resp.DestinationPorts = entries
		}
	}

	return resp, nil
}
