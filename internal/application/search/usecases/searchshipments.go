package usecases

import (
	"context"

	"github.com/tradesift-io/tradesift/internal/application/entitlement"
	"github.com/tradesift-io/tradesift/internal/application/search/dto"
	"github.com/tradesift-io/tradesift/internal/domain/shipment"
	"github.com/tradesift-io/tradesift/internal/shared/errors"
	"github.com/tradesift-io/tradesift/internal/shared/logger"
	"github.com/tradesift-io/tradesift/internal/shared/utils"
)

// SearchShipmentsUseCase produces one page of matching records plus
// total-count pagination metadata.
type SearchShipmentsUseCase struct {
	repo   shipment.Repository
	logger logger.Interface
}

func NewSearchShipmentsUseCase(repo shipment.Repository, logger logger.Interface) *SearchShipmentsUseCase {
	return &SearchShipmentsUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute runs the search. The projection follows the access level:
// full entitlement gets every stored field, anything else gets the
// restricted projection. Pagination metadata always describes the full
// matching set regardless of the page window.
func (uc *SearchShipmentsUseCase) Execute(
	ctx context.Context,
	direction shipment.Direction,
	query shipment.SearchQuery,
	page utils.Pagination,
	access entitlement.AccessLevel,
) (*dto.SearchResponse, error) {
	pred := shipment.BuildPredicate(query)

	total, err := uc.repo.Count(ctx, direction, pred)
	if err != nil {
		uc.logger.Errorw("failed to count matching shipments",
			"direction", direction,
			"error", err,
		)
		return nil, errors.NewInternalError("failed to search shipment records")
	}

	records, err := uc.repo.Search(ctx, direction, pred, page.Offset(), page.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to fetch shipment page",
			"direction", direction,
			"page_index", page.PageIndex,
			"page_size", page.PageSize,
			"error", err,
		)
		return nil, errors.NewInternalError("failed to search shipment records")
	}

	resp := &dto.SearchResponse{
		Pagination: dto.PaginationMeta{
			PageIndex:    page.PageIndex,
			PageSize:     page.PageSize,
			TotalPages:   utils.TotalPages(total, page.PageSize),
			TotalRecords: total,
		},
		Subscription: access.IsFull(),
	}

	if access.IsFull() {
		resp.Records = dto.ToRecordDTOs(records)
	} else {
		resp.Records = dto.ToRestrictedRecordDTOs(records)
	}

	return resp, nil
}
