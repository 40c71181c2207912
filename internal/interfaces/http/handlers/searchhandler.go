package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tradesift-io/tradesift/internal/application/entitlement"
	"github.com/tradesift-io/tradesift/internal/application/search/dto"
	"github.com/tradesift-io/tradesift/internal/application/search/usecases"
	"github.com/tradesift-io/tradesift/internal/domain/shipment"
	"github.com/tradesift-io/tradesift/internal/interfaces/http/middleware"
	"github.com/tradesift-io/tradesift/internal/shared/logger"
	"github.com/tradesift-io/tradesift/internal/shared/utils"
)

// SearchHandler serves the search and download endpoints for both
// trade directions.
type SearchHandler struct {
	searchUseCase   *usecases.SearchShipmentsUseCase
	downloadUseCase *usecases.DownloadShipmentsUseCase
	evaluator       *entitlement.Evaluator
	logger          logger.Interface
}

func NewSearchHandler(
	searchUC *usecases.SearchShipmentsUseCase,
	downloadUC *usecases.DownloadShipmentsUseCase,
	evaluator *entitlement.Evaluator,
	logger logger.Interface,
) *SearchHandler {
	return &SearchHandler{
		searchUseCase:   searchUC,
		downloadUseCase: downloadUC,
		evaluator:       evaluator,
		logger:          logger,
	}
}

// Search handles paged searches. Anonymous callers and customers
// without a covering subscription get the restricted projection.
func (h *SearchHandler) Search(direction shipment.Direction) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SearchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
			return
		}

		query, page, err := req.Normalize()
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		cust := middleware.CustomerFromContext(c)
		access := h.evaluator.Evaluate(cust, direction, query.HSCode)

		// Download-flagged requests from fully entitled customers go
		// through the quota-consuming path; everyone else gets the plain
		// search result for their access level.
		if req.DownloadSub && access.IsFull() {
			resp, err := h.downloadUseCase.Execute(c.Request.Context(), cust, direction, query, page)
			if err != nil {
				utils.ErrorResponseWithError(c, err)
				return
			}
			utils.SuccessResponse(c, http.StatusOK, "", resp)
			return
		}

		resp, err := h.searchUseCase.Execute(c.Request.Context(), direction, query, page, access)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "", resp)
	}
}

// Download handles quota-consuming downloads. The route requires an
// authenticated customer; one without a live covering subscription
// falls back to the restricted search result and consumes no quota.
func (h *SearchHandler) Download(direction shipment.Direction) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SearchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
			return
		}

		query, page, err := req.Normalize()
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		cust := middleware.CustomerFromContext(c)
		if cust == nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "customer authentication required")
			return
		}

		access := h.evaluator.Evaluate(cust, direction, query.HSCode)
		if !access.IsFull() {
			resp, err := h.searchUseCase.Execute(c.Request.Context(), direction, query, page, access)
			if err != nil {
				utils.ErrorResponseWithError(c, err)
				return
			}
			utils.SuccessResponse(c, http.StatusOK, "", resp)
			return
		}

		resp, err := h.downloadUseCase.Execute(c.Request.Context(), cust, direction, query, page)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "", resp)
	}
}
