package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	analyticsdto "github.com/tradesift-io/tradesift/internal/application/analytics/dto"
	"github.com/tradesift-io/tradesift/internal/application/analytics/usecases"
	"github.com/tradesift-io/tradesift/internal/application/entitlement"
	searchdto "github.com/tradesift-io/tradesift/internal/application/search/dto"
	"github.com/tradesift-io/tradesift/internal/domain/shipment"
	"github.com/tradesift-io/tradesift/internal/interfaces/http/middleware"
	"github.com/tradesift-io/tradesift/internal/shared/logger"
	"github.com/tradesift-io/tradesift/internal/shared/utils"
)

// detailAnalysisRequest extends the search request with a metric
// selector: "count" (default) or "value_usd".
type detailAnalysisRequest struct {
	searchdto.SearchRequest
	Metric string `json:"metric"`
}

// AnalyticsHandler serves the aggregation endpoints. Both require a
// covering subscription for the searched code.
type AnalyticsHandler struct {
	sortUseCase   *usecases.SortAnalysisUseCase
	detailUseCase *usecases.DetailAnalysisUseCase
	evaluator     *entitlement.Evaluator
	logger        logger.Interface
}

func NewAnalyticsHandler(
	sortUC *usecases.SortAnalysisUseCase,
	detailUC *usecases.DetailAnalysisUseCase,
	evaluator *entitlement.Evaluator,
	logger logger.Interface,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		sortUseCase:   sortUC,
		detailUseCase: detailUC,
		evaluator:     evaluator,
		logger:        logger,
	}
}

// SortAnalysis returns the total count plus per-dimension distinct
// cardinalities of the matched set.
func (h *AnalyticsHandler) SortAnalysis(direction shipment.Direction) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req searchdto.SearchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
			return
		}

		query, _, err := req.Normalize()
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		cust := middleware.CustomerFromContext(c)
		access := h.evaluator.Evaluate(cust, direction, query.HSCode)

		resp, err := h.sortUseCase.Execute(c.Request.Context(), direction, query, access)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "", resp)
	}
}

// DetailAnalysis returns one descending-sorted breakdown per dimension
// over the full matched set.
func (h *AnalyticsHandler) DetailAnalysis(direction shipment.Direction) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req detailAnalysisRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
			return
		}

		query, _, err := req.Normalize()
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		cust := middleware.CustomerFromContext(c)
		access := h.evaluator.Evaluate(cust, direction, query.HSCode)
		metric := analyticsdto.ParseMetric(req.Metric)

		resp, err := h.detailUseCase.Execute(c.Request.Context(), direction, query, metric, access)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "", resp)
	}
}
