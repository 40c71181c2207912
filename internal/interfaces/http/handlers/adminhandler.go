package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	ingestusecases "github.com/tradesift-io/tradesift/internal/application/ingest/usecases"
	"github.com/tradesift-io/tradesift/internal/application/user/dto"
	userusecases "github.com/tradesift-io/tradesift/internal/application/user/usecases"
	"github.com/tradesift-io/tradesift/internal/domain/shipment"
	"github.com/tradesift-io/tradesift/internal/infrastructure/spreadsheet"
	"github.com/tradesift-io/tradesift/internal/shared/logger"
	"github.com/tradesift-io/tradesift/internal/shared/utils"
)

// AdminHandler serves operator endpoints: subscription management and
// bulk data ingestion.
type AdminHandler struct {
	renewUseCase  *userusecases.RenewSubscriptionUseCase
	ingestUseCase *ingestusecases.IngestShipmentsUseCase
	reader        *spreadsheet.XLSXShipmentReader
	logger        logger.Interface
}

func NewAdminHandler(
	renewUC *userusecases.RenewSubscriptionUseCase,
	ingestUC *ingestusecases.IngestShipmentsUseCase,
	reader *spreadsheet.XLSXShipmentReader,
	logger logger.Interface,
) *AdminHandler {
	return &AdminHandler{
		renewUseCase:  renewUC,
		ingestUseCase: ingestUC,
		reader:        reader,
		logger:        logger,
	}
}

// RenewSubscription replaces one direction's subscription for the
// customer named in the path.
func (h *AdminHandler) RenewSubscription(c *gin.Context) {
	customerID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid customer ID")
		return
	}

	var req dto.RenewSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := h.renewUseCase.Execute(c.Request.Context(), uint(customerID), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "subscription renewed", profile)
}

// Ingest accepts an xlsx upload and loads it into the direction named
// in the path. The upload is staged to a temp file that is removed
// whether or not the run succeeds.
func (h *AdminHandler) Ingest(direction shipment.Direction) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "missing file upload")
			return
		}

		tmpPath := filepath.Join(os.TempDir(),
			"tradesift-ingest-"+strconv.FormatInt(time.Now().UnixNano(), 10)+".xlsx")
		if err := c.SaveUploadedFile(file, tmpPath); err != nil {
			h.logger.Errorw("failed to stage upload", "error", err)
			utils.ErrorResponse(c, http.StatusInternalServerError, "failed to stage upload")
			return
		}
		defer func() {
			if err := os.Remove(tmpPath); err != nil {
				h.logger.Warnw("failed to remove staged upload", "path", tmpPath, "error", err)
			}
		}()

		records, err := h.reader.Read(tmpPath)
		if err != nil {
			h.logger.Errorw("failed to parse workbook", "file", file.Filename, "error", err)
			utils.ErrorResponse(c, http.StatusBadRequest, "failed to parse workbook")
			return
		}

		report, err := h.ingestUseCase.Execute(c.Request.Context(), direction, records)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "ingestion completed", report)
	}
}
