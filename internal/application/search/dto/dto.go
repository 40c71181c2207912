package dto

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/tradesift-io/tradesift/internal/domain/shipment"
	"github.com/tradesift-io/tradesift/internal/shared/errors"
	"github.com/tradesift-io/tradesift/internal/shared/utils"
)

var validate = validator.New()

// SearchText carries the primary search criteria; at least one of the
// two fields must be present.
type SearchText struct {
	HSCode      string `json:"hs_code"`
	ProductName string `json:"product_name"`
}

// Filters are optional narrowing criteria, each an independent
// case-insensitive substring match.
type Filters struct {
	BuyerName    string `json:"buyer_name"`
	SupplierName string `json:"supplier_name"`
	PortCode     string `json:"port_code"`
	Unit         string `json:"unit"`
	Country      string `json:"country"`
}

// Duration is the required inclusive shipment-date range.
type Duration struct {
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
}

// Pagination selects the page window; page_index is 1-based.
type Pagination struct {
	PageIndex int `json:"page_index" validate:"required,min=1"`
	PageSize  int `json:"page_size"`
}

// SearchRequest is the request body for search, download and analytics
// endpoints.
type SearchRequest struct {
	SearchText SearchText `json:"search_text"`
	Filters    *Filters   `json:"filters"`
	Duration   Duration   `json:"duration" validate:"required"`
	Pagination Pagination `json:"pagination" validate:"required"`
	// DownloadSub routes a search from a fully entitled customer through
	// the quota-consuming download path. Callers without a covering
	// subscription get the plain search result for their access level.
	DownloadSub bool `json:"download_sub"`
}

// Normalize validates the request and produces the domain query plus
// validated pagination. Validation failures are client-fixable and are
// reported before any storage query runs.
func (r *SearchRequest) Normalize() (shipment.SearchQuery, utils.Pagination, error) {
	if err := validate.Struct(r); err != nil {
		return shipment.SearchQuery{}, utils.Pagination{}, errors.NewValidationError(err.Error())
	}

	q := shipment.SearchQuery{
		HSCode:      r.SearchText.HSCode,
		ProductName: r.SearchText.ProductName,
		StartDate:   r.Duration.StartDate,
		EndDate:     r.Duration.EndDate,
	}
	if r.Filters != nil {
		q.BuyerName = r.Filters.BuyerName
		q.SupplierName = r.Filters.SupplierName
		q.PortCode = r.Filters.PortCode
		q.Unit = r.Filters.Unit
		q.Country = r.Filters.Country
	}

	if err := q.Validate(); err != nil {
		return shipment.SearchQuery{}, utils.Pagination{}, errors.NewValidationError(err.Error())
	}

	page := utils.ValidatePagination(r.Pagination.PageIndex, r.Pagination.PageSize)
	return q, page, nil
}

// RecordDTO is the full-field projection of a shipment record.
type RecordDTO struct {
	ID              uint      `json:"id"`
	HSCode          string    `json:"hs_code"`
	ItemDescription string    `json:"item_description"`
	Quantity        float64   `json:"quantity"`
	Unit            string    `json:"unit"`
	Country         string    `json:"country"`
	BuyerName       string    `json:"buyer_name"`
	SupplierName    string    `json:"supplier_name"`
	OriginPort      string    `json:"origin_port"`
	DestinationPort string    `json:"destination_port"`
	ShipmentDate    time.Time `json:"shipment_date"`
	ValueUSD        float64   `json:"value_usd"`
}

// RestrictedRecordDTO is the narrow, non-monetized projection returned
// to callers without a full entitlement.
type RestrictedRecordDTO struct {
	ItemDescription string    `json:"item_description"`
	HSCode          string    `json:"hs_code"`
	Quantity        float64   `json:"quantity"`
	Unit            string    `json:"unit"`
	Country         string    `json:"country"`
	ShipmentDate    time.Time `json:"shipment_date"`
}

// PaginationMeta describes the full matching set, independent of the
// returned page window.
type PaginationMeta struct {
	PageIndex    int   `json:"page_index"`
	PageSize     int   `json:"page_size"`
	TotalPages   int   `json:"total_pages"`
	TotalRecords int64 `json:"total_records"`
}

// SearchResponse is the search endpoint payload.
type SearchResponse struct {
	Records      interface{}    `json:"records"`
	Pagination   PaginationMeta `json:"pagination"`
	Subscription bool           `json:"subscription"`
}

// DownloadResponse is the quota-consuming download payload.
type DownloadResponse struct {
	TotalRecords int64       `json:"total_records"`
	Records      []RecordDTO `json:"records"`
}

// ToRecordDTOs maps records into the full projection.
func ToRecordDTOs(records []shipment.Record) []RecordDTO {
	out := make([]RecordDTO, 0, len(records))
	for _, r := range records {
		out = append(out, RecordDTO{
			ID:              r.ID,
			HSCode:          r.HSCode,
			ItemDescription: r.ItemDescription,
			Quantity:        r.Quantity,
			Unit:            r.Unit,
			Country:         r.Country,
			BuyerName:       r.BuyerName,
			SupplierName:    r.SupplierName,
			OriginPort:      r.OriginPort,
			DestinationPort: r.DestinationPort,
			ShipmentDate:    r.ShipmentDate,
			ValueUSD:        r.ValueUSD,
		})
	}
	return out
}

// ToRestrictedRecordDTOs maps records into the restricted projection.
func ToRestrictedRecordDTOs(records []shipment.Record) []RestrictedRecordDTO {
	out := make([]RestrictedRecordDTO, 0, len(records))
	for _, r := range records {
		out = append(out, RestrictedRecordDTO{
			ItemDescription: r.ItemDescription,
			HSCode:          r.HSCode,
			Quantity:        r.Quantity,
			Unit:            r.Unit,
			Country:         r.Country,
			ShipmentDate:    r.ShipmentDate,
		})
	}
	return out
}
