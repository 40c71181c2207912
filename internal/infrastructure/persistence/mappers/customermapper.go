package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/tradesift-io/tradesift/internal/domain/customer"
	"github.com/tradesift-io/tradesift/internal/domain/shipment"
	"github.com/tradesift-io/tradesift/internal/infrastructure/persistence/models"
)

// CustomerMapper handles the conversion between domain entities and
// persistence models
type CustomerMapper interface {
	ToEntity(model *models.CustomerModel) (*customer.Customer, error)
	ToModel(entity *customer.Customer) (*models.CustomerModel, error)
}

type customerMapper struct{}

// NewCustomerMapper creates a new customer mapper
func NewCustomerMapper() CustomerMapper {
	return &customerMapper{}
}

func (m *customerMapper) ToEntity(model *models.CustomerModel) (*customer.Customer, error) {
	if model == nil {
		return nil, nil
	}

	exportSub, err := toSubscription(model.ExportCodes, model.ExportValidUpto, model.ExportDownloadRemaining)
	if err != nil {
		return nil, fmt.Errorf("failed to decode export subscription: %w", err)
	}
	importSub, err := toSubscription(model.ImportCodes, model.ImportValidUpto, model.ImportDownloadRemaining)
	if err != nil {
		return nil, fmt.Errorf("failed to decode import subscription: %w", err)
	}

	entity, err := customer.Reconstruct(
		model.ID,
		model.Email,
		model.FullName,
		model.CompanyName,
		model.PasswordHash,
		exportSub,
		importSub,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct customer entity: %w", err)
	}
	return entity, nil
}

func (m *customerMapper) ToModel(entity *customer.Customer) (*models.CustomerModel, error) {
	if entity == nil {
		return nil, nil
	}

	exportSub := entity.Subscription(shipment.DirectionExport)
	importSub := entity.Subscription(shipment.DirectionImport)

	exportCodes, err := toCodesJSON(exportSub.Codes)
	if err != nil {
		return nil, fmt.Errorf("failed to encode export codes: %w", err)
	}
	importCodes, err := toCodesJSON(importSub.Codes)
	if err != nil {
		return nil, fmt.Errorf("failed to encode import codes: %w", err)
	}

	return &models.CustomerModel{
		ID:           entity.ID(),
		Email:        entity.Email(),
		FullName:     entity.FullName(),
		CompanyName:  entity.CompanyName(),
		PasswordHash: entity.PasswordHash(),

		ExportCodes:             exportCodes,
		ExportValidUpto:         toValidUptoColumn(exportSub.ValidUpto),
		ExportDownloadRemaining: exportSub.DownloadRemaining,

		ImportCodes:             importCodes,
		ImportValidUpto:         toValidUptoColumn(importSub.ValidUpto),
		ImportDownloadRemaining: importSub.DownloadRemaining,

		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}

func toSubscription(codes datatypes.JSON, validUpto *time.Time, remaining int) (customer.CodeSubscription, error) {
	sub := customer.CodeSubscription{DownloadRemaining: remaining}
	if len(codes) > 0 {
		if err := json.Unmarshal(codes, &sub.Codes); err != nil {
			return customer.CodeSubscription{}, err
		}
	}
	if validUpto != nil {
		sub.ValidUpto = *validUpto
	}
	return sub, nil
}

func toCodesJSON(codes []string) (datatypes.JSON, error) {
	if len(codes) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(codes)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func toValidUptoColumn(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
