package mappers

import (
	"fmt"

	"github.com/tradesift-io/tradesift/internal/domain/admin"
	"github.com/tradesift-io/tradesift/internal/infrastructure/persistence/models"
)

// AdminMapper handles the conversion between domain entities and
// persistence models
type AdminMapper interface {
	ToEntity(model *models.AdminModel) (*admin.Admin, error)
	ToModel(entity *admin.Admin) (*models.AdminModel, error)
}

type adminMapper struct{}

// NewAdminMapper creates a new admin mapper
func NewAdminMapper() AdminMapper {
	return &adminMapper{}
}

func (m *adminMapper) ToEntity(model *models.AdminModel) (*admin.Admin, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := admin.Reconstruct(
		model.ID,
		model.Email,
		model.FullName,
		model.PasswordHash,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct admin entity: %w", err)
	}
	return entity, nil
}

func (m *adminMapper) ToModel(entity *admin.Admin) (*models.AdminModel, error) {
	if entity == nil {
		return nil, nil
	}
	return &models.AdminModel{
		ID:           entity.ID(),
		Email:        entity.Email(),
		FullName:     entity.FullName(),
		PasswordHash: entity.PasswordHash(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}, nil
}
