package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tradesift-io/tradesift/internal/domain/admin"
	"github.com/tradesift-io/tradesift/internal/infrastructure/persistence/mappers"
	"github.com/tradesift-io/tradesift/internal/infrastructure/persistence/models"
	"github.com/tradesift-io/tradesift/internal/shared/logger"
)

// AdminRepository implements admin.Repository on MySQL.
type AdminRepository struct {
	db     *gorm.DB
	mapper mappers.AdminMapper
	logger logger.Interface
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *gorm.DB, logger logger.Interface) admin.Repository {
	return &AdminRepository{
		db:     db,
		mapper: mappers.NewAdminMapper(),
		logger: logger,
	}
}

// Create creates a new admin
func (r *AdminRepository) Create(ctx context.Context, entity *admin.Admin) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map admin entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create admin", "email", entity.Email(), "error", err)
		return fmt.Errorf("failed to create admin: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set admin ID: %w", err)
	}
	return nil
}

// Update persists the current state of an admin
func (r *AdminRepository) Update(ctx context.Context, entity *admin.Admin) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map admin entity: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.AdminModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update admin", "admin_id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update admin: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return admin.ErrAdminNotFound
	}
	return nil
}

// GetByID retrieves an admin by ID, (nil, nil) when missing
func (r *AdminRepository) GetByID(ctx context.Context, id uint) (*admin.Admin, error) {
	var model models.AdminModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get admin by ID", "admin_id", id, "error", err)
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

// GetByEmail retrieves an admin by email, (nil, nil) when missing
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	var model models.AdminModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get admin by email", "error", err)
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return r.mapper.ToEntity(&model)
}
