package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tradesift-io/tradesift/internal/domain/customer"
	"github.com/tradesift-io/tradesift/internal/domain/shipment"
	"github.com/tradesift-io/tradesift/internal/infrastructure/persistence/mappers"
	"github.com/tradesift-io/tradesift/internal/infrastructure/persistence/models"
	"github.com/tradesift-io/tradesift/internal/shared/logger"
)

// CustomerRepository implements customer.Repository on MySQL.
type CustomerRepository struct {
	db     *gorm.DB
	mapper mappers.CustomerMapper
	logger logger.Interface
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB, logger logger.Interface) customer.Repository {
	return &CustomerRepository{
		db:     db,
		mapper: mappers.NewCustomerMapper(),
		logger: logger,
	}
}

// Create creates a new customer
func (r *CustomerRepository) Create(ctx context.Context, entity *customer.Customer) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map customer entity to model", "error", err)
		return fmt.Errorf("failed to map customer entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create customer", "email", entity.Email(), "error", err)
		return fmt.Errorf("failed to create customer: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set customer ID: %w", err)
	}
	return nil
}

// Update persists the current state of a customer
func (r *CustomerRepository) Update(ctx context.Context, entity *customer.Customer) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map customer entity to model", "error", err)
		return fmt.Errorf("failed to map customer entity: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.CustomerModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update customer", "customer_id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update customer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return customer.ErrCustomerNotFound
	}
	return nil
}

// GetByID retrieves a customer by ID, (nil, nil) when missing
func (r *CustomerRepository) GetByID(ctx context.Context, id uint) (*customer.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get customer by ID", "customer_id", id, "error", err)
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

// GetByEmail retrieves a customer by email, (nil, nil) when missing
func (r *CustomerRepository) GetByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get customer by email", "error", err)
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

// ConsumeDownloadQuota decrements the direction's quota column in one
// conditional update. The WHERE clause guards the balance, so the
// decrement either applies fully or not at all; the column can never go
// negative even when downloads race.
func (r *CustomerRepository) ConsumeDownloadQuota(ctx context.Context, id uint, direction shipment.Direction, amount int) error {
	col := "export_download_remaining"
	if direction == shipment.DirectionImport {
		col = "import_download_remaining"
	}

	result := r.db.WithContext(ctx).Model(&models.CustomerModel{}).
		Where(fmt.Sprintf("id = ? AND %s >= ?", col), id, amount).
		UpdateColumn(col, gorm.Expr(fmt.Sprintf("%s - ?", col), amount))
	if result.Error != nil {
		r.logger.Errorw("failed to consume download quota",
			"customer_id", id,
			"direction", direction,
			"amount", amount,
			"error", result.Error,
		)
		return fmt.Errorf("failed to consume download quota: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return customer.ErrQuotaExhausted
	}
	return nil
}
