package migration

import (
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/tradesift-io/tradesift/internal/infrastructure/persistence/models"
	"github.com/tradesift-io/tradesift/internal/shared/constants"
	"github.com/tradesift-io/tradesift/internal/shared/logger"
)

// Strategy defines the interface for different migration strategies
type Strategy interface {
	Migrate(db *gorm.DB) error
	GetName() string
}

// GormAutoMigrateStrategy derives the schema from the persistence
// models. Suitable for development only.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.auto"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.AdminModel{},
		&models.CustomerModel{},
	); err != nil {
		return fmt.Errorf("failed to auto-migrate account tables: %w", err)
	}

	// Export and import records share one model shape but live in
	// separate tables, so each table is migrated explicitly.
	for _, table := range []string{constants.TableExportShipments, constants.TableImportShipments} {
		if err := db.Table(table).AutoMigrate(&models.ShipmentModel{}); err != nil {
			return fmt.Errorf("failed to auto-migrate %s: %w", table, err)
		}
	}

	s.logger.Infow("auto-migration completed")
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

// GooseStrategy runs version-controlled SQL scripts with goose.
type GooseStrategy struct {
	scriptsPath string
	logger      logger.Interface
}

func NewGooseStrategy(scriptsPath string) Strategy {
	return &GooseStrategy{
		scriptsPath: scriptsPath,
		logger:      logger.NewLogger().With("component", "migration.goose"),
	}
}

func (s *GooseStrategy) Migrate(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	s.logger.Infow("running goose migrations", "scripts_path", s.scriptsPath)
	if err := goose.Up(sqlDB, s.scriptsPath); err != nil {
		return fmt.Errorf("goose migration failed: %w", err)
	}
	return nil
}

func (s *GooseStrategy) GetName() string {
	return "goose"
}
