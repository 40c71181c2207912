package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/tradesift-io/tradesift/internal/infrastructure/config"
	"github.com/tradesift-io/tradesift/internal/infrastructure/database"
	"github.com/tradesift-io/tradesift/internal/infrastructure/migration"
	"github.com/tradesift-io/tradesift/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Run pending migrations, roll back, or check migration status.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func() error {
				return migration.NewManager(env).Migrate(database.Get())
			})
		},
	}
}

func newDownCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func() error {
				sqlDB, err := database.Get().DB()
				if err != nil {
					return fmt.Errorf("failed to get underlying sql.DB: %w", err)
				}
				if err := goose.SetDialect("mysql"); err != nil {
					return err
				}
				return goose.Down(sqlDB, scriptsPath())
			})
		},
	}
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func() error {
				sqlDB, err := database.Get().DB()
				if err != nil {
					return fmt.Errorf("failed to get underlying sql.DB: %w", err)
				}
				if err := goose.SetDialect("mysql"); err != nil {
					return err
				}
				return goose.Status(sqlDB, scriptsPath())
			})
		},
	}
}

func scriptsPath() string {
	path, _ := filepath.Abs("./internal/infrastructure/migration/scripts")
	return path
}

func withDatabase(fn func() error) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	return fn()
}
