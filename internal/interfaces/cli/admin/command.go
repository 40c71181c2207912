package admin

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tradesift-io/tradesift/internal/application/user/dto"
	"github.com/tradesift-io/tradesift/internal/application/user/usecases"
	"github.com/tradesift-io/tradesift/internal/infrastructure/auth"
	"github.com/tradesift-io/tradesift/internal/infrastructure/config"
	"github.com/tradesift-io/tradesift/internal/infrastructure/database"
	"github.com/tradesift-io/tradesift/internal/infrastructure/repository"
	"github.com/tradesift-io/tradesift/internal/shared/logger"
)

var (
	env      string
	email    string
	password string
	fullName string
)

// NewCommand provisions operator accounts from the command line; there
// is no public endpoint for this.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative account tools",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newCreateCommand())
	return cmd
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an admin account",
		RunE:  runCreate,
	}

	cmd.Flags().StringVar(&email, "email", "", "Admin email address")
	cmd.Flags().StringVar(&password, "password", "", "Admin password")
	cmd.Flags().StringVar(&fullName, "name", "", "Admin full name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	cmd.MarkFlagRequired("name")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
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

	log := logger.NewLogger()
	adminRepo := repository.NewAdminRepository(database.Get(), log)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	createUC := usecases.NewCreateAdminUseCase(adminRepo, hasher, log)

	a, err := createUC.Execute(context.Background(), dto.CreateAdminRequest{
		Email:    email,
		Password: password,
		FullName: fullName,
	})
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	fmt.Printf("admin created: id=%d email=%s\n", a.ID(), a.Email())
	return nil
}
