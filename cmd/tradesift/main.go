package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tradesift-io/tradesift/internal/interfaces/cli/admin"
	"github.com/tradesift-io/tradesift/internal/interfaces/cli/migrate"
	"github.com/tradesift-io/tradesift/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tradesift",
		Short: "Tradesift - trade shipment data service",
		Long:  `Tradesift serves import and export shipment data: entitlement-gated search, quota-metered downloads, analytics, and bulk ingestion.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		admin.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
