//	@title			Floorboard API
//	@version		1.0
//	@description	Admin backend for publishing building floor plans.
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT Bearer token. Format: **Bearer {token}**

package main

import (
	"os"

	"github.com/spf13/cobra"

	_ "github.com/floorboard/service/docs/swagger"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "floorboard",
		Short:        "Admin backend for publishing building floor plans",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newServeCmd(), newMigrateCmd(), newTokenCmd())

	// Running the binary without a subcommand starts the API server.
	rootCmd.RunE = newServeCmd().RunE

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
