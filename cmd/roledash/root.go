package main

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command of the roledash CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roledash",
		Short: "Role-based dashboards with cookie sessions",
		Long: `roledash serves the authentication API and the role-gated
dashboard pages. Configuration is read from the environment and an
optional .env file.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMigrateCmd())

	return cmd
}
