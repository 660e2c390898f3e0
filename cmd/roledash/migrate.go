package main

import (
	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/adriit/roledash/internal/infrastructure/db/postgres"
	"github.com/adriit/roledash/internal/pkg/config"
)

// NewMigrateCmd creates the migrate subcommand. Migrations only apply to the
// PostgreSQL store; MongoDB indexes are created on startup.
func NewMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage PostgreSQL schema migrations",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: withMigrator(func(cmd *cobra.Command, m *postgres.Migrator) error {
				if err := m.Up(); err != nil {
					return err
				}
				cmd.Println("Migrations applied")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back all migrations",
			RunE: withMigrator(func(cmd *cobra.Command, m *postgres.Migrator) error {
				if err := m.Down(); err != nil {
					return err
				}
				cmd.Println("Migrations rolled back")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			RunE: withMigrator(func(cmd *cobra.Command, m *postgres.Migrator) error {
				v, dirty, err := m.Version()
				if err != nil {
					return err
				}
				cmd.Printf("version %d (dirty: %t)\n", v, dirty)
				return nil
			}),
		},
	)
	return cmd
}

func withMigrator(run func(*cobra.Command, *postgres.Migrator) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return oops.Code("CONFIG_INVALID").Wrap(err)
		}
		if cfg.Store.Driver != config.DriverPostgres {
			return oops.Code("CONFIG_INVALID").
				With("driver", cfg.Store.Driver).
				Errorf("migrations require STORE_DRIVER=postgres")
		}

		m, err := postgres.NewMigrator(cfg.Store.DatabaseURL)
		if err != nil {
			return err
		}
		defer m.Close()

		return run(cmd, m)
	}
}
