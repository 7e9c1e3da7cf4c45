// filepath: internal/cli/migrate_command.go
package cli

import (
	"github.com/spf13/cobra"

	"daylog/internal/repository"
)

// migrateCmd groups the schema management subcommands.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Database migration tools",
	Long:  `Manage database schema versions. Use subcommands 'up', 'down', or 'status'.`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Migrate the database to the most recent version",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepository(func(repo *repository.Repository) error {
			return repo.MigrateUp()
		})
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the database by one version",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepository(func(repo *repository.Repository) error {
			return repo.MigrateDown()
		})
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Dump the migration status for the current DB",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepository(func(repo *repository.Repository) error {
			return repo.MigrationStatus()
		})
	},
}

// withRepository opens the repository for a one-shot command and closes it
// when done.
func withRepository(fn func(*repository.Repository) error) error {
	repo, err := repository.NewRepository(cfg)
	if err != nil {
		return err
	}
	defer repo.Close()
	return fn(repo)
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
	RootCmd.AddCommand(migrateCmd)
}
