package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sitedesk/sitedesk/internal/infrastructure/migration"
	"github.com/sitedesk/sitedesk/internal/interfaces/cli/bootstrap"
)

var (
	flags bootstrap.Flags
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations: apply pending scripts, roll back, and inspect the current version.`,
	}

	cmd.PersistentFlags().StringVarP(&flags.Env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&flags.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

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
		Long:  `Apply all pending database migrations. SQLite databases are migrated from the models instead of the SQL scripts.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

func runUp(cmd *cobra.Command, args []string) error {
	env, err := bootstrap.Init(&flags)
	if err != nil {
		return err
	}
	defer env.Close()

	strategy := migration.ForDriver(env.Config.Database.Driver, env.Logger)
	env.Logger.Infow("running up migrations", "environment", flags.Env, "strategy", strategy.GetName())

	if err := strategy.Migrate(env.DB); err != nil {
		env.Logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	env.Logger.Infow("migrations completed successfully")
	return nil
}

func gooseStrategy(env *bootstrap.Env, action string) (*migration.GooseStrategy, error) {
	goose, ok := migration.ForDriver(env.Config.Database.Driver, env.Logger).(*migration.GooseStrategy)
	if !ok {
		return nil, fmt.Errorf("%s is only supported with goose strategy", action)
	}
	return goose, nil
}

func runDown(cmd *cobra.Command, args []string) error {
	env, err := bootstrap.Init(&flags)
	if err != nil {
		return err
	}
	defer env.Close()

	strategy, err := gooseStrategy(env, "down migration")
	if err != nil {
		return err
	}

	env.Logger.Infow("running down migrations", "environment", flags.Env, "steps", steps)
	if err := strategy.MigrateDown(env.DB, steps); err != nil {
		env.Logger.Errorw("down migration failed", "error", err)
		return fmt.Errorf("down migration failed: %w", err)
	}

	env.Logger.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	env, err := bootstrap.Init(&flags)
	if err != nil {
		return err
	}
	defer env.Close()

	strategy, err := gooseStrategy(env, "status check")
	if err != nil {
		return err
	}

	version, err := strategy.GetVersion(env.DB)
	if err != nil {
		env.Logger.Errorw("failed to get migration version", "error", err)
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nMigration Status:\n")
	fmt.Fprintf(out, "  Environment:     %s\n", flags.Env)
	fmt.Fprintf(out, "  Current Version: %d\n", version)

	if err := strategy.Status(env.DB); err != nil {
		env.Logger.Errorw("failed to get detailed status", "error", err)
		return fmt.Errorf("failed to get detailed status: %w", err)
	}
	return nil
}
