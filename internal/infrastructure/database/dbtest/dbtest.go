// Package dbtest opens migrated in-memory SQLite databases for tests.
package dbtest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sitedesk/sitedesk/internal/infrastructure/database"
	"github.com/sitedesk/sitedesk/internal/infrastructure/migration"
	"github.com/sitedesk/sitedesk/internal/shared/config"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

// New returns a fresh in-memory database with every table created. It is
// closed when the test ends.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	gdb, err := database.Open(&config.DatabaseConfig{
		Driver:   database.DriverSQLite,
		Database: ":memory:",
	}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, migration.NewAutoMigrateStrategy(logger.Nop()).Migrate(gdb))

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}
