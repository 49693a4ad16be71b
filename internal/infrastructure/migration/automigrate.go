package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/sitedesk/sitedesk/internal/infrastructure/persistence/models"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

// AutoMigrateModels lists every table of the service in dependency order.
func AutoMigrateModels() []any {
	return []any{
		&models.SiteModel{},
		&models.BlockModel{},
		&models.ApartmentModel{},
		&models.UserModel{},
		&models.MonthlyDueModel{},
		&models.PaymentModel{},
		&models.ComplaintModel{},
	}
}

// AutoMigrateStrategy derives the schema from the gorm models. Used for
// SQLite and for development databases.
type AutoMigrateStrategy struct {
	logger logger.Interface
}

func NewAutoMigrateStrategy(log logger.Interface) *AutoMigrateStrategy {
	return &AutoMigrateStrategy{logger: log.With("component", "migration.automigrate")}
}

func (s *AutoMigrateStrategy) GetName() string {
	return "automigrate"
}

func (s *AutoMigrateStrategy) Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AutoMigrateModels()...); err != nil {
		return fmt.Errorf("failed to auto-migrate models: %w", err)
	}
	s.logger.Infow("auto-migration completed", "tables", len(AutoMigrateModels()))
	return nil
}
