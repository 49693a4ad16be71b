// Package bootstrap loads configuration and opens the database for the
// one-shot CLI commands.
package bootstrap

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/sitedesk/sitedesk/internal/infrastructure/config"
	"github.com/sitedesk/sitedesk/internal/infrastructure/database"
	"github.com/sitedesk/sitedesk/internal/shared/biztime"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

// Env is what a command needs after start-up. Close releases the database.
type Env struct {
	Config *config.Config
	Logger logger.Interface
	DB     *gorm.DB
}

// Flags are the persistent flags shared by the CLI commands.
type Flags struct {
	Env        string
	ConfigPath string
}

// Init loads the configuration, the logger, the business timezone and the
// database, in that order.
func Init(flags *Flags) (*Env, error) {
	cfg, err := config.Load(flags.Env, flags.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	// Initialize business timezone for due period boundaries
	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Env{Config: cfg, Logger: log, DB: database.Get()}, nil
}

func (e *Env) Close() {
	if err := database.Close(); err != nil {
		e.Logger.Warnw("failed to close database", "error", err)
	}
}
