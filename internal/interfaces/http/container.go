package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/sitedesk/sitedesk/internal/domain/site"
	"github.com/sitedesk/sitedesk/internal/infrastructure/auth"
	"github.com/sitedesk/sitedesk/internal/infrastructure/cache"
	"github.com/sitedesk/sitedesk/internal/infrastructure/config"
	"github.com/sitedesk/sitedesk/internal/infrastructure/ratelimit"
	"github.com/sitedesk/sitedesk/internal/infrastructure/scheduler"
	"github.com/sitedesk/sitedesk/internal/interfaces/http/middleware"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

// Container holds the infrastructure components, repositories, use cases and
// handlers, and wires them together. Shutdown releases what it opened.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	siteCodeCache site.CodeCache
	hasher        *auth.ResidentPasswordHasher
	jwtSvc        *auth.JWTService

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	schedulerManager *scheduler.SchedulerManager

	// Middlewares
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
}

// NewContainer creates a new Container with all dependencies wired together.
func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	if err := c.initInfrastructure(ctx); err != nil {
		return nil, err
	}
	c.initRepositories()
	if err := c.initUseCases(); err != nil {
		c.Shutdown()
		return nil, err
	}
	if err := c.initScheduler(); err != nil {
		c.Shutdown()
		return nil, err
	}
	c.initHandlers()
	c.initMiddlewares()

	return c, nil
}

func (c *Container) initInfrastructure(ctx context.Context) error {
	if c.cfg.Redis.Enabled {
		client, err := cache.NewRedisClient(ctx, &c.cfg.Redis)
		if err != nil {
			return err
		}
		c.redis = client
		ttl := time.Duration(c.cfg.Redis.SiteCacheTTLMinutes) * time.Minute
		c.siteCodeCache = cache.NewSiteCodeCache(client, ttl)
		c.log.Infow("redis connected", "addr", c.cfg.Redis.GetAddr())
	} else {
		c.siteCodeCache = cache.NewLocalSiteCodeCache(c.cfg.Redis.LocalSiteCacheSize)
		c.log.Infow("redis disabled, using in-process site code cache; rate limiting is off")
	}

	if c.cfg.Auth.JWT.Secret == "" {
		return fmt.Errorf("auth.jwt.secret must be set")
	}
	ttl := time.Duration(c.cfg.Auth.JWT.AccessExpMinutes) * time.Minute
	c.jwtSvc = auth.NewJWTService(c.cfg.Auth.JWT.Secret, ttl)
	c.hasher = auth.NewResidentPasswordHasher(c.cfg.Auth.Password.BcryptCost)
	return nil
}

func (c *Container) initMiddlewares() {
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.log)
	if c.redis != nil && c.cfg.Server.RateLimitPerMinute > 0 {
		limiter := ratelimit.NewRedisRateLimiter(c.redis, ratelimit.Window{
			Limit:  c.cfg.Server.RateLimitPerMinute,
			Period: time.Minute,
		})
		c.rateLimiter = middleware.NewRateLimiter(limiter, c.log)
	}
}

func (c *Container) initScheduler() error {
	if !c.cfg.Scheduler.Enabled {
		return nil
	}
	m, err := scheduler.NewSchedulerManager(c.log)
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	if err := m.RegisterReconcileJob(c.ucs.reconcileAllSites, c.cfg.Scheduler.ReconcileCron); err != nil {
		return fmt.Errorf("invalid scheduler.reconcile_cron %q: %w", c.cfg.Scheduler.ReconcileCron, err)
	}
	c.schedulerManager = m
	return nil
}

// StartScheduler starts the background jobs when the scheduler is enabled.
func (c *Container) StartScheduler() {
	if c.schedulerManager != nil {
		c.schedulerManager.Start()
	}
}

// Shutdown stops the scheduler and closes the Redis client, waiting for
// running jobs first.
func (c *Container) Shutdown() {
	if c.schedulerManager != nil {
		if err := c.schedulerManager.Stop(); err != nil {
			c.log.Warnw("failed to stop scheduler", "error", err)
		}
		c.schedulerManager = nil
	}
	if c.redis == nil {
		return
	}
	if err := c.redis.Close(); err != nil {
		c.log.Warnw("failed to close redis client", "error", err)
	}
	c.redis = nil
}
