package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	// Timezone is the business timezone used for due periods (IANA name).
	Timezone string `mapstructure:"timezone"`
	// RateLimitPerMinute caps requests per admin; 0 disables. Needs Redis.
	RateLimitPerMinute int `mapstructure:"rate_limit_per_minute"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	// Driver is "mysql" (default) or "sqlite". For sqlite, Database is the
	// file path or ":memory:".
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&collation=utf8mb4_general_ci&parseTime=true&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type RedisConfig struct {
	Enabled             bool   `mapstructure:"enabled"`
	Host                string `mapstructure:"host"`
	Port                int    `mapstructure:"port"`
	Password            string `mapstructure:"password"`
	DB                  int    `mapstructure:"db"`
	SiteCacheTTLMinutes int    `mapstructure:"site_cache_ttl_minutes"`
	// LocalSiteCacheSize bounds the in-process site code cache used when
	// Redis is disabled.
	LocalSiteCacheSize int `mapstructure:"local_site_cache_size"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
}

type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

type AuthConfig struct {
	JWT      JWTConfig      `mapstructure:"jwt"`
	Password PasswordConfig `mapstructure:"password"`
}

// ResidenceConfig holds the knobs of the resident/apartment/block core.
type ResidenceConfig struct {
	// PhoneRegion is the default region for numbers without a country prefix.
	PhoneRegion string `mapstructure:"phone_region"`
	// DefaultDueAmount is used when a site has no monthly due amount of its own.
	DefaultDueAmount string `mapstructure:"default_due_amount"`
	// DueDay is the day of month monthly dues fall due on.
	DueDay int `mapstructure:"due_day"`
	// StrictCapacity rejects lowering a block's apartment_count below an
	// occupied apartment number.
	StrictCapacity bool `mapstructure:"strict_capacity"`
}

// SchedulerConfig controls background maintenance jobs.
type SchedulerConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// ReconcileCron is a five-field cron expression in the business timezone.
	ReconcileCron string `mapstructure:"reconcile_cron"`
}
