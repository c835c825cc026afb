package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	Cart         CartConfig
	DB           DBConfig
	Redis        RedisConfig
	FeatureFlags FeatureFlagsConfig
	Metrics      MetricsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env             string        `envconfig:"ACTIVITYCART_APP_ENV" required:"true"`
	Port            string        `envconfig:"ACTIVITYCART_APP_PORT" default:"8080"`
	LogLevel        string        `envconfig:"ACTIVITYCART_LOG_LEVEL" default:"info"`
	LogWarnStack    bool          `envconfig:"ACTIVITYCART_LOG_WARN_STACK" default:"false"`
	ShutdownTimeout time.Duration `envconfig:"ACTIVITYCART_SHUTDOWN_TIMEOUT" default:"10s"`
	CORSOrigins     []string      `envconfig:"ACTIVITYCART_CORS_ORIGINS" default:"http://localhost:4200"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type CartConfig struct {
	StorageKey       string `envconfig:"ACTIVITYCART_CART_STORAGE_KEY" default:"activity_cart"`
	Backend          string `envconfig:"ACTIVITYCART_CART_BACKEND" default:"file"`
	FileDir          string `envconfig:"ACTIVITYCART_CART_FILE_DIR" default:"./data"`
	SubscriberBuffer int    `envconfig:"ACTIVITYCART_CART_SUBSCRIBER_BUFFER" default:"16"`
}

// NormalizedBackend returns the lower-cased backend name.
func (c CartConfig) NormalizedBackend() string {
	return strings.ToLower(strings.TrimSpace(c.Backend))
}

type DBConfig struct {
	DSN    string `envconfig:"ACTIVITYCART_DB_DSN"`
	Driver string `envconfig:"ACTIVITYCART_DB_DRIVER" default:"sqlite"`

	MaxOpenConns    int           `envconfig:"ACTIVITYCART_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"ACTIVITYCART_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"ACTIVITYCART_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"ACTIVITYCART_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"ACTIVITYCART_REDIS_URL"`
	Address      string        `envconfig:"ACTIVITYCART_REDIS_ADDR"`
	Password     string        `envconfig:"ACTIVITYCART_REDIS_PASSWORD"`
	DB           int           `envconfig:"ACTIVITYCART_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"ACTIVITYCART_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"ACTIVITYCART_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"ACTIVITYCART_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"ACTIVITYCART_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"ACTIVITYCART_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"ACTIVITYCART_AUTO_MIGRATE" default:"false"`
}

type MetricsConfig struct {
	Enabled bool   `envconfig:"ACTIVITYCART_METRICS_ENABLED" default:"true"`
	Path    string `envconfig:"ACTIVITYCART_METRICS_PATH" default:"/metrics"`
}

func (c *Config) validate() error {
	switch c.Cart.NormalizedBackend() {
	case BackendMemory:
	case BackendFile:
		if strings.TrimSpace(c.Cart.FileDir) == "" {
			return fmt.Errorf("%s is required for the %s backend", EnvCartFileDir, BackendFile)
		}
	case BackendRedis:
		if c.Redis.URL == "" && c.Redis.Address == "" {
			return fmt.Errorf("either %s or %s is required for the %s backend", EnvRedisURL, EnvRedisAddr, BackendRedis)
		}
	case BackendSQL:
		if c.DB.DSN == "" {
			return fmt.Errorf("%s is required for the %s backend", EnvDBDSN, BackendSQL)
		}
		switch strings.ToLower(c.DB.Driver) {
		case DriverPostgres, DriverSQLite:
		default:
			return fmt.Errorf("unsupported %s %q", EnvDBDriver, c.DB.Driver)
		}
	default:
		return fmt.Errorf("unsupported %s %q", EnvCartBackend, c.Cart.Backend)
	}

	if strings.TrimSpace(c.Cart.StorageKey) == "" {
		return fmt.Errorf("%s must not be empty", EnvCartStorageKey)
	}
	if c.Cart.SubscriberBuffer < 1 {
		return fmt.Errorf("%s must be at least 1", EnvCartSubscriberBuffer)
	}
	return nil
}
