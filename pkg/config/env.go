package config

const EnvPrefix = "ACTIVITYCART"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendSQL    = "sql"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const (
	EnvAppEnv               = "ACTIVITYCART_APP_ENV"
	EnvPort                 = "ACTIVITYCART_APP_PORT"
	EnvLogLevel             = "ACTIVITYCART_LOG_LEVEL"
	EnvCartStorageKey       = "ACTIVITYCART_CART_STORAGE_KEY"
	EnvCartBackend          = "ACTIVITYCART_CART_BACKEND"
	EnvCartFileDir          = "ACTIVITYCART_CART_FILE_DIR"
	EnvCartSubscriberBuffer = "ACTIVITYCART_CART_SUBSCRIBER_BUFFER"
	EnvDBDSN                = "ACTIVITYCART_DB_DSN"
	EnvDBDriver             = "ACTIVITYCART_DB_DRIVER"
	EnvRedisURL             = "ACTIVITYCART_REDIS_URL"
	EnvRedisAddr            = "ACTIVITYCART_REDIS_ADDR"
	EnvAutoMigrate          = "ACTIVITYCART_AUTO_MIGRATE"
)
