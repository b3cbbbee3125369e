package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// MinJWTSecretLength is the shortest accepted HMAC secret
const MinJWTSecretLength = 32

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configs/<env>.yaml, then applies BP_ environment
// overrides. An empty env falls back to BP_ENV and then development.
// extraPaths are searched before the default config paths.
func LoadConfig(env string, extraPaths ...string) (*Config, error) {
	// .env is optional
	_ = loadDotEnvFile()

	if env == "" {
		env = getEnvironment()
	}
	env = strings.ToLower(env)

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range append(extraPaths, ConfigPaths...) {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix("BP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	config.Environment = env

	processDurations(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadDotEnvFile loads the first .env file found. Existing variables win.
func loadDotEnvFile() error {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return godotenv.Load(path)
	}
	return errors.New("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.host", "")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.username", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds
	v.SetDefault("database.logLevel", "warn")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.filePath", "logs/bunk-loyalty.log")
	v.SetDefault("logger.maxSizeMB", 100)
	v.SetDefault("logger.maxBackups", 3)
	v.SetDefault("logger.maxAgeDays", 7)
	v.SetDefault("logger.compress", true)
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("ledger.maxRetries", 5)
	v.SetDefault("ledger.retryInterval", 50) // milliseconds
	v.SetDefault("ledger.maxInterval", 2000) // milliseconds

	v.SetDefault("auth.jwtSecret", "")
	v.SetDefault("auth.tokenTTL", 60) // minutes
	v.SetDefault("auth.issuer", "bunk-loyalty")
	v.SetDefault("auth.webhookSecret", "")
	v.SetDefault("auth.revocationStore", "memory")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.keyPrefix", "bunk-loyalty:")

	v.SetDefault("cors.allowedOrigins", []string{"*"})
	v.SetDefault("cors.allowedMethods", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowedHeaders", []string{"Authorization", "Content-Type", "X-Request-ID"})
	v.SetDefault("cors.allowCredentials", false)
	v.SetDefault("cors.maxAge", 300)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
	v.SetDefault("metrics.namespace", "bunk_loyalty")

	v.SetDefault("seed.adminUid", "admin")
	v.SetDefault("seed.adminEmail", "")
	v.SetDefault("seed.adminPassword", "")
	v.SetDefault("seed.adminFirstName", "System")
	v.SetDefault("seed.adminLastName", "Admin")
	v.SetDefault("seed.creditPercentage", "1")
	v.SetDefault("seed.redemptionRate", "1")
}

// getEnvironment determines the environment to use based on BP_ENV environment variable
func getEnvironment() string {
	env := os.Getenv("BP_ENV")
	if env == "" {
		return Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides gives the documented short variable names priority
// over the config file, for secrets in particular
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"BP_DB_DRIVER":           "database.driver",
		"BP_DB_HOST":             "database.host",
		"BP_DB_PORT":             "database.port",
		"BP_DB_USERNAME":         "database.username",
		"BP_DB_PASSWORD":         "database.password",
		"BP_DB_NAME":             "database.database",
		"BP_DB_SSL_MODE":         "database.sslMode",
		"BP_SERVER_HOST":         "server.host",
		"BP_LOGGER_LEVEL":        "logger.level",
		"BP_JWT_SECRET":          "auth.jwtSecret",
		"BP_WEBHOOK_SECRET":      "auth.webhookSecret",
		"BP_REVOCATION_STORE":    "auth.revocationStore",
		"BP_REDIS_ADDR":          "redis.addr",
		"BP_REDIS_PASSWORD":      "redis.password",
		"BP_SEED_ADMIN_EMAIL":    "seed.adminEmail",
		"BP_SEED_ADMIN_PASSWORD": "seed.adminPassword",
	}
	for env, key := range stringOverrides {
		if value := os.Getenv(env); value != "" {
			v.Set(key, value)
		}
	}

	intOverrides := map[string]string{
		"BP_SERVER_PORT":               "server.port",
		"BP_DB_MAX_OPEN_CONNS":         "database.maxOpenConns",
		"BP_DB_MAX_IDLE_CONNS":         "database.maxIdleConns",
		"BP_DB_QUERY_TIMEOUT_SECONDS":  "database.queryTimeout",
		"BP_LEDGER_MAX_RETRIES":        "ledger.maxRetries",
		"BP_AUTH_TOKEN_TTL_MINUTES":    "auth.tokenTTL",
		"BP_LEDGER_RETRY_INTERVAL_MS":  "ledger.retryInterval",
		"BP_DB_CONN_MAX_LIFETIME_MINS": "database.connMaxLifetime",
	}
	for env, key := range intOverrides {
		if value := getEnvInt(env, 0); value > 0 {
			v.Set(key, value)
		}
	}
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second

	config.Ledger.RetryInterval = time.Duration(config.Ledger.RetryInterval) * time.Millisecond
	config.Ledger.MaxInterval = time.Duration(config.Ledger.MaxInterval) * time.Millisecond

	config.Auth.TokenTTL = time.Duration(config.Auth.TokenTTL) * time.Minute
}

// validateConfig checks required values and ranges
func validateConfig(config *Config) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", config.Server.Port)
	}

	switch config.Database.Driver {
	case "postgres", "mysql":
		if config.Database.Host == "" || config.Database.Database == "" {
			return fmt.Errorf("database.host and database.database are required for %s", config.Database.Driver)
		}
	case "sqlite":
		if config.Database.Database == "" {
			return errors.New("database.database must name the sqlite file")
		}
	default:
		return fmt.Errorf("unsupported database.driver: %q", config.Database.Driver)
	}

	switch config.Logger.Output {
	case "stdout", "stderr", "file":
	default:
		return fmt.Errorf("unsupported logger.output: %q", config.Logger.Output)
	}

	if config.Ledger.MaxRetries < 1 {
		return fmt.Errorf("ledger.maxRetries must be at least 1, got %d", config.Ledger.MaxRetries)
	}

	if len(config.Auth.JWTSecret) < MinJWTSecretLength {
		return fmt.Errorf("auth.jwtSecret must be at least %d characters", MinJWTSecretLength)
	}
	if config.Auth.TokenTTL <= 0 {
		return errors.New("auth.tokenTTL must be positive")
	}
	if config.Auth.WebhookSecret == "" {
		return errors.New("auth.webhookSecret is required")
	}
	switch config.Auth.RevocationStore {
	case "memory":
	case "redis":
		if config.Redis.Addr == "" {
			return errors.New("redis.addr is required when auth.revocationStore is redis")
		}
	default:
		return fmt.Errorf("unsupported auth.revocationStore: %q", config.Auth.RevocationStore)
	}

	if _, err := decimal.NewFromString(config.Seed.CreditPercentage); err != nil {
		return fmt.Errorf("seed.creditPercentage: %w", err)
	}
	if _, err := decimal.NewFromString(config.Seed.RedemptionRate); err != nil {
		return fmt.Errorf("seed.redemptionRate: %w", err)
	}
	if config.Seed.AdminEmail != "" && len(config.Seed.AdminPassword) < 6 {
		return errors.New("seed.adminPassword must be at least 6 characters when seed.adminEmail is set")
	}

	return nil
}
