package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/models"
)

// DevFallbackSecret is the signing secret used when JWT_SECRET is unset
// outside production. Deployments must set a real secret; startup fails in
// production without one.
const DevFallbackSecret = "finonest-dev-secret-do-not-use"

// InitConfig loads application configuration from the environment,
// optionally seeded from a config file.
func InitConfig(configPath string) (*models.Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			// A missing file is fine outside local setups; env vars win anyway.
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	setDefaults(v)

	configs := &models.Config{}

	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	configs.NSQ.Address = v.GetString("NSQ_ADDRESS")

	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Expiration = v.GetInt("JWT_EXPIRATION")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")

	configs.Auth.AllowAllRoles = v.GetBool("AUTH_ALLOW_ALL_ROLES")

	configs.OTP.Length = v.GetInt("OTP_LENGTH")
	configs.OTP.ExpiryMin = v.GetInt("OTP_EXPIRY_MIN")
	configs.OTP.MaxAttempts = v.GetInt("OTP_MAX_ATTEMPTS")

	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	if err := Validate(configs); err != nil {
		return nil, err
	}

	return configs, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "finonest-server")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("SERVER_PORT", 9990)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("NSQ_ADDRESS", "localhost:4150")
	v.SetDefault("JWT_EXPIRATION", 60)
	v.SetDefault("JWT_ISSUER", "finonest")
	v.SetDefault("OTP_LENGTH", 6)
	v.SetDefault("OTP_EXPIRY_MIN", 5)
	v.SetDefault("OTP_MAX_ATTEMPTS", 5)
	v.SetDefault("LOG_LEVEL", "info")
}

// IsProduction reports whether the config describes a production deployment.
func IsProduction(cfg *models.Config) bool {
	return cfg.App.Environment == "production"
}

// Validate enforces startup invariants that must not be deferred to
// request time. A missing JWT secret is fatal in production; elsewhere the
// dev fallback is substituted and the caller is expected to log a warning.
// The role-enforcement bypass is rejected outright in production.
func Validate(cfg *models.Config) error {
	if cfg.JWT.Secret == "" {
		if IsProduction(cfg) {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWT.Secret = DevFallbackSecret
	}

	if cfg.Auth.AllowAllRoles && IsProduction(cfg) {
		return fmt.Errorf("AUTH_ALLOW_ALL_ROLES must not be enabled in production")
	}

	if cfg.JWT.Expiration <= 0 {
		return fmt.Errorf("JWT_EXPIRATION must be positive, got %d", cfg.JWT.Expiration)
	}

	return nil
}
