package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultAppName         = "VietPass"
	defaultAppEnv          = "development"
	defaultPort            = "8080"
	defaultLogLevel        = "info"
	defaultShutdownDelay   = 10 * time.Second
	defaultIdempotencyTTL  = 24 * time.Hour
	defaultSessionTTL      = 24 * time.Hour
	defaultPassValidity    = 30 * 24 * time.Hour
	defaultRetryInterval   = time.Second
	defaultPassPrice       = 1900
	defaultPassCurrency    = "usd"
	defaultContractAddress = "0x8a2d4c6e1f9b3a5d7c0e2f4a6b8d0c1e3f5a7b9d"
	defaultNetwork         = "u2u-nebulas"
	shutdownSecondsEnvVar  = "SHUTDOWN_TIMEOUT_SECONDS"
	shutdownDurationEnvVar = "SHUTDOWN_TIMEOUT"
	idemTTLSecondsEnvVar   = "IDEMPOTENCY_TTL_SECONDS"
	idemTTLDurEnvVar       = "IDEMPOTENCY_TTL"
)

// Config captures application runtime configuration loaded from environment variables.
type Config struct {
	AppName        string
	AppEnv         string
	Port           string
	LogLevel       string
	DatabaseURL    string
	RedisURL       string
	ShutdownPeriod time.Duration
	IdempotencyTTL time.Duration

	// SessionSecret signs session tokens; SessionTTL bounds how long a
	// signed token stays acceptable.
	SessionSecret string
	SessionTTL    time.Duration

	// Pass pricing and issuance parameters. PassPrice is in minor units of
	// PassCurrency.
	PassPrice       int64
	PassCurrency    string
	PassValidity    time.Duration
	ContractAddress string
	Network         string

	// LoginRetryInterval paces retries while the identity provider is still
	// warming up. LoginRetryMaxAttempts of zero means retry until the caller
	// cancels.
	LoginRetryInterval    time.Duration
	LoginRetryMaxAttempts int
}

// Load reads configuration values from the environment and populates a Config instance.
func Load() (Config, error) {
	cfg := Config{
		AppName:               getEnv("APP_NAME", defaultAppName),
		AppEnv:                getEnv("APP_ENV", defaultAppEnv),
		Port:                  getEnv("PORT", defaultPort),
		LogLevel:              strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		RedisURL:              os.Getenv("REDIS_URL"),
		ShutdownPeriod:        defaultShutdownDelay,
		IdempotencyTTL:        defaultIdempotencyTTL,
		SessionSecret:         os.Getenv("SESSION_SECRET"),
		SessionTTL:            defaultSessionTTL,
		PassPrice:             defaultPassPrice,
		PassCurrency:          getEnv("PASS_CURRENCY", defaultPassCurrency),
		PassValidity:          defaultPassValidity,
		ContractAddress:       getEnv("PASS_CONTRACT_ADDRESS", defaultContractAddress),
		Network:               getEnv("PASS_NETWORK", defaultNetwork),
		LoginRetryInterval:    defaultRetryInterval,
		LoginRetryMaxAttempts: 0,
	}

	if v := os.Getenv(shutdownSecondsEnvVar); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", shutdownSecondsEnvVar, err)
		}
		cfg.ShutdownPeriod = time.Duration(seconds) * time.Second
	} else if v := os.Getenv(shutdownDurationEnvVar); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", shutdownDurationEnvVar, err)
		}
		cfg.ShutdownPeriod = d
	}

	if v := os.Getenv(idemTTLSecondsEnvVar); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", idemTTLSecondsEnvVar, err)
		}
		cfg.IdempotencyTTL = time.Duration(seconds) * time.Second
	} else if v := os.Getenv(idemTTLDurEnvVar); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", idemTTLDurEnvVar, err)
		}
		cfg.IdempotencyTTL = d
	}

	if v := os.Getenv("SESSION_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SESSION_TTL: %w", err)
		}
		cfg.SessionTTL = d
	}

	if v := os.Getenv("PASS_PRICE_MINOR"); v != "" {
		price, err := strconv.ParseInt(v, 10, 64)
		if err != nil || price <= 0 {
			return Config{}, fmt.Errorf("invalid PASS_PRICE_MINOR: %q", v)
		}
		cfg.PassPrice = price
	}

	if v := os.Getenv("PASS_VALIDITY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PASS_VALIDITY: %w", err)
		}
		cfg.PassValidity = d
	}

	if v := os.Getenv("LOGIN_RETRY_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid LOGIN_RETRY_INTERVAL: %w", err)
		}
		cfg.LoginRetryInterval = d
	}

	if v := os.Getenv("LOGIN_RETRY_MAX_ATTEMPTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("invalid LOGIN_RETRY_MAX_ATTEMPTS: %q", v)
		}
		cfg.LoginRetryMaxAttempts = n
	}

	if cfg.SessionSecret == "" {
		if cfg.IsDev() {
			cfg.SessionSecret = "dev-session-secret"
		} else {
			return Config{}, fmt.Errorf("SESSION_SECRET must be set when APP_ENV=%s", cfg.AppEnv)
		}
	}

	if !cfg.IsDev() {
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("DATABASE_URL must be set when APP_ENV=%s", cfg.AppEnv)
		}
		if cfg.RedisURL == "" {
			return Config{}, fmt.Errorf("REDIS_URL must be set when APP_ENV=%s", cfg.AppEnv)
		}
	}

	return cfg, nil
}

// IsDev reports whether the app runs in a development-like environment where
// in-memory fallbacks are acceptable.
func (c Config) IsDev() bool {
	switch strings.ToLower(c.AppEnv) {
	case "dev", "development", "local":
		return true
	default:
		return false
	}
}

// Address returns the listen address in the format Fiber expects.
func (c Config) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
