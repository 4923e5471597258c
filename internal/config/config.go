package config // package config loads application configuration from environment variables

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The database block is optional: when DB_HOST is
// empty the server boots with the built-in demo catalog.
type Config struct {
	Env        string        // APP_ENV: dev, test or prod
	Port       string        // APP_PORT: HTTP port to listen on
	DBUser     string        // DB_USER
	DBPass     string        // DB_PASS (empty allowed)
	DBHost     string        // DB_HOST (empty disables MySQL)
	DBPort     string        // DB_PORT
	DBName     string        // DB_NAME
	JWTSecret  string        // JWT_SECRET: required outside dev
	AccessTTL  time.Duration // ACCESS_TOKEN_TTL: access token lifetime
	BcryptCost int           // BCRYPT_COST
	AMQPURL    string        // RABBITMQ_URL or AMQP_URL (empty disables events)
	LogLevel   string        // LOG_LEVEL: debug, info, warn, error
}

// devSecret signs tokens in dev when JWT_SECRET is unset.
const devSecret = "dev-only-secret"

// LoadDotEnv loads variables from the given files (default ".env") without
// overriding values already present in the environment.  A missing file is
// not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Load reads configuration from the environment, applies defaults and
// validates the result.
func Load() (Config, error) {
	cfg := Config{
		Env:        strings.ToLower(getenv("APP_ENV", "dev")),
		Port:       getenv("APP_PORT", "8080"),
		DBUser:     getenv("DB_USER", "root"),
		DBPass:     os.Getenv("DB_PASS"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     getenv("DB_PORT", "3306"),
		DBName:     getenv("DB_NAME", "cinema"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		AccessTTL:  envDur("ACCESS_TOKEN_TTL", 15*time.Minute),
		BcryptCost: envInt("BCRYPT_COST", 10),
		AMQPURL:    getenv("RABBITMQ_URL", os.Getenv("AMQP_URL")),
		LogLevel:   strings.ToLower(getenv("LOG_LEVEL", "info")),
	}
	if cfg.JWTSecret == "" {
		if cfg.Env != "dev" && cfg.Env != "test" {
			return Config{}, errors.New("missing required env var: JWT_SECRET")
		}
		cfg.JWTSecret = devSecret
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return Config{}, fmt.Errorf("invalid BCRYPT_COST %d: must be between 4 and 31", cfg.BcryptCost)
	}
	if cfg.AccessTTL <= 0 {
		return Config{}, fmt.Errorf("invalid ACCESS_TOKEN_TTL %s", cfg.AccessTTL)
	}
	return cfg, nil
}

// UseDatabase reports whether a MySQL catalog is configured.
func (c Config) UseDatabase() bool { return c.DBHost != "" }

// UseBroker reports whether ticket events should be published.
func (c Config) UseBroker() bool { return c.AMQPURL != "" }
