package api

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	platformpostgres "github.com/Apurer/go-users-api/internal/platform/postgres"
)

// Config carries environment-driven settings for the API process. The
// database endpoint is never embedded in code; it arrives exclusively
// through POSTGRES_DSN.
type Config struct {
	Port              string
	Environment       string
	PostgresDSN       string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration
}

// LoadConfig reads environment variables, applies defaults, and validates
// basic constraints. A local .env file is honored when present. Pool
// defaults come from the platform postgres package so both layers agree
// on the baseline sizing.
func LoadConfig() (Config, error) {
	// Missing .env is the normal case outside local development.
	_ = godotenv.Load()

	pool := platformpostgres.DefaultPoolConfig()
	cfg := Config{
		Port:        envDefault("PORT", "8080"),
		Environment: envDefault("ENVIRONMENT", "local"),
		PostgresDSN: strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
	}
	var err error
	if cfg.DBMaxOpenConns, err = envPositiveInt("DB_MAX_OPEN_CONNS", pool.MaxOpenConns); err != nil {
		return Config{}, err
	}
	if cfg.DBMaxIdleConns, err = envPositiveInt("DB_MAX_IDLE_CONNS", pool.MaxIdleConns); err != nil {
		return Config{}, err
	}
	lifetimeMinutes, err := envPositiveInt("DB_CONN_MAX_LIFETIME_MINUTES", int(pool.ConnMaxLifetime/time.Minute))
	if err != nil {
		return Config{}, err
	}
	cfg.DBConnMaxLifetime = time.Duration(lifetimeMinutes) * time.Minute
	return cfg, nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func envPositiveInt(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer", key)
	}
	return value, nil
}
