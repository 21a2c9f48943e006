package infra

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultPort                = "8080"
	defaultTokenTTL            = time.Hour
	defaultPruneSchedule       = "@hourly"
	defaultRevocationCacheSize = 4096
)

var ErrMissingSecretKey = errors.New("SECRET_KEY must be set")

type DBConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
}

// Config is built once at startup and handed to every component that
// needs it. Nothing outside this package reads the environment.
type Config struct {
	Env                 string
	Port                string
	SecretKey           []byte
	TokenTTL            time.Duration
	BcryptCost          int
	DB                  DBConfig
	TokenDBPath         string
	AutoMigrate         bool
	AdminEmail          string
	AdminPassword       string
	LogLevel            string
	PruneSchedule       string
	RevocationCacheSize int
	CORSAllowedOrigins  []string
}

func (c *Config) IsProd() bool {
	return c.Env == "prod"
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Env:       os.Getenv("ENV"),
		SecretKey: []byte(os.Getenv("SECRET_KEY")),
		DB: DBConfig{
			Host:     os.Getenv("DB_HOST"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			Port:     os.Getenv("DB_PORT"),
		},
		TokenDBPath:   os.Getenv("TOKEN_DB_PATH"),
		AutoMigrate:   os.Getenv("AUTO_MIGRATE") == "true",
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		LogLevel:      os.Getenv("LOG_LEVEL"),
	}

	if len(cfg.SecretKey) == 0 {
		return nil, ErrMissingSecretKey
	}

	cfg.Port = os.Getenv("PORT")
	if cfg.Port == "" {
		cfg.Port = os.Getenv("AWS_LWA_PORT")
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}

	cfg.TokenTTL = defaultTokenTTL
	if raw := os.Getenv("TOKEN_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL %q: %w", raw, err)
		}
		if ttl <= 0 {
			return nil, fmt.Errorf("invalid TOKEN_TTL %q: must be positive", raw)
		}
		cfg.TokenTTL = ttl
	}

	cfg.BcryptCost = bcrypt.DefaultCost
	if raw := os.Getenv("BCRYPT_COST"); raw != "" {
		cost, err := strconv.Atoi(raw)
		if err != nil || cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
			return nil, fmt.Errorf("invalid BCRYPT_COST %q: want %d..%d", raw, bcrypt.MinCost, bcrypt.MaxCost)
		}
		cfg.BcryptCost = cost
	}

	// An explicitly empty schedule disables pruning.
	cfg.PruneSchedule = defaultPruneSchedule
	if raw, ok := os.LookupEnv("REVOCATION_PRUNE_SCHEDULE"); ok {
		cfg.PruneSchedule = strings.TrimSpace(raw)
	}
	if cfg.PruneSchedule != "" {
		if _, err := cron.ParseStandard(cfg.PruneSchedule); err != nil {
			return nil, fmt.Errorf("invalid REVOCATION_PRUNE_SCHEDULE %q: %w", cfg.PruneSchedule, err)
		}
	}

	cfg.RevocationCacheSize = defaultRevocationCacheSize
	if raw := os.Getenv("REVOCATION_CACHE_SIZE"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 0 {
			return nil, fmt.Errorf("invalid REVOCATION_CACHE_SIZE %q", raw)
		}
		cfg.RevocationCacheSize = size
	}

	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		for _, origin := range strings.Split(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
			}
		}
	}

	return cfg, nil
}
