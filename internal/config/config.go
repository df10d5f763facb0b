package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds service configuration.
type Config struct {
	DatabaseURL   string
	MigrationsDir string

	TelegramToken string
	OwnerIDs      []int64

	OpsServerAddr string

	PollTimeout         time.Duration
	SweepInterval       time.Duration
	SweepBatch          int
	MaxDuplicateOptions int
	RecentLogLimit      int

	OracleBaseURL string
	OracleAPIKey  string
	OracleModel   string
	OracleTimeout time.Duration

	LogLevel string
	LogFile  string
}

// Load reads configuration from environment.
func Load() (*Config, error) {
	token := os.Getenv("TELEGRAM_TOKEN")
	if token == "" {
		return nil, errors.New("TELEGRAM_TOKEN is required")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		user := getenv("POSTGRES_USER", "codevote")
		pass := getenv("POSTGRES_PASSWORD", "codevote_pass")
		db := getenv("POSTGRES_DB", "codevote")
		host := getenv("POSTGRES_HOST", "localhost")
		port := getenv("POSTGRES_PORT", "5432")
		sslmode := getenv("DATABASE_SSLMODE", "disable")
		dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", user, pass, host, port, db, sslmode)
	}

	ownerIDs, err := parseIDList(os.Getenv("OWNER_IDS"))
	if err != nil {
		return nil, fmt.Errorf("OWNER_IDS: %w", err)
	}

	return &Config{
		DatabaseURL:         dsn,
		MigrationsDir:       getenv("MIGRATIONS_DIR", "internal/migrations"),
		TelegramToken:       token,
		OwnerIDs:            ownerIDs,
		OpsServerAddr:       getenv("OPS_SERVER_ADDR", "0.0.0.0:8080"),
		PollTimeout:         parseDuration(getenv("POLL_TIMEOUT", "10m"), 10*time.Minute),
		SweepInterval:       parseDuration(getenv("SWEEP_INTERVAL", "10s"), 10*time.Second),
		SweepBatch:          parseInt(getenv("SWEEP_BATCH", "50"), 50),
		MaxDuplicateOptions: parseInt(getenv("POLL_MAX_DUPLICATE_OPTIONS", "2"), 2),
		RecentLogLimit:      parseInt(getenv("RECENT_LOG_LIMIT", "50"), 50),
		OracleBaseURL:       os.Getenv("ORACLE_BASE_URL"),
		OracleAPIKey:        os.Getenv("ORACLE_API_KEY"),
		OracleModel:         getenv("ORACLE_MODEL", "gpt-4o-mini"),
		OracleTimeout:       parseDuration(getenv("ORACLE_TIMEOUT", "60s"), 60*time.Second),
		LogLevel:            getenv("LOG_LEVEL", "info"),
		LogFile:             getenv("LOG_FILE", "app.log"),
	}, nil
}

func parseIDList(val string) ([]int64, error) {
	if strings.TrimSpace(val) == "" {
		return nil, nil
	}
	parts := strings.Split(val, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q", p)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func getenv(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val
}

func parseDuration(val string, def time.Duration) time.Duration {
	if val == "" {
		return def
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return def
	}
	return d
}

func parseInt(val string, def int) int {
	if val == "" {
		return def
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return def
	}
	return n
}
