package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Record sources the snapshot can be loaded from.
const (
	SourceEmbedded = "embedded"
	SourcePostgres = "postgres"
	SourceMongo    = "mongo"
)

type Config struct {
	Port     string
	Env      string
	LogLevel string

	RecordSource    string
	PostgresConnStr string
	MongoURI        string
	MongoDatabase   string

	FailureRate   float64
	LatencyScale  float64
	CallTimeout   time.Duration
	RandomSeed    uint64
	SimulatorSeed uint64
	FanoutLimit   int

	CORSAllowOrigins []string
}

// Load reads the configuration from the environment, after merging a .env file when present.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		Env:              getEnv("ENV", "development"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		RecordSource:     strings.ToLower(getEnv("RECORD_SOURCE", SourceEmbedded)),
		PostgresConnStr:  getEnv("POSTGRES_CONN_STR", ""),
		MongoURI:         getEnv("MONGO_URI", ""),
		MongoDatabase:    getEnv("MONGO_DATABASE", "dashboard"),
		CORSAllowOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),
	}

	var err error
	if cfg.FailureRate, err = parseFloat("FAILURE_RATE", 0.005); err != nil {
		return nil, err
	}
	if cfg.LatencyScale, err = parseFloat("LATENCY_SCALE", 1); err != nil {
		return nil, err
	}
	if cfg.CallTimeout, err = parseDuration("CALL_TIMEOUT", 2*time.Second); err != nil {
		return nil, err
	}
	if cfg.RandomSeed, err = parseUint("RANDOM_SEED", 42); err != nil {
		return nil, err
	}
	if cfg.SimulatorSeed, err = parseUint("SIMULATOR_SEED", 0); err != nil {
		return nil, err
	}
	fanout, err := parseUint("FANOUT_LIMIT", 8)
	if err != nil {
		return nil, err
	}
	cfg.FanoutLimit = int(fanout)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field requirements.
func (c *Config) Validate() error {
	switch c.RecordSource {
	case SourceEmbedded:
	case SourcePostgres:
		if c.PostgresConnStr == "" {
			return fmt.Errorf("POSTGRES_CONN_STR environment variable not set")
		}
	case SourceMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGO_URI environment variable not set")
		}
	default:
		return fmt.Errorf("RECORD_SOURCE must be one of embedded, postgres, mongo; got %q", c.RecordSource)
	}
	if c.FailureRate < 0 || c.FailureRate > 1 {
		return fmt.Errorf("FAILURE_RATE must be within [0, 1]; got %v", c.FailureRate)
	}
	if c.LatencyScale < 0 {
		return fmt.Errorf("LATENCY_SCALE must not be negative; got %v", c.LatencyScale)
	}
	return nil
}

// IsDevelopment reports whether ENV selects development defaults.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseFloat(key string, defaultValue float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func parseUint(key string, defaultValue uint64) (uint64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func parseDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
