// internal/config/config.go
//
// Environment-driven configuration for the server.

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application.
type Config struct {
	Host  string
	Port  string
	Redis RedisConfig

	// StoreBackend selects the game-state store: "memory" or "redis".
	StoreBackend string

	// StateTTL bounds how long an idle instance's state lives in Redis
	// (0 = no expiration).
	StateTTL time.Duration

	// MatchPolicy is "exact" or "fuzzy"; FuzzyThreshold applies to fuzzy.
	MatchPolicy    string
	FuzzyThreshold float64

	// DBPath is the SQLite file for users and solve history.
	DBPath string
}

// RedisConfig holds Redis connection configuration.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB value: %w", err)
	}

	ttlSeconds, err := strconv.Atoi(getEnv("STATE_TTL_SECONDS", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid STATE_TTL_SECONDS value: %w", err)
	}

	threshold, err := strconv.ParseFloat(getEnv("FUZZY_THRESHOLD", "0.8"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid FUZZY_THRESHOLD value: %w", err)
	}

	return &Config{
		Host: getEnv("HOST", "0.0.0.0"),
		Port: getEnv("PORT", "5175"),
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		StoreBackend:   getEnv("STORE_BACKEND", "memory"),
		StateTTL:       time.Duration(ttlSeconds) * time.Second,
		MatchPolicy:    getEnv("MATCH_POLICY", "exact"),
		FuzzyThreshold: threshold,
		DBPath:         getEnv("DB_PATH", "./data/app.db"),
	}, nil
}

// Address returns the full listen address (host:port).
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
