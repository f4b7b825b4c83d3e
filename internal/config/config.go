package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	StoreMemory = "memory"
	StoreMongo  = "mongo"
)

type Config struct {
	Port            string
	Environment     string
	LogLevel        string
	StoreDriver     string
	MongoDBURI      string
	MongoDBPassword string
	MongoDBDatabase string
	RedisURL        string
	DefaultTimezone string
	CatalogLocation string
	SeedSampleData  bool
	CORSOrigins     []string
}

func LoadConfig() (*Config, error) {
	seed, err := strconv.ParseBool(getEnvWithDefault("SEED_SAMPLE_DATA", "true"))
	if err != nil {
		return nil, fmt.Errorf("SEED_SAMPLE_DATA must be a boolean: %w", err)
	}

	cfg := &Config{
		Port:            getEnvWithDefault("PORT", "8080"),
		Environment:     getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:        getEnvWithDefault("LOG_LEVEL", "info"),
		StoreDriver:     strings.ToLower(getEnvWithDefault("STORE_DRIVER", StoreMemory)),
		MongoDBURI:      os.Getenv("MONGODB_URI"),
		MongoDBPassword: os.Getenv("MONGODB_PASSWORD"),
		MongoDBDatabase: getEnvWithDefault("MONGODB_DATABASE", "eventhub"),
		RedisURL:        os.Getenv("REDIS_URL"),
		DefaultTimezone: getEnvWithDefault("DEFAULT_TIMEZONE", "EST"),
		CatalogLocation: getEnvWithDefault("CATALOG_LOCATION", "UTC"),
		SeedSampleData:  seed,
		CORSOrigins:     splitList(getEnvWithDefault("CORS_ORIGINS", "http://localhost:3000")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks driver-specific requirements.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StoreMemory:
	case StoreMongo:
		if c.MongoDBURI == "" {
			return fmt.Errorf("MONGODB_URI is required when STORE_DRIVER=mongo")
		}
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q (expected memory or mongo)", c.StoreDriver)
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported LOG_LEVEL %q", c.LogLevel)
	}
	return nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) UsesRedis() bool {
	return c.RedisURL != ""
}
