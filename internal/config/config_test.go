package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENVIRONMENT", "LOG_LEVEL", "STORE_DRIVER", "MONGODB_URI", "REDIS_URL", "DEFAULT_TIMEZONE", "CATALOG_LOCATION", "SEED_SAMPLE_DATA", "CORS_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StoreMemory, cfg.StoreDriver)
	assert.Equal(t, "EST", cfg.DefaultTimezone)
	assert.Equal(t, "UTC", cfg.CatalogLocation)
	assert.True(t, cfg.SeedSampleData)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.UsesRedis())
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
}

func TestLoadConfig_MongoRequiresURI(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mongo")
	t.Setenv("MONGODB_URI", "")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "MONGODB_URI")
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Mongo")
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("SEED_SAMPLE_DATA", "false")
	t.Setenv("CORS_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, StoreMongo, cfg.StoreDriver)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.SeedSampleData)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestValidate_RejectsUnknownValues(t *testing.T) {
	cfg := &Config{StoreDriver: "postgres", LogLevel: "info"}
	assert.Error(t, cfg.Validate())

	cfg = &Config{StoreDriver: StoreMemory, LogLevel: "verbose"}
	assert.Error(t, cfg.Validate())
}

func TestLoadConfig_BadSeedFlag(t *testing.T) {
	t.Setenv("SEED_SAMPLE_DATA", "maybe")
	_, err := LoadConfig()
	assert.Error(t, err)
}
