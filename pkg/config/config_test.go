package config

import (
	"os"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() AppConfig {
	return AppConfig{
		ServiceName: "videogame-api",
		MongoDB: MongoConfig{
			URI:                  "mongodb://localhost:27017",
			Database:             "videogames",
			GamesCollection:      "games",
			DevelopersCollection: "developers",
		},
		AllowList: AllowListConfig{
			Bucket:        "approved-developers",
			ObjectKey:     "approved-developers.json",
			FetchAttempts: 3,
		},
	}
}

func TestConfigValidation(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("valid config passes validation", prop.ForAll(
		func(serviceName, database, bucket, key string) bool {
			cfg := validConfig()
			cfg.ServiceName = serviceName
			cfg.MongoDB.Database = database
			cfg.AllowList.Bucket = bucket
			cfg.AllowList.ObjectKey = key
			return cfg.Validate() == nil
		},
		gen.Identifier(),
		gen.Identifier(),
		gen.Identifier(),
		gen.Identifier(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestValidateRejectsMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AppConfig)
	}{
		{"missing service name", func(c *AppConfig) { c.ServiceName = "" }},
		{"missing mongo uri", func(c *AppConfig) { c.MongoDB.URI = "" }},
		{"missing database", func(c *AppConfig) { c.MongoDB.Database = "" }},
		{"missing games collection", func(c *AppConfig) { c.MongoDB.GamesCollection = "" }},
		{"missing developers collection", func(c *AppConfig) { c.MongoDB.DevelopersCollection = "" }},
		{"missing bucket", func(c *AppConfig) { c.AllowList.Bucket = "" }},
		{"missing object key", func(c *AppConfig) { c.AllowList.ObjectKey = "" }},
		{"zero fetch attempts", func(c *AppConfig) { c.AllowList.FetchAttempts = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("SERVICE_NAME", "test-service")
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("MONGODB_DATABASE", "testdb")
	t.Setenv("ALLOWLIST_BUCKET", "test-bucket")
	t.Setenv("ALLOWLIST_REGION", "eu-west-2")

	cfg, err := Load("")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "test-service", cfg.ServiceName)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoDB.URI)
	assert.Equal(t, "testdb", cfg.MongoDB.Database)
	assert.Equal(t, "test-bucket", cfg.AllowList.Bucket)
	assert.Equal(t, "eu-west-2", cfg.AllowList.Region)

	// Defaults
	assert.Equal(t, "games", cfg.MongoDB.GamesCollection)
	assert.Equal(t, "developers", cfg.MongoDB.DevelopersCollection)
	assert.Equal(t, "approved-developers.json", cfg.AllowList.ObjectKey)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, ":9090", cfg.Server.ObsAddr)
	assert.Equal(t, 10*time.Second, cfg.AllowList.FetchTimeout)
	assert.Equal(t, 3, cfg.AllowList.FetchAttempts)

	// Test invalid config loading
	os.Unsetenv("SERVICE_NAME")
	_, err = Load("")
	assert.Error(t, err)
}
