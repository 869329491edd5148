package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the complete configuration for the application
type AppConfig struct {
	Environment string          `mapstructure:"environment"`
	LogLevel    string          `mapstructure:"log_level"`
	ServiceName string          `mapstructure:"service_name"`
	Server      ServerConfig    `mapstructure:"server"`
	MongoDB     MongoConfig     `mapstructure:"mongodb"`
	AllowList   AllowListConfig `mapstructure:"allowlist"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ObsAddr         string        `mapstructure:"obs_addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type MongoConfig struct {
	URI                  string        `mapstructure:"uri"`
	Database             string        `mapstructure:"database"`
	GamesCollection      string        `mapstructure:"games_collection"`
	DevelopersCollection string        `mapstructure:"developers_collection"`
	ConnectTimeout       time.Duration `mapstructure:"connect_timeout"`
}

// AllowListConfig locates the approved-developers blob in object storage.
// Bucket and region are assembled into a gocloud s3 URL; AWS credentials come
// from the standard SDK chain (env vars or IAM).
type AllowListConfig struct {
	Bucket        string        `mapstructure:"bucket"`
	Region        string        `mapstructure:"region"`
	Endpoint      string        `mapstructure:"endpoint"`
	ObjectKey     string        `mapstructure:"object_key"`
	FetchTimeout  time.Duration `mapstructure:"fetch_timeout"`
	FetchAttempts int           `mapstructure:"fetch_attempts"`
}

// Load loads configuration from file and environment variables
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	// Default values
	v.SetDefault("environment", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.obs_addr", ":9090")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("mongodb.games_collection", "games")
	v.SetDefault("mongodb.developers_collection", "developers")
	v.SetDefault("mongodb.connect_timeout", 10*time.Second)
	v.SetDefault("allowlist.object_key", "approved-developers.json")
	v.SetDefault("allowlist.fetch_timeout", 10*time.Second)
	v.SetDefault("allowlist.fetch_attempts", 3)

	// Environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Config file
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	// Bind environment variables explicitly for nested structs to ensure Unmarshal picks them up
	v.BindEnv("service_name", "SERVICE_NAME")
	v.BindEnv("environment", "ENVIRONMENT")
	v.BindEnv("log_level", "LOG_LEVEL")
	v.BindEnv("server.addr", "SERVER_ADDR")
	v.BindEnv("server.obs_addr", "SERVER_OBS_ADDR")
	v.BindEnv("server.read_timeout", "SERVER_READ_TIMEOUT")
	v.BindEnv("server.write_timeout", "SERVER_WRITE_TIMEOUT")
	v.BindEnv("server.shutdown_timeout", "SERVER_SHUTDOWN_TIMEOUT")
	v.BindEnv("mongodb.uri", "MONGODB_URI")
	v.BindEnv("mongodb.database", "MONGODB_DATABASE")
	v.BindEnv("mongodb.games_collection", "MONGODB_GAMES_COLLECTION")
	v.BindEnv("mongodb.developers_collection", "MONGODB_DEVELOPERS_COLLECTION")
	v.BindEnv("mongodb.connect_timeout", "MONGODB_CONNECT_TIMEOUT")
	v.BindEnv("allowlist.bucket", "ALLOWLIST_BUCKET")
	v.BindEnv("allowlist.region", "ALLOWLIST_REGION")
	v.BindEnv("allowlist.endpoint", "ALLOWLIST_ENDPOINT")
	v.BindEnv("allowlist.object_key", "ALLOWLIST_OBJECT_KEY")
	v.BindEnv("allowlist.fetch_timeout", "ALLOWLIST_FETCH_TIMEOUT")
	v.BindEnv("allowlist.fetch_attempts", "ALLOWLIST_FETCH_ATTEMPTS")

	var config AppConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *AppConfig) Validate() error {
	if c.ServiceName == "" {
		return errors.New("service_name is required")
	}
	if c.MongoDB.URI == "" {
		return errors.New("mongodb.uri is required")
	}
	if c.MongoDB.Database == "" {
		return errors.New("mongodb.database is required")
	}
	if c.MongoDB.GamesCollection == "" {
		return errors.New("mongodb.games_collection is required")
	}
	if c.MongoDB.DevelopersCollection == "" {
		return errors.New("mongodb.developers_collection is required")
	}
	if c.AllowList.Bucket == "" {
		return errors.New("allowlist.bucket is required")
	}
	if c.AllowList.ObjectKey == "" {
		return errors.New("allowlist.object_key is required")
	}
	if c.AllowList.FetchAttempts < 1 {
		return errors.New("allowlist.fetch_attempts must be at least 1")
	}
	return nil
}
