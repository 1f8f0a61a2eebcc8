package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the full application configuration, populated from
// environment variables.
type Config struct {
	App   AppConfig
	Mongo MongoConfig
	JWT   JWTConfig
	MinIO MinIOConfig
	CORS  CORSConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type MongoConfig struct {
	URI      string
	Database string
	// Collection names, overridable per deployment
	Properties  string
	Blogs       string
	Admins      string
	Contacts    string
	Callbacks   string
	Newsletter  string
	Leads       string
	ConnTimeout int // seconds
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type CORSConfig struct {
	AllowedOrigin string
}

// Load reads config from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Real Estate API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Mongo: MongoConfig{
			URI:         getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Database:    getEnv("MONGODB_DATABASE", "realestate"),
			Properties:  getEnv("MONGODB_COLLECTION_PROPERTIES", "properties"),
			Blogs:       getEnv("MONGODB_COLLECTION_BLOGS", "blogs"),
			Admins:      getEnv("MONGODB_COLLECTION_ADMINS", "admins"),
			Contacts:    getEnv("MONGODB_COLLECTION_CONTACTS", "contacts"),
			Callbacks:   getEnv("MONGODB_COLLECTION_CALLBACKS", "callbacks"),
			Newsletter:  getEnv("MONGODB_COLLECTION_NEWSLETTER", "newsletter"),
			Leads:       getEnv("MONGODB_COLLECTION_LEADS", "leads"),
			ConnTimeout: getEnvInt("MONGODB_CONN_TIMEOUT", 30),
		},
		JWT: JWTConfig{
			Secret:      getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
			ExpiryHours: getEnvInt("JWT_EXPIRY_HOURS", 720), // 30 days
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MINIO_BUCKET", "realestate"),
			UseSSL:    getEnv("MINIO_USE_SSL", "false") == "true",
		},
		CORS: CORSConfig{
			AllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "http://localhost:5173"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that config is usable
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.JWT.Secret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if c.Mongo.URI == "" {
		return fmt.Errorf("MONGODB_URI must not be empty")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
