package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Store backends selectable through STORE_BACKEND.
const (
	StoreBackendPostgres = "postgres"
	StoreBackendMemory   = "memory"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for MinIO.
// An empty Endpoint disables content export.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Enabled reports whether an object store endpoint is configured.
func (m MinIOConfig) Enabled() bool {
	return m.Endpoint != ""
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost       string
	Port          string
	PublicBaseURL string
	StoreBackend  string
	Timezone      string

	ResolverTimeoutSec    int
	RandomContentMaxBytes int
	ExportURLExpirySec    int

	Database DatabaseConfig
	MinIO    MinIOConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	port := getEnv("PORT", "8080")
	return &AppConfig{
		AppHost:               getEnv("APP_HOST", "localhost:"+port),
		Port:                  port,
		PublicBaseURL:         strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:"+port), "/"),
		StoreBackend:          strings.ToLower(getEnv("STORE_BACKEND", StoreBackendPostgres)),
		Timezone:              getEnv("APP_TIMEZONE", "UTC"),
		ResolverTimeoutSec:    getEnvInt("RESOLVER_TIMEOUT_SEC", 10),
		RandomContentMaxBytes: getEnvInt("RANDOM_CONTENT_MAX_BYTES", 64<<20),
		ExportURLExpirySec:    getEnvInt("EXPORT_URL_EXPIRY_SEC", 900),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
	}
}

// Location resolves Timezone, falling back to UTC for unknown names.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ResolverTimeout is the upper bound for one asset resolution request.
func (c *AppConfig) ResolverTimeout() time.Duration {
	return time.Duration(c.ResolverTimeoutSec) * time.Second
}

// ExportURLExpiry is the validity of presigned export links.
func (c *AppConfig) ExportURLExpiry() time.Duration {
	return time.Duration(c.ExportURLExpirySec) * time.Second
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
