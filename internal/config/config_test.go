package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("PUBLIC_BASE_URL", "https://api.example.com/")
	t.Setenv("STORE_BACKEND", "Memory")
	t.Setenv("RANDOM_CONTENT_MAX_BYTES", "1024")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, "https://api.example.com", cfg.PublicBaseURL)
	assert.Equal(t, StoreBackendMemory, cfg.StoreBackend)
	assert.Equal(t, 1024, cfg.RandomContentMaxBytes)
}

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "PUBLIC_BASE_URL", "STORE_BACKEND", "APP_TIMEZONE",
		"RESOLVER_TIMEOUT_SEC", "RANDOM_CONTENT_MAX_BYTES", "EXPORT_URL_EXPIRY_SEC", "MINIO_ENDPOINT"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://localhost:8080", cfg.PublicBaseURL)
	assert.Equal(t, StoreBackendPostgres, cfg.StoreBackend)
	assert.Equal(t, 64<<20, cfg.RandomContentMaxBytes)
	assert.Equal(t, 10*time.Second, cfg.ResolverTimeout())
	assert.Equal(t, 15*time.Minute, cfg.ExportURLExpiry())
	assert.Equal(t, time.UTC, cfg.Location())
	assert.False(t, cfg.MinIO.Enabled())
}

func TestLocation(t *testing.T) {
	cfg := &AppConfig{Timezone: "Asia/Jakarta"}
	assert.Equal(t, "Asia/Jakarta", cfg.Location().String())

	cfg.Timezone = "Not/AZone"
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
