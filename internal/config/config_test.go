package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("STORAGE_DRIVER")
	os.Unsetenv("GCS_BUCKET_NAME")
	os.Unsetenv("HTTP_CLIENT_TIMEOUT")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DriverGCS, cfg.Storage.Driver)
	assert.Equal(t, "your-gcs-bucket-name", cfg.Storage.Bucket)
	assert.Equal(t, 30*time.Second, cfg.Weather.Timeout)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "minio")
	t.Setenv("GCS_BUCKET_NAME", "weather-archive")
	t.Setenv("MINIO_ENDPOINT", "localhost:9000")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("HTTP_CLIENT_TIMEOUT", "5s")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, DriverMinIO, cfg.Storage.Driver)
	assert.Equal(t, "weather-archive", cfg.Storage.Bucket)
	assert.Equal(t, "localhost:9000", cfg.Storage.MinIO.Endpoint)
	assert.True(t, cfg.Storage.MinIO.UseSSL)
	assert.Equal(t, 5*time.Second, cfg.Weather.Timeout)
}

func TestGetString(t *testing.T) {
	t.Setenv("TEST_STRING_VAR", "value")
	assert.Equal(t, "value", getString("TEST_STRING_VAR", "default"))
	assert.Equal(t, "default", getString("NON_EXISTENT_VAR", "default"))
}

func TestGetDuration(t *testing.T) {
	t.Setenv("TEST_DURATION_VAR", "45s")
	assert.Equal(t, 45*time.Second, getDuration("TEST_DURATION_VAR", time.Second))

	t.Setenv("TEST_DURATION_VAR", "invalid")
	assert.Equal(t, time.Second, getDuration("TEST_DURATION_VAR", time.Second))
}
