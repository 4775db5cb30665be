package config

import (
	"time"

	"github.com/spf13/viper"
)

// Storage driver names accepted by STORAGE_DRIVER.
const (
	DriverGCS   = "gcs"
	DriverMinIO = "minio"
)

// MinIOConfig holds connection settings for the S3-compatible driver.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

// StorageConfig selects and configures the object storage backend. Bucket is
// shared by both drivers; CredentialsFile applies to GCS only (application
// default credentials are used when it is empty).
type StorageConfig struct {
	Driver          string
	Bucket          string
	CredentialsFile string
	MinIO           MinIOConfig
}

// WeatherConfig holds settings for the outbound Open-Meteo client.
type WeatherConfig struct {
	Timeout time.Duration
}

// AppConfig is the centralized configuration struct for the application,
// populated once at startup from environment variables and immutable after.
type AppConfig struct {
	Port    string
	Storage StorageConfig
	Weather WeatherConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// Real environment variables take precedence over defaults.
func Load() *AppConfig {
	viper.AutomaticEnv()

	return &AppConfig{
		Port: getString("PORT", "8080"),
		Storage: StorageConfig{
			Driver:          getString("STORAGE_DRIVER", DriverGCS),
			Bucket:          getString("GCS_BUCKET_NAME", "your-gcs-bucket-name"),
			CredentialsFile: viper.GetString("GCS_CREDENTIALS_FILE"),
			MinIO: MinIOConfig{
				Endpoint:  viper.GetString("MINIO_ENDPOINT"),
				AccessKey: viper.GetString("MINIO_ACCESS_KEY"),
				SecretKey: viper.GetString("MINIO_SECRET_KEY"),
				UseSSL:    viper.GetBool("MINIO_USE_SSL"),
			},
		},
		Weather: WeatherConfig{
			Timeout: getDuration("HTTP_CLIENT_TIMEOUT", 30*time.Second),
		},
	}
}

func getString(key, def string) string {
	if v := viper.GetString(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := viper.GetDuration(key); v > 0 {
		return v
	}
	return def
}
