package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Settings SettingsConfig
	Snapshot SnapshotConfig
	DemoMode bool
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// SettingsConfig holds configuration for the settings store.
// Secret is an optional fernet key used to encrypt secret setting values at rest.
type SettingsConfig struct {
	Secret string
}

// SnapshotConfig holds configuration for the daily portfolio snapshot job.
type SnapshotConfig struct {
	Schedule string
	Enabled  bool
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	demoMode := getEnv("DEMO_MODE", "false") == "true"

	// Demo data lives in its own database so switching modes never touches real trades
	defaultDBPath := "./data/wheel_tracker.db"
	if demoMode {
		defaultDBPath = "./data/demo_data.db"
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", defaultDBPath),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Settings: SettingsConfig{
			Secret: getEnv("SETTINGS_SECRET", ""),
		},
		Snapshot: SnapshotConfig{
			Schedule: getEnv("SNAPSHOT_SCHEDULE", "0 22 * * *"),
			Enabled:  getEnv("SNAPSHOT_ENABLED", "true") == "true",
		},
		DemoMode: demoMode,
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
