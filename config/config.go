// config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Storage     StorageConfig
	Log         LogConfig
	Seed        bool
}

type StorageConfig struct {
	DataDir string
	DBFile  string
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Storage: StorageConfig{
			DataDir: getEnv("DRAFTDESK_DATA_DIR", ".draftdesk"),
			DBFile:  getEnv("DRAFTDESK_DB_FILE", "draftdesk.db"),
		},
		Log: LogConfig{
			Level: getEnv("DRAFTDESK_LOG_LEVEL", "info"),
		},
		Seed: getEnvAsBool("DRAFTDESK_SEED", true),
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.Storage.DataDir == "" {
		return fmt.Errorf("data directory must not be empty")
	}

	if c.Storage.DBFile == "" {
		return fmt.Errorf("database file name must not be empty")
	}

	return nil
}

// DatabasePath is the full path of the snapshot database file.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.Storage.DataDir, c.Storage.DBFile)
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(strings.ToLower(value)); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
