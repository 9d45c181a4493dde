// Package config provides environment-based configuration for the resume
// builder server and CLI.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// ServerConfig holds everything the HTTP server needs to start.
type ServerConfig struct {
	Port        int
	DatabaseURL string

	// AI assist
	GeminiAPIKey string
	GeminiModel  string

	// Avatar uploads
	AWSRegion string
	AWSBucket string

	// Raster export
	ChromePath    string
	ExportTimeout time.Duration
}

// NewServerConfig reads server configuration from environment variables.
// DATABASE_URL is required; everything else has a default or disables its
// feature when unset.
func NewServerConfig() (*ServerConfig, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required but not set")
	}

	port, err := getEnvInt("PORT", 8080)
	if err != nil {
		return nil, err
	}
	exportTimeout, err := getEnvDuration("EXPORT_TIMEOUT", 60*time.Second)
	if err != nil {
		return nil, err
	}

	return &ServerConfig{
		Port:          port,
		DatabaseURL:   databaseURL,
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   os.Getenv("GEMINI_MODEL"),
		AWSRegion:     os.Getenv("AWS_REGION"),
		AWSBucket:     os.Getenv("AWS_BUCKET"),
		ChromePath:    os.Getenv("CHROME_PATH"),
		ExportTimeout: exportTimeout,
	}, nil
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return parsed, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return parsed, nil
}
