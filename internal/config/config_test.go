package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServerConfigDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/resumes")
	t.Setenv("PORT", "")
	t.Setenv("EXPORT_TIMEOUT", "")

	cfg, err := NewServerConfig()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "postgres://localhost/resumes", cfg.DatabaseURL)
	assert.Equal(t, 60*time.Second, cfg.ExportTimeout)
}

func TestNewServerConfigOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/resumes")
	t.Setenv("PORT", "9090")
	t.Setenv("EXPORT_TIMEOUT", "90s")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("AWS_BUCKET", "resume-assets")

	cfg, err := NewServerConfig()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 90*time.Second, cfg.ExportTimeout)
	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
	assert.Equal(t, "resume-assets", cfg.AWSBucket)
}

func TestNewServerConfigMissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := NewServerConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestNewServerConfigInvalidValues(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/resumes")

	t.Setenv("PORT", "not-a-number")
	_, err := NewServerConfig()
	assert.Error(t, err)

	t.Setenv("PORT", "8080")
	t.Setenv("EXPORT_TIMEOUT", "soon")
	_, err = NewServerConfig()
	assert.Error(t, err)
}

func TestNewJWTConfig(t *testing.T) {
	t.Setenv("JWT_SECRET", "sekrit")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, "sekrit", cfg.Secret)
	assert.Equal(t, 24, cfg.ExpirationHours)
}

func TestNewJWTConfigMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := NewJWTConfig()
	assert.Error(t, err)
}

func TestNewJWTConfigInvalidExpiration(t *testing.T) {
	t.Setenv("JWT_SECRET", "sekrit")

	t.Setenv("JWT_EXPIRATION_HOURS", "zero")
	_, err := NewJWTConfig()
	assert.Error(t, err)

	t.Setenv("JWT_EXPIRATION_HOURS", "0")
	_, err = NewJWTConfig()
	assert.Error(t, err)
}
