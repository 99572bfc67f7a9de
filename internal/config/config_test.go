package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresSecretAndDBURL(t *testing.T) {
	t.Setenv("ENV_FILE", "nonexistent.env")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")

	t.Setenv("JWT_SECRET", "s3cret")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_URL")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV_FILE", "nonexistent.env")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_URL", "postgres://localhost/brainly")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 7*24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, "development", cfg.Environment)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENV_FILE", "nonexistent.env")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_URL", "postgres://localhost/brainly")
	t.Setenv("PORT", "9999")
	t.Setenv("JWT_EXPIRY_HOURS", "24")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
}
