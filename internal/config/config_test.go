package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/talentflow")
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, ":8080", cfg.GetServerAddr())
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "587", cfg.SMTP.Port)
}

func TestLoadRejectsBadEnv(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", "sandbox")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid environment")
}

func TestLoadRejectsShortJWTSecret(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_SECRET", "too-short")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestMustLoad(t *testing.T) {
	setRequiredEnv(t)
	cfg := MustLoad()
	assert.Equal(t, 8080, cfg.Port)

	t.Setenv("APP_ENV", "sandbox")
	assert.Panics(t, func() { MustLoad() })
}

func TestValidateRejectsBadPool(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_MAX_CONNS", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_MAX_CONNS")
}
