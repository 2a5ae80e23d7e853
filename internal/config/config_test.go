package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "LOG_LEVEL", "SERVER_PORT", "DATABASE_URL",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS", "CORS_ORIGIN",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "database.db", cfg.DBUrl)
	assert.Equal(t, 10, cfg.MaxOpenConns)
	assert.Equal(t, 5, cfg.MaxIdleConns)
	assert.Equal(t, "http://localhost:5173", cfg.CORSOrigin)
	assert.Equal(t, ":8000", cfg.Addr())
	assert.False(t, cfg.IsDevelopment())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/barbers")
	t.Setenv("DB_MAX_OPEN_CONNS", "3")
	t.Setenv("DB_MAX_IDLE_CONNS", "not-a-number")
	t.Setenv("CORS_ORIGIN", "https://shop.example.com")

	cfg := Load()

	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "postgres://u:p@localhost:5432/barbers", cfg.DBUrl)
	assert.Equal(t, 3, cfg.MaxOpenConns)
	assert.Equal(t, 5, cfg.MaxIdleConns, "invalid ints fall back to the default")
	assert.Equal(t, "https://shop.example.com", cfg.CORSOrigin)
}
