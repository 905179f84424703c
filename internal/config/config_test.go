package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	require.NotNil(t, cfg)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "3306", cfg.Database.Port)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 24, cfg.Auth.TokenTTLHours)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9191")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_MAX_OPEN_CONNS", "50")
	t.Setenv("REDIS_ADDR", "cache.internal:6380")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, "9191", cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 50, cfg.Database.MaxOpenConns)
	assert.Equal(t, "cache.internal:6380", cfg.Redis.Addr)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadIgnoresUnparsableInts(t *testing.T) {
	t.Setenv("DB_MAX_IDLE_CONNS", "lots")

	cfg := Load()
	assert.Equal(t, 5, cfg.Database.MaxIdleConns)
}

func TestDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host:         "localhost",
		Port:         "3306",
		Username:     "gochat_user",
		Password:     "pw",
		DatabaseName: "gochat_db",
	}}

	assert.Equal(t,
		"gochat_user:pw@tcp(localhost:3306)/gochat_db?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.DSN())
}

func TestDSNFallsBackToLocalhost(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Username:     "u",
		DatabaseName: "d",
	}}

	assert.Contains(t, cfg.DSN(), "@tcp(localhost:3306)/d")
}
