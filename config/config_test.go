package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("CITAS_PORT", "")
	t.Setenv("USUARIOS_PORT", "")
	t.Setenv("DB_SSLMODE", "")
	t.Setenv("SESSION_TTL", "")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "")

	cfg := Load()

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "8000", cfg.CitasPort)
	assert.Equal(t, "8001", cfg.UsuariosPort)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 200, cfg.RateLimit)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("CITAS_PORT", "9000")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "50")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg := Load()

	assert.Equal(t, "9000", cfg.CitasPort)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 50, cfg.RateLimit)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("SESSION_TTL", "soon")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "many")

	cfg := Load()

	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 200, cfg.RateLimit)
}

func TestValidate(t *testing.T) {
	cfg := Config{
		DBHost: "localhost", DBPort: "5432", DBUser: "postgres",
		DBPassword: "secret", DBName: "citas", RateLimit: 10,
		SessionTTL: time.Hour,
	}
	require.NoError(t, cfg.Validate())

	missing := cfg
	missing.DBPassword = ""
	assert.Error(t, missing.Validate())

	noLimit := cfg
	noLimit.RateLimit = 0
	assert.Error(t, noLimit.Validate())

	for _, ttl := range []time.Duration{0, -time.Minute} {
		badTTL := cfg
		badTTL.SessionTTL = ttl
		err := badTTL.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SESSION_TTL")
	}
}

func TestDSN(t *testing.T) {
	cfg := Config{
		DBHost: "db", DBPort: "5432", DBUser: "u",
		DBPassword: "p", DBName: "citas", DBSSLMode: "disable",
	}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=citas sslmode=disable", cfg.DSN())
}
