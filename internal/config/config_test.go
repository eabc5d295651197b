package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_NAME", "trainhub_test")
	t.Setenv("JWT_EXPIRY", "2h")
	t.Setenv("MAX_PAGE_SIZE", "not-a-number")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://admin.example.com, https://app.example.com")

	cfg := Load()

	assert.Equal(t, "trainhub_test", cfg.Database.Name)
	assert.Equal(t, 2*time.Hour, cfg.JWT.ExpiryPeriod)
	assert.Equal(t, 100, cfg.Pagination.MaxLimit)
	assert.Equal(t, 10, cfg.Pagination.DefaultLimit)
	assert.Equal(t, []string{"https://admin.example.com", "https://app.example.com"}, cfg.Server.AllowedOrigins)
	assert.Contains(t, cfg.DSN(), "dbname=trainhub_test")
}

func TestJWTSecret(t *testing.T) {
	t.Run("development falls back", func(t *testing.T) {
		t.Setenv("APP_ENV", "development")
		t.Setenv("JWT_SECRET", "")

		cfg := Load()
		assert.Equal(t, devJWTSecret, cfg.JWT.Secret)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("production requires a secret", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("JWT_SECRET", "")

		cfg := Load()
		assert.Empty(t, cfg.JWT.Secret)
		assert.ErrorIs(t, cfg.Validate(), ErrInsecureJWTSecret)
	})

	t.Run("production rejects the development secret", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("JWT_SECRET", devJWTSecret)

		assert.ErrorIs(t, Load().Validate(), ErrInsecureJWTSecret)
	})

	t.Run("production with a secret", func(t *testing.T) {
		t.Setenv("APP_ENV", "Production")
		t.Setenv("JWT_SECRET", "s3cr3t-from-vault")

		cfg := Load()
		assert.Equal(t, "production", cfg.Env)
		assert.NoError(t, cfg.Validate())
	})
}
