package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 100, cfg.Calculator.DefaultUnitWeightGrams)
		assert.Equal(t, 5*time.Minute, cfg.Calculator.CatalogCacheTTL)
		assert.False(t, cfg.Auth.Enabled)
		assert.Empty(t, cfg.Auth.JWTSecretKey)
		assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
		assert.Equal(t, "shipment_service", cfg.Database.DatabaseName)
		assert.False(t, cfg.Database.Enabled)
		assert.Equal(t, 5, cfg.Database.CircuitBreakerFailureThreshold)
	})

	t.Run("loads values from environment", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("PORT", "9090")
		_ = os.Setenv("RATE_LIMIT", "50")
		_ = os.Setenv("RATE_WINDOW", "30s")
		_ = os.Setenv("DEFAULT_UNIT_WEIGHT_GRAMS", "120")
		_ = os.Setenv("CATALOG_CACHE_TTL", "10m")
		_ = os.Setenv("AUTH_ENABLED", "true")
		_ = os.Setenv("API_KEYS", "key1,key2")
		_ = os.Setenv("JWT_SECRET_KEY", "secret")
		_ = os.Setenv("MONGODB_ENABLED", "true")
		_ = os.Setenv("MONGODB_DATABASE", "munchbox")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 50, cfg.Server.RateLimit)
		assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
		assert.Equal(t, 120, cfg.Calculator.DefaultUnitWeightGrams)
		assert.Equal(t, 10*time.Minute, cfg.Calculator.CatalogCacheTTL)
		assert.True(t, cfg.Auth.Enabled)
		assert.True(t, cfg.Auth.APIKeys["key1"])
		assert.True(t, cfg.Auth.APIKeys["key2"])
		assert.Equal(t, "secret", cfg.Auth.JWTSecretKey)
		assert.True(t, cfg.Database.Enabled)
		assert.Equal(t, "munchbox", cfg.Database.DatabaseName)
	})

	t.Run("handles invalid values gracefully", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("RATE_LIMIT", "invalid")
		_ = os.Setenv("AUTH_ENABLED", "invalid")
		_ = os.Setenv("RATE_WINDOW", "invalid")
		_ = os.Setenv("DEFAULT_UNIT_WEIGHT_GRAMS", "invalid")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.False(t, cfg.Auth.Enabled)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 100, cfg.Calculator.DefaultUnitWeightGrams)
	})

	t.Run("parses API keys with whitespace", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("API_KEYS", " key1 , key2 , key3 ")
		defer os.Clearenv()

		cfg := Load()

		assert.True(t, cfg.Auth.APIKeys["key1"])
		assert.True(t, cfg.Auth.APIKeys["key2"])
		assert.True(t, cfg.Auth.APIKeys["key3"])
	})

	t.Run("returns nil for empty API keys", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Nil(t, cfg.Auth.APIKeys)
	})

	t.Run("includes default CORS origins", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("CORS_ORIGINS", "https://shop.munchbox.test")
		defer os.Clearenv()

		cfg := Load()

		assert.Contains(t, cfg.Server.CORSOrigins, "http://localhost:3000")
		assert.Contains(t, cfg.Server.CORSOrigins, "https://shop.munchbox.test")
	})
}
