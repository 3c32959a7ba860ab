package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir()) // no .env file

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.LiveRateTimeout)
	assert.Equal(t, time.Hour, cfg.LiveRateCacheTTL)
	assert.True(t, cfg.UseLiveRates)
	assert.Equal(t, "USD", cfg.BaseCurrency)
	assert.Equal(t, "UGX", cfg.LocalCurrency)
	assert.Equal(t, RateStoreBolt, cfg.RateStore)
	assert.Equal(t, []string{"http://localhost:4200"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "https://api.exchangerate-api.com/v4/latest/USD", cfg.LiveRateAPIURL)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("LIVE_RATE_CACHE_TTL", "15m")
	t.Setenv("LOCAL_CURRENCY", "kes")
	t.Setenv("RATE_STORE", "POSTGRES")
	t.Setenv("ACCOUNTING_API_URL", "http://fineract.local/")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("USE_LIVE_RATES", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 15*time.Minute, cfg.LiveRateCacheTTL)
	assert.Equal(t, "KES", cfg.LocalCurrency)
	assert.Equal(t, RateStorePostgres, cfg.RateStore)
	assert.Equal(t, "http://fineract.local", cfg.AccountingAPIURL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.UseLiveRates)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LIVE_RATE_TIMEOUT", "soon")
	t.Setenv("TIMEZONE", "Nowhere/Atlantis")
	t.Setenv("RATE_STORE", "redis")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, cfg.LiveRateTimeout)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Equal(t, RateStoreBolt, cfg.RateStore)
}
