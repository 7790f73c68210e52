package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DBDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("ENV", "")
	t.Setenv("DATA_SOURCE", "db")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("TIMEZONE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, defaultDatabaseURL, cfg.DatabaseURL)
	assert.Equal(t, 60*time.Second, cfg.ListingCacheTTL)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.False(t, cfg.RedisEnabled())
}

func TestLoad_CMSRequiresURL(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	t.Setenv("DATA_SOURCE", "cms")
	t.Setenv("CMS_URL", "")

	_, err := Load()
	assert.ErrorContains(t, err, "CMS_URL")
}

func TestLoad_CMSAndOrigins(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	t.Setenv("DATA_SOURCE", "cms")
	t.Setenv("CMS_URL", "https://cms.example.com/")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, ,https://b.example.com")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://cms.example.com", cfg.CMSURL)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.RedisEnabled())
	assert.Equal(t, 2, cfg.RedisDB)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	t.Setenv("DATA_SOURCE", "db")
	t.Setenv("JWT_TTL", "forever")

	_, err := Load()
	assert.ErrorContains(t, err, "JWT_TTL")
}

func TestLoad_ProdRejectsDefaultSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATA_SOURCE", "db")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestLoad_UnknownDataSource(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	t.Setenv("DATA_SOURCE", "mongo")

	_, err := Load()
	assert.ErrorContains(t, err, "DATA_SOURCE")
}

func TestLoad_LogSettings(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	t.Setenv("DATA_SOURCE", "db")
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("LOG_FILE", " /tmp/staydrive.log ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "/tmp/staydrive.log", cfg.LogFile)

	t.Setenv("LOG_LEVEL", "loud")
	_, err = Load()
	assert.ErrorContains(t, err, "LOG_LEVEL")
}
