package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	DataSourceCMS = "cms"
	DataSourceDB  = "db"
)

const (
	defaultPort            = "8080"
	defaultDataSource      = DataSourceCMS
	defaultCMSTimeout      = "10s"
	defaultDatabaseURL     = "staydrive.db"
	defaultListingCacheTTL = "60s"
	defaultJWTSecret       = "change-me-jwt-secret"
	defaultJWTTTL          = "24h"
	defaultTimezone        = "UTC"
	defaultLogLevel        = "info"
)

type Config struct {
	AppEnv string
	Port   string

	DataSource  string
	CMSURL      string
	CMSAPIToken string
	CMSTimeout  time.Duration
	DatabaseURL string

	RedisAddr       string
	RedisUsername   string
	RedisPassword   string
	RedisDB         int
	ListingCacheTTL time.Duration

	JWTSecret         string
	JWTTTL            time.Duration
	AdminEmail        string
	AdminPasswordHash string

	Location           *time.Location
	LogLevel           string
	LogFile            string
	CORSAllowedOrigins []string
}

func Load() (*Config, error) {
	cfg := &Config{}
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = strings.TrimSpace(getEnv("PORT", defaultPort))
	cfg.DataSource = strings.ToLower(strings.TrimSpace(getEnv("DATA_SOURCE", defaultDataSource)))
	cfg.CMSURL = strings.TrimRight(strings.TrimSpace(os.Getenv("CMS_URL")), "/")
	cfg.CMSAPIToken = strings.TrimSpace(os.Getenv("CMS_API_TOKEN"))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))

	cfg.RedisAddr = strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	cfg.RedisUsername = strings.TrimSpace(os.Getenv("REDIS_USERNAME"))
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")

	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	cfg.AdminEmail = strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	cfg.AdminPasswordHash = strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH"))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(getEnv("LOG_LEVEL", defaultLogLevel)))
	cfg.LogFile = strings.TrimSpace(os.Getenv("LOG_FILE"))
	cfg.CORSAllowedOrigins = splitList(os.Getenv("CORS_ALLOWED_ORIGINS"))

	var err error
	cfg.CMSTimeout, err = parseDurationEnv("CMS_TIMEOUT", defaultCMSTimeout)
	if err != nil {
		return nil, err
	}
	cfg.ListingCacheTTL, err = parseDurationEnv("LISTING_CACHE_TTL", defaultListingCacheTTL)
	if err != nil {
		return nil, err
	}
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}
	cfg.RedisDB, err = parseIntEnv("REDIS_DB", "0")
	if err != nil {
		return nil, err
	}

	tz := strings.TrimSpace(getEnv("TIMEZONE", defaultTimezone))
	cfg.Location, err = time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE value %q: %w", tz, err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	log.Printf("config loaded: env=%s data_source=%s redis=%t timezone=%s", cfg.AppEnv, cfg.DataSource, cfg.RedisEnabled(), cfg.Location)

	return cfg, nil
}

func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

func (c *Config) IsProd() bool {
	return isProdLike(c.AppEnv)
}

func validateConfig(cfg *Config) error {
	switch cfg.DataSource {
	case DataSourceCMS:
		if cfg.CMSURL == "" {
			return fmt.Errorf("CMS_URL must be set when DATA_SOURCE=cms")
		}
		if !strings.HasPrefix(cfg.CMSURL, "http://") && !strings.HasPrefix(cfg.CMSURL, "https://") {
			return fmt.Errorf("CMS_URL must be an http(s) URL")
		}
	case DataSourceDB:
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL must not be empty when DATA_SOURCE=db")
		}
	default:
		return fmt.Errorf("DATA_SOURCE must be one of: cms, db")
	}
	if cfg.CMSTimeout <= 0 {
		return fmt.Errorf("CMS_TIMEOUT must be > 0")
	}
	if cfg.ListingCacheTTL <= 0 {
		return fmt.Errorf("LISTING_CACHE_TTL must be > 0")
	}
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL value %q", cfg.LogLevel)
	}
	if cfg.RedisDB < 0 {
		return fmt.Errorf("REDIS_DB must be >= 0")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if cfg.DataSource == DataSourceCMS && cfg.CMSAPIToken == "" {
			return fmt.Errorf("in prod/release CMS_API_TOKEN must be set")
		}
		if cfg.AdminEmail == "" || cfg.AdminPasswordHash == "" {
			return fmt.Errorf("in prod/release ADMIN_EMAIL and ADMIN_PASSWORD_HASH must be set")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseIntEnv(name, fallback string) (int, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
