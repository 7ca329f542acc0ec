package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Upstream UpstreamConfig
	Holiday  HolidayConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds token verification configuration. Tokens are minted by the
// identity service; the gateway only shares the secret.
type JWTConfig struct {
	Secret string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

// UpstreamConfig holds the HR API connection settings. The upstream
// authenticates service-to-service via OAuth2 client credentials.
type UpstreamConfig struct {
	BaseURL      string
	TokenURL     string
	ClientID     string
	ClientSecret string
	Timeout      time.Duration
}

// HolidayConfig controls the holiday calendar snapshot cache.
type HolidayConfig struct {
	CalendarID string
	CacheTTL   time.Duration
}

func Load() (*Config, error) {
	// .env is optional outside local development.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "hrdash-gateway"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvSlice("ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	// Upstream HR API configuration
	upstreamTimeout, err := time.ParseDuration(getEnv("UPSTREAM_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT: %w", err)
	}

	config.Upstream = UpstreamConfig{
		BaseURL:      getEnv("UPSTREAM_BASE_URL", ""),
		TokenURL:     getEnv("UPSTREAM_TOKEN_URL", ""),
		ClientID:     getEnv("UPSTREAM_CLIENT_ID", ""),
		ClientSecret: getEnv("UPSTREAM_CLIENT_SECRET", ""),
		Timeout:      upstreamTimeout,
	}

	// Holiday calendar configuration
	holidayTTL, err := time.ParseDuration(getEnv("HOLIDAY_CACHE_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid HOLIDAY_CACHE_TTL: %w", err)
	}

	config.Holiday = HolidayConfig{
		CalendarID: getEnv("HOLIDAY_CALENDAR_ID", ""),
		CacheTTL:   holidayTTL,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("UPSTREAM_BASE_URL is required")
	}
	if c.Upstream.TokenURL == "" {
		return fmt.Errorf("UPSTREAM_TOKEN_URL is required")
	}
	if c.Upstream.ClientID == "" {
		return fmt.Errorf("UPSTREAM_CLIENT_ID is required")
	}
	if c.Upstream.ClientSecret == "" {
		return fmt.Errorf("UPSTREAM_CLIENT_SECRET is required")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env, fallback string) []string {
	return strings.Split(getEnv(env, fallback), ",")
}
