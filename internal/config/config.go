package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// devJWTSecret signs tokens when JWT_SECRET is unset in development. Validate
// refuses it in every other environment.
const devJWTSecret = "trainhub-dev-secret"

var ErrInsecureJWTSecret = errors.New("JWT_SECRET must be set outside development")

type Config struct {
	Env      string `json:"env"`
	Database struct {
		Host       string `json:"host"`
		Port       string `json:"port"`
		User       string `json:"user"`
		Password   string `json:"password"`
		Name       string `json:"name"`
		SSLMode    string `json:"sslmode"`
		SearchPath string `json:"schema"`
		LogLevel   string `json:"log_level"`
	} `json:"database"`
	JWT struct {
		Secret       string        `json:"secret"`
		ExpiryPeriod time.Duration `json:"expiry_period"`
	} `json:"jwt"`
	Server struct {
		Port           string        `json:"port"`
		ReadTimeout    time.Duration `json:"read_timeout"`
		WriteTimeout   time.Duration `json:"write_timeout"`
		AllowedOrigins []string      `json:"allowed_origins"`
	} `json:"server"`
	Email struct {
		Provider string `json:"provider"`
		FromName string `json:"from_name"`
	} `json:"email"`
	Sendgrid struct {
		APIKey string `json:"api_key"`
		From   string `json:"from"`
	} `json:"sendgrid"`
	SMTP struct {
		Host     string `json:"host"`
		Port     int    `json:"port"`
		Username string `json:"username"`
		Password string `json:"password"`
		From     string `json:"from"`
	} `json:"smtp"`
	Pagination struct {
		DefaultLimit int `json:"default_limit"`
		MaxLimit     int `json:"max_limit"`
	} `json:"pagination"`
	BaseURL string `json:"base_url"`
}

// Load reads configuration from the environment. A .env file in the working
// directory, when present, is loaded first without overriding variables
// that are already set.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not load .env file", "error", err)
	}

	cfg := &Config{}
	cfg.Env = strings.ToLower(getEnv("APP_ENV", "development"))

	// Database configuration
	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = getEnv("DB_PORT", "5432")
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "")
	cfg.Database.Name = getEnv("DB_NAME", "trainhub")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Database.SearchPath = getEnv("DB_SCHEMA", "public")
	cfg.Database.LogLevel = getEnv("DB_LOG_LEVEL", "warn")

	// JWT configuration
	cfg.JWT.Secret = getEnv("JWT_SECRET", "")
	if cfg.JWT.Secret == "" && cfg.IsDevelopment() {
		slog.Warn("JWT_SECRET not set, signing tokens with the development secret")
		cfg.JWT.Secret = devJWTSecret
	}
	cfg.JWT.ExpiryPeriod = getDuration("JWT_EXPIRY", 24*time.Hour)

	// Email configuration
	cfg.Email.Provider = getEnv("EMAIL_PROVIDER", "log")
	cfg.Email.FromName = getEnv("EMAIL_FROM_NAME", "TrainHub")
	cfg.Sendgrid.APIKey = getEnv("SENDGRID_API_KEY", "")
	cfg.Sendgrid.From = getEnv("SENDGRID_FROM", "")
	cfg.SMTP.Host = getEnv("SMTP_HOST", "")
	cfg.SMTP.Port = getInt("SMTP_PORT", 587)
	cfg.SMTP.Username = getEnv("SMTP_USERNAME", "")
	cfg.SMTP.Password = getEnv("SMTP_PASSWORD", "")
	cfg.SMTP.From = getEnv("SMTP_FROM", "")

	// Server configuration
	cfg.Server.Port = getEnv("SERVER_PORT", "8080")
	cfg.Server.ReadTimeout = getDuration("SERVER_READ_TIMEOUT", 15*time.Second)
	cfg.Server.WriteTimeout = getDuration("SERVER_WRITE_TIMEOUT", 15*time.Second)
	cfg.Server.AllowedOrigins = getList("CORS_ALLOWED_ORIGINS", []string{"https://*", "http://*"})

	cfg.Pagination.DefaultLimit = getInt("DEFAULT_PAGE_SIZE", 10)
	cfg.Pagination.MaxLimit = getInt("MAX_PAGE_SIZE", 100)

	cfg.BaseURL = getEnv("APP_BASE_URL", "http://localhost:3000")

	return cfg
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development" || c.Env == "dev"
}

// Validate rejects settings that must not reach a deployed server.
func (c *Config) Validate() error {
	if c.IsDevelopment() {
		return nil
	}
	if c.JWT.Secret == "" || c.JWT.Secret == devJWTSecret {
		return ErrInsecureJWTSecret
	}
	return nil
}

// DSN returns the key/value connection string understood by both the gorm
// postgres driver and lib/pq.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
		c.Database.SearchPath,
	)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", value)
		return defaultValue
	}
	return n
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		slog.Warn("invalid duration in environment, using default", "key", key, "value", value)
		return defaultValue
	}
	return d
}

func getList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return defaultValue
	}
	var out []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
