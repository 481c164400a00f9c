// Package config loads the immutable process configuration from the
// environment. Required values fail fast at startup; tuning knobs fall back
// to defaults with a warning.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type Config struct {
	// HTTP server
	Port string

	// Database
	DBHost           string
	DBPort           int
	DBName           string
	DBUser           string
	DBPass           string
	DBMaxConns       int
	DBConnectTimeout time.Duration

	// CORS
	WebOrigin string

	// Auth
	AuthEnabled      bool
	AuthEmail        string
	AuthPassword     string
	AuthPasswordHash string
	JWTSecret        string
	JWTRefreshSecret string

	// Rate limiting
	RateLimitWindow time.Duration
	RateLimitMax    int

	// Logging
	LogLevel string
}

func Load(log zerolog.Logger) *Config {
	return &Config{
		Port: getEnv(log, "PORT", "4000"),

		DBHost:           os.Getenv("DB_HOST"),
		DBPort:           getEnvInt(log, "DB_PORT", 5432),
		DBName:           os.Getenv("DB_NAME"),
		DBUser:           os.Getenv("DB_USER"),
		DBPass:           os.Getenv("DB_PASS"),
		DBMaxConns:       getEnvInt(log, "DB_MAX_CONNS", 10),
		DBConnectTimeout: getEnvDuration(log, "DB_CONNECT_TIMEOUT", 5*time.Second),

		WebOrigin: getEnv(log, "WEB_ORIGIN", "*"),

		AuthEnabled:      strings.EqualFold(os.Getenv("AUTH_ENABLED"), "true"),
		AuthEmail:        strings.TrimSpace(os.Getenv("AUTH_EMAIL")),
		AuthPassword:     os.Getenv("AUTH_PASSWORD"),
		AuthPasswordHash: strings.TrimSpace(os.Getenv("AUTH_PASSWORD_HASH")),
		JWTSecret:        strings.TrimSpace(os.Getenv("JWT_SECRET")),
		JWTRefreshSecret: strings.TrimSpace(os.Getenv("JWT_REFRESH_SECRET")),

		RateLimitWindow: getEnvDuration(log, "RATE_LIMIT_WINDOW", time.Minute),
		RateLimitMax:    getEnvInt(log, "RATE_LIMIT_MAX", 100),

		LogLevel: getEnv(log, "LOG_LEVEL", "info"),
	}
}

// Validate reports every missing required value at once.
func (c *Config) Validate() error {
	var problems []string

	if c.DBHost == "" {
		problems = append(problems, "DB_HOST is required")
	}
	if c.DBName == "" {
		problems = append(problems, "DB_NAME is required")
	}
	if c.DBUser == "" {
		problems = append(problems, "DB_USER is required")
	}
	if c.DBPort < 1 || c.DBPort > 65535 {
		problems = append(problems, fmt.Sprintf("DB_PORT %d out of range", c.DBPort))
	}

	if c.AuthEnabled {
		if c.JWTSecret == "" {
			problems = append(problems, "JWT_SECRET is required when AUTH_ENABLED=true")
		}
		if c.AuthEmail == "" {
			problems = append(problems, "AUTH_EMAIL is required when AUTH_ENABLED=true")
		}
		if c.AuthPassword == "" && c.AuthPasswordHash == "" {
			problems = append(problems, "AUTH_PASSWORD or AUTH_PASSWORD_HASH is required when AUTH_ENABLED=true")
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

// AuthConfigured reports whether the credential pair and signing secret are
// all present, independent of the enabled flag.
func (c *Config) AuthConfigured() bool {
	return c.JWTSecret != "" && c.AuthEmail != "" && (c.AuthPassword != "" || c.AuthPasswordHash != "")
}

// DSN builds the Postgres connection string from the discrete DB settings.
func (c *Config) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DBUser, c.DBPass),
		Host:   fmt.Sprintf("%s:%d", c.DBHost, c.DBPort),
		Path:   "/" + c.DBName,
	}
	q := u.Query()
	q.Set("connect_timeout", strconv.Itoa(int(c.DBConnectTimeout.Seconds())))
	u.RawQuery = q.Encode()
	return u.String()
}

func getEnv(log zerolog.Logger, key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(log zerolog.Logger, key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Int("default", def).
			Msg("invalid integer in environment, using default")
		return def
	}
	return i
}

func getEnvDuration(log zerolog.Logger, key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	// Accept plain milliseconds for compatibility with older deployments.
	if ms, err := strconv.Atoi(v); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Dur("default", def).
			Msg("invalid duration in environment, using default")
		return def
	}
	return d
}
