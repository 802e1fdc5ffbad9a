package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Config struct {
	AppEnv   string
	Logger   LoggerConfig
	Auth     AuthConfig
	Shopping ShoppingConfig
	Session  SessionConfig
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

// AuthConfig points at the external auth service.
type AuthConfig struct {
	BaseURL string
	Timeout time.Duration
}

// ShoppingConfig points at the external shopping service.
type ShoppingConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SessionConfig controls where the persisted session (token + user id)
// lives between runs.
type SessionConfig struct {
	FilePath string
}

func LoadEnv() *Config {
	return &Config{
		AppEnv: getEnv("APP_ENV", "dev"),
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Auth: AuthConfig{
			BaseURL: getEnv("AUTH_API_URL", "http://localhost:8082"),
			Timeout: getEnvDuration("AUTH_TIMEOUT_SECONDS", 5),
		},
		Shopping: ShoppingConfig{
			BaseURL: getEnv("SHOPPING_API_URL", "http://localhost:8081"),
			Timeout: getEnvDuration("SHOPPING_TIMEOUT_SECONDS", 10),
		},
		Session: SessionConfig{
			FilePath: getEnv("SESSION_FILE", defaultSessionPath()),
		},
	}
}

func defaultSessionPath() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, ".shopclient", "session.json")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallbackSeconds int) time.Duration {
	sec := fallbackSeconds
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			sec = i
		}
	}
	return time.Duration(sec) * time.Second
}
