package config

import (
	"os"
	"time"
)

type Config struct {
	Environment string
	Name        string
	Version     string
	Mode        string
	LogLevel    string
	API         APIConfig
	Session     SessionConfig
	Server      ServerConfig
}

// APIConfig describes the backend the booking client talks to. Base URL and
// session token are injected here; nothing below the gateway knows where
// they came from.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SessionConfig struct {
	Token string
}

// ServerConfig applies only when the binary runs as the local fake backend
// (APP_MODE=server).
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func NewConfig() (*Config, error) {
	apiTimeout, err := time.ParseDuration(getEnv("API_TIMEOUT", "15s"))
	if err != nil {
		return nil, err
	}

	readTimeout, err := time.ParseDuration(getEnv("HTTP_READ_TIMEOUT", "10s"))
	if err != nil {
		return nil, err
	}

	writeTimeout, err := time.ParseDuration(getEnv("HTTP_WRITE_TIMEOUT", "10s"))
	if err != nil {
		return nil, err
	}

	return &Config{
		Environment: getEnv("APP_ENV", "development"),
		Name:        getEnv("APP_NAME", "agenda"),
		Version:     getEnv("APP_VERSION", "1.0.0"),
		Mode:        getEnv("APP_MODE", "client"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		API: APIConfig{
			BaseURL: getEnv("API_BASE_URL", "http://localhost:3333"),
			Timeout: apiTimeout,
		},
		Session: SessionConfig{
			Token: getEnv("SESSION_TOKEN", ""),
		},
		Server: ServerConfig{
			Port:         getEnv("HTTP_PORT", "3333"),
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
