package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingKey is returned when RAPIDAPI_KEY is absent or blank
var ErrMissingKey = errors.New("RAPIDAPI_KEY is not set in the environment variables")

const defaultTimeout = 30 * time.Second

// Config contains runtime settings for the MCP server
type Config struct {
	LogLevel string
	RapidAPI struct {
		Key     string
		Timeout time.Duration // per-request deadline, default 30s
	}
	LinkedIn struct {
		BaseURL string // empty means the public RapidAPI endpoint
	}
	JobFeed struct {
		BaseURL string
	}
}

// Load populates config from environment variables, reading .env first when present
func Load() (Config, error) {
	// real environment variables win over .env entries
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("config: read .env: %w", err)
	}

	return FromEnv(os.Getenv)
}

// FromEnv builds Config from a lookup function
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		LogLevel: "info",
	}
	cfg.RapidAPI.Timeout = defaultTimeout

	if v := getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	cfg.LinkedIn.BaseURL = getenv("LINKEDIN_API_BASE_URL")
	cfg.JobFeed.BaseURL = getenv("JOB_POSTING_API_BASE_URL")

	if v := getenv("RAPIDAPI_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return cfg, fmt.Errorf("config: invalid RAPIDAPI_TIMEOUT %q", v)
		}
		cfg.RapidAPI.Timeout = d
	}

	cfg.RapidAPI.Key = strings.TrimSpace(getenv("RAPIDAPI_KEY"))
	if cfg.RapidAPI.Key == "" {
		return cfg, ErrMissingKey
	}

	return cfg, nil
}
