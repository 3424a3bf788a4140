package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

type Config struct {
	ProxyURL  string
	ProxyType string
	ProxyUser string
	ProxyPass string
	Timeout   time.Duration
	Syslog    bool
	LogLevel  string
}

// Load reads process settings from the environment, preloading it from
// MATTERMOST_ENV_FILE or ./.env when present. Variables already set in the
// environment win over the file.
func Load() (*Config, error) {
	envFile := os.Getenv("MATTERMOST_ENV_FILE")
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("error loading env file %q: %w", envFile, err)
		}
	} else if err := godotenv.Load(defaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading %s file: %w", defaultEnvFile, err)
	}

	return FromEnv()
}

func FromEnv() (*Config, error) {
	config := &Config{
		ProxyURL:  os.Getenv("MATTERMOST_PROXY_URL"),
		ProxyType: strings.ToLower(os.Getenv("MATTERMOST_PROXY_TYPE")),
		ProxyUser: os.Getenv("MATTERMOST_PROXY_USER"),
		ProxyPass: os.Getenv("MATTERMOST_PROXY_PASS"),
		Syslog:    true,
		LogLevel:  "INFO",
	}

	if config.ProxyType != "" && config.ProxyType != "http" && config.ProxyType != "socks5" {
		return nil, fmt.Errorf("MATTERMOST_PROXY_TYPE must be http or socks5, got %q", config.ProxyType)
	}

	if v := os.Getenv("MATTERMOST_TIMEOUT"); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid MATTERMOST_TIMEOUT %q: %w", v, err)
		}
		if timeout < 0 {
			return nil, fmt.Errorf("MATTERMOST_TIMEOUT must not be negative, got %s", timeout)
		}
		config.Timeout = timeout
	}

	if v := os.Getenv("MATTERMOST_SYSLOG"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid MATTERMOST_SYSLOG %q: %w", v, err)
		}
		config.Syslog = enabled
	}

	if v := os.Getenv("MATTERMOST_LOG_LEVEL"); v != "" {
		config.LogLevel = strings.ToUpper(v)
	}

	return config, nil
}
