package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds runtime configuration. Defaults are overridden first by an
// optional YAML config file, then by environment variables.
type Config struct {
	BaseURL        string        `yaml:"baseUrl"`
	SessionFile    string        `yaml:"sessionFile"`
	HTTPAddr       string        `yaml:"httpAddr"`
	AllowedOrigins []string      `yaml:"allowedOrigins"`
	RequestTimeout time.Duration `yaml:"-"`
	TimeoutSeconds int           `yaml:"requestTimeoutSeconds"`
}

// Load builds Config from defaults, the YAML file at path (or the default
// location when path is empty), and the environment, in that order.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path == "" {
		path = filepath.Join(configDir(), "config.yaml")
		if _, err := os.Stat(path); err != nil {
			path = ""
		}
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.BaseURL = envOrDefault("MART_BASE_URL", cfg.BaseURL)
	cfg.SessionFile = envOrDefault("MART_SESSION_FILE", cfg.SessionFile)
	cfg.HTTPAddr = envOrDefault("MART_HTTP_ADDR", cfg.HTTPAddr)
	if v := os.Getenv("MART_ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = splitCSV(v)
	}
	cfg.TimeoutSeconds = envInt("MART_REQUEST_TIMEOUT_SECONDS", cfg.TimeoutSeconds)
	cfg.RequestTimeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	return cfg, nil
}

func defaults() Config {
	return Config{
		BaseURL:        "http://localhost:8080",
		SessionFile:    filepath.Join(configDir(), "session.json"),
		HTTPAddr:       ":9090",
		AllowedOrigins: []string{"http://localhost:4200"},
		TimeoutSeconds: 30,
	}
}

func configDir() string {
	if base, err := os.UserConfigDir(); err == nil {
		return filepath.Join(base, "onlinemart")
	}
	return ".onlinemart"
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
