package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatalf("expected an error for an explicit missing file")
	}

	cfg, err = Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BaseURL != "http://localhost:8080" {
		t.Fatalf("unexpected base URL %q", cfg.BaseURL)
	}
	if cfg.HTTPAddr != ":9090" {
		t.Fatalf("unexpected http addr %q", cfg.HTTPAddr)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.RequestTimeout)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://localhost:4200" {
		t.Fatalf("unexpected origins %v", cfg.AllowedOrigins)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `baseUrl: https://mart.example.com
httpAddr: ":8000"
requestTimeoutSeconds: 5
allowedOrigins:
  - https://app.example.com
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BaseURL != "https://mart.example.com" || cfg.HTTPAddr != ":8000" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.RequestTimeout)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "https://app.example.com" {
		t.Fatalf("unexpected origins %v", cfg.AllowedOrigins)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("baseUrl: https://file.example.com\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("MART_BASE_URL", "https://env.example.com")
	t.Setenv("MART_REQUEST_TIMEOUT_SECONDS", "90")
	t.Setenv("MART_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BaseURL != "https://env.example.com" {
		t.Fatalf("expected the environment to win, got %q", cfg.BaseURL)
	}
	if cfg.RequestTimeout != 90*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.RequestTimeout)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example.com" {
		t.Fatalf("unexpected origins %v", cfg.AllowedOrigins)
	}
}
