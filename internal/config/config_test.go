package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kremis.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.CoreURL != "http://localhost:8080" {
		t.Errorf("core url: got %q", cfg.CoreURL)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("timeout: got %v", cfg.Timeout)
	}
	if cfg.MaxConcurrent != 8 {
		t.Errorf("max concurrent: got %d", cfg.MaxConcurrent)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should yield defaults: %v", err)
	}
	if cfg.CoreURL != Default().CoreURL {
		t.Errorf("core url: got %q", cfg.CoreURL)
	}
}

func TestLoadFullFile(t *testing.T) {
	path := writeConfig(t, `
core_url: https://core.internal:9090
timeout: 5s
max_concurrent: 32
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.CoreURL != "https://core.internal:9090" {
		t.Errorf("core url: got %q", cfg.CoreURL)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("timeout: got %v", cfg.Timeout)
	}
	if cfg.MaxConcurrent != 32 {
		t.Errorf("max concurrent: got %d", cfg.MaxConcurrent)
	}
}

func TestLoadPartialFileFallsBack(t *testing.T) {
	path := writeConfig(t, "core_url: http://10.0.0.5:8080\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.CoreURL != "http://10.0.0.5:8080" {
		t.Errorf("core url: got %q", cfg.CoreURL)
	}
	if cfg.Timeout != Default().Timeout {
		t.Errorf("unset timeout must fall back: got %v", cfg.Timeout)
	}
	if cfg.MaxConcurrent != Default().MaxConcurrent {
		t.Errorf("unset max_concurrent must fall back: got %d", cfg.MaxConcurrent)
	}
}

func TestLoadNegativeValuesFallBack(t *testing.T) {
	path := writeConfig(t, "timeout: -3s\nmax_concurrent: -1\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Timeout != Default().Timeout {
		t.Errorf("timeout: got %v", cfg.Timeout)
	}
	if cfg.MaxConcurrent != Default().MaxConcurrent {
		t.Errorf("max concurrent: got %d", cfg.MaxConcurrent)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "core_url: [unclosed\n")
	if _, err := Load(path); err == nil {
		t.Fatal("malformed yaml must be an error, not silent defaults")
	}
}
