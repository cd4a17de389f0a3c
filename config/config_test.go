package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `api:
  base_url: "http://timetable.local:8000"
  timeout_seconds: 30
metrics:
  prometheus_enabled: true
  prometheus_addr: ":9100"
provision:
  skip_existing: true
export:
  output_dir: "."
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"api.base_url", cfg.API.BaseURL, "http://timetable.local:8000"},
		{"api.timeout_seconds", cfg.API.TimeoutSeconds, 30},
		{"metrics.prometheus_enabled", cfg.Metrics.PrometheusEnabled, true},
		{"metrics.prometheus_addr", cfg.Metrics.PrometheusAddr, ":9100"},
		{"provision.skip_existing", cfg.Provision.SkipExisting, true},
		{"export.output_dir", cfg.Export.OutputDir, "."},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s mismatch: %v", c.name, c.got)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("api: {}\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:8000" {
		t.Errorf("default base_url: %s", cfg.API.BaseURL)
	}
	if cfg.API.TimeoutSeconds != 15 {
		t.Errorf("default timeout: %d", cfg.API.TimeoutSeconds)
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	if _, err := Load("config.toml"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("api:\n  base_url: \"http://from-file:8000\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TT_API__BASE_URL", "http://from-env:8000")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.API.BaseURL != "http://from-env:8000" {
		t.Errorf("env override not applied: %s", cfg.API.BaseURL)
	}
}
