package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfigValues(t *testing.T) {
	cfg := DefaultConfig()
	if cfg == nil {
		t.Fatalf("DefaultConfig() returned nil")
	}

	if cfg.Source.URL != UpstreamURL {
		t.Errorf("Source.URL = %q, want %q", cfg.Source.URL, UpstreamURL)
	}
	if cfg.Source.Path != "lsrc2source.php" {
		t.Errorf("Source.Path = %q, want %q", cfg.Source.Path, "lsrc2source.php")
	}
	if cfg.Output.Path != "lsrc2client.py" {
		t.Errorf("Output.Path = %q, want %q", cfg.Output.Path, "lsrc2client.py")
	}
	if cfg.Fetch.MaxRetries != 3 {
		t.Errorf("Fetch.MaxRetries = %d, want %d", cfg.Fetch.MaxRetries, 3)
	}
	if !cfg.Fetch.Preflight {
		t.Errorf("Fetch.Preflight = false, want true")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
}

func TestLoadMissingFileReturnsDefaultConfig(t *testing.T) {
	tempDir := t.TempDir()
	missing := filepath.Join(tempDir, "no-such-config.yaml")

	cfg, err := Load(missing)
	if err != nil {
		t.Fatalf("Load(%q) returned error: %v", missing, err)
	}
	if cfg == nil {
		t.Fatalf("Load(%q) returned nil config", missing)
	}

	if cfg.Output.Path != "lsrc2client.py" {
		t.Errorf("Output.Path = %q, want %q", cfg.Output.Path, "lsrc2client.py")
	}
}

func TestLoadParsesYAMLAndKeepsDefaults(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "lsrc2gen.yaml")

	yamlContent := []byte(`
source:
  path: ./php/remotecontrol_handle.php
output:
  path: ./client/lsrc2client.py
fetch:
  timeout: 15s
  max_retries: 5
watch:
  debounce: 2s
logging:
  level: debug
`)
	if err := os.WriteFile(path, yamlContent, 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) returned error: %v", path, err)
	}

	if cfg.Source.Path != "./php/remotecontrol_handle.php" {
		t.Errorf("Source.Path = %q, want %q", cfg.Source.Path, "./php/remotecontrol_handle.php")
	}
	if cfg.Source.URL != UpstreamURL {
		t.Errorf("Source.URL = %q, want default %q", cfg.Source.URL, UpstreamURL)
	}
	if cfg.Output.Path != "./client/lsrc2client.py" {
		t.Errorf("Output.Path = %q, want %q", cfg.Output.Path, "./client/lsrc2client.py")
	}
	if cfg.Fetch.Timeout != 15*time.Second {
		t.Errorf("Fetch.Timeout = %v, want %v", cfg.Fetch.Timeout, 15*time.Second)
	}
	if cfg.Fetch.MaxRetries != 5 {
		t.Errorf("Fetch.MaxRetries = %d, want %d", cfg.Fetch.MaxRetries, 5)
	}
	if cfg.Watch.Debounce != 2*time.Second {
		t.Errorf("Watch.Debounce = %v, want %v", cfg.Watch.Debounce, 2*time.Second)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("Logging.Format = %q, want default %q", cfg.Logging.Format, "text")
	}
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("source: [unterminated"), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("Load(%q) = nil error, want parse error", path)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	cfg := DefaultConfig()

	t.Setenv("LSRC2_SOURCE_URL", "http://mirror.local/handle.php")
	t.Setenv("LSRC2_SOURCE_PATH", "/tmp/handle.php")
	t.Setenv("LSRC2_OUTPUT_PATH", "/tmp/client.py")
	t.Setenv("LSRC2_OUTPUT_TEMPLATE", "/tmp/client.tmpl")
	t.Setenv("LSRC2_FETCH_TIMEOUT", "5s")
	t.Setenv("LSRC2_FETCH_MAX_RETRIES", "7")
	t.Setenv("LSRC2_FETCH_PREFLIGHT", "false")
	t.Setenv("LSRC2_LOG_LEVEL", "warn")
	t.Setenv("LSRC2_LOG_FORMAT", "json")

	applyEnvOverrides(cfg)

	if cfg.Source.URL != "http://mirror.local/handle.php" {
		t.Errorf("Source.URL = %q, want %q", cfg.Source.URL, "http://mirror.local/handle.php")
	}
	if cfg.Source.Path != "/tmp/handle.php" {
		t.Errorf("Source.Path = %q, want %q", cfg.Source.Path, "/tmp/handle.php")
	}
	if cfg.Output.Path != "/tmp/client.py" {
		t.Errorf("Output.Path = %q, want %q", cfg.Output.Path, "/tmp/client.py")
	}
	if cfg.Output.Template != "/tmp/client.tmpl" {
		t.Errorf("Output.Template = %q, want %q", cfg.Output.Template, "/tmp/client.tmpl")
	}
	if cfg.Fetch.Timeout != 5*time.Second {
		t.Errorf("Fetch.Timeout = %v, want %v", cfg.Fetch.Timeout, 5*time.Second)
	}
	if cfg.Fetch.MaxRetries != 7 {
		t.Errorf("Fetch.MaxRetries = %d, want %d", cfg.Fetch.MaxRetries, 7)
	}
	if cfg.Fetch.Preflight {
		t.Errorf("Fetch.Preflight = true, want false")
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "warn")
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want %q", cfg.Logging.Format, "json")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Fetch.MaxRetries = 0
	cfg.Logging.Level = ""
	if err := validate(cfg); err != nil {
		t.Fatalf("validate(default cfg) returned error: %v", err)
	}
	if cfg.Fetch.MaxRetries != 1 {
		t.Errorf("after validate, Fetch.MaxRetries = %d, want 1", cfg.Fetch.MaxRetries)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("after validate, Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}

	noOutput := DefaultConfig()
	noOutput.Output.Path = ""
	if err := validate(noOutput); err == nil {
		t.Fatalf("validate(cfg without output path) = nil error, want non-nil")
	}

	badLevel := DefaultConfig()
	badLevel.Logging.Level = "verbose"
	if err := validate(badLevel); err == nil {
		t.Fatalf("validate(cfg with bad level) = nil error, want non-nil")
	}
}
