package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.App.Name != "super_snoofer" {
		t.Errorf("Expected app name 'super_snoofer', got '%s'", cfg.App.Name)
	}
	if cfg.Fuzzy.Threshold != 0.6 {
		t.Errorf("Expected threshold 0.6, got %f", cfg.Fuzzy.Threshold)
	}
	if cfg.Fuzzy.MaxDistance != 3 {
		t.Errorf("Expected max distance 3, got %d", cfg.Fuzzy.MaxDistance)
	}
	if cfg.Completion.MaxResults != 10 {
		t.Errorf("Expected max results 10, got %d", cfg.Completion.MaxResults)
	}
	if !cfg.Completion.ScanPath {
		t.Error("Expected PATH scanning enabled by default")
	}
	if cfg.Cache.Path == "" {
		t.Error("Expected a default cache path")
	}
	if cfg.Cache.PathTTL != 24*time.Hour {
		t.Errorf("Expected 24h path TTL, got %v", cfg.Cache.PathTTL)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Expected log level 'warn', got '%s'", cfg.Logging.Level)
	}
}

func TestLoadEnvOverridesCachePath(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SUPER_SNOOFER_CACHE_PATH", "/tmp/custom/snoofer.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Cache.Path != "/tmp/custom/snoofer.db" {
		t.Errorf("Expected env override, got '%s'", cfg.Cache.Path)
	}
}

func TestLoadEnvOverridesThreshold(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SUPER_SNOOFER_FUZZY_THRESHOLD", "0.8")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Fuzzy.Threshold != 0.8 {
		t.Errorf("Expected threshold 0.8, got %f", cfg.Fuzzy.Threshold)
	}
}

func TestDefaultCachePath(t *testing.T) {
	if DefaultCachePath() == "" {
		t.Error("Expected a non-empty default cache path")
	}
}
