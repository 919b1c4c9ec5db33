package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("default log level = %q, want info", cfg.Log.Level)
	}
	if cfg.Trials != 0 || cfg.Workers != 0 {
		t.Fatalf("expected zero-value trials/workers defaults, got %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bigprime.yaml")
	contents := "trials: 40\nworkers: 4\nlog:\n  level: debug\n  file: /tmp/bigprime.log\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Trials != 40 || cfg.Workers != 4 {
		t.Fatalf("cfg = %+v, want Trials=40 Workers=4", cfg)
	}
	if cfg.Log.Level != "debug" || cfg.Log.File != "/tmp/bigprime.log" {
		t.Fatalf("cfg.Log = %+v", cfg.Log)
	}
	if cfg.Log.MaxSizeMB != 50 {
		t.Fatalf("MaxSizeMB should keep its default when unset in YAML, got %d", cfg.Log.MaxSizeMB)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error loading a missing config file")
	}
}
