package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestLoadConfigDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "config.yaml")

	content := []byte("security:\n  auth-token-key: test-key\n")
	if err := os.WriteFile(tmpFile, content, 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, realpath, err := LoadConfig(tmpFile)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if realpath == "" {
		t.Error("Expected non-empty config path")
	}

	// 显式值生效
	if cfg.Security.AuthTokenKey != "test-key" {
		t.Errorf("Expected auth-token-key test-key, got %s", cfg.Security.AuthTokenKey)
	}

	// 默认值填充
	if cfg.Server.HttpPort != ":9000" {
		t.Errorf("Expected default http-port :9000, got %s", cfg.Server.HttpPort)
	}
	if cfg.Database.Type != "sqlite" {
		t.Errorf("Expected default database type sqlite, got %s", cfg.Database.Type)
	}
	if !cfg.User.RegisterIsEnable {
		t.Error("Expected registration enabled by default")
	}
	if !cfg.Tracer.Enabled {
		t.Error("Expected tracer enabled by default")
	}
	if cfg.GetTokenExpiry() != 365*24*time.Hour {
		t.Errorf("Expected default token expiry 365d, got %v", cfg.GetTokenExpiry())
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Expected error for missing config file")
	}
}

func TestConfigSave(t *testing.T) {
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(tmpFile, []byte("server:\n  http-port: \":9100\"\n"), 0644); err != nil {
		t.Fatalf("Failed to write initial config file: %v", err)
	}

	cfg, _, err := LoadConfig(tmpFile)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	cfg.Security.AuthTokenKey = "rotated-key"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save error: %v, file: %s", err, cfg.File)
	}

	updatedData, err := os.ReadFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to read updated config file: %v", err)
	}

	var updated AppConfig
	if err := yaml.Unmarshal(updatedData, &updated); err != nil {
		t.Fatalf("Failed to unmarshal updated config: %v", err)
	}

	if updated.Security.AuthTokenKey != "rotated-key" {
		t.Errorf("Expected auth-token-key rotated-key, got %s", updated.Security.AuthTokenKey)
	}
	if updated.Server.HttpPort != ":9100" {
		t.Errorf("Expected http-port :9100 preserved, got %s", updated.Server.HttpPort)
	}
}
