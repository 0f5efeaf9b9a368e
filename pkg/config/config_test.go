package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "sameeas-config-test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	t.Run("Valid Config", func(t *testing.T) {
		configContent := `
dictionary:
  path: "dictionary.json"

encoder:
  mode: "NWS"
  attention_tone: false
  output_dir: "/tmp/out"

transcoder:
  binary: "ffmpeg"
  work_dir: "/tmp/work"

archive:
  database_path: "/tmp/sameeas.db"
  max_records: 5000

api:
  bind_address: "127.0.0.1"
  port: 9090

logging:
  level: "debug"
  file: "/var/log/sameeas.log"
  console: true
`
		configPath := filepath.Join(tempDir, "valid.yaml")
		if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
			t.Fatalf("Failed to write config file: %v", err)
		}

		cfg, err := Load(configPath)
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}

		if cfg.Encoder.Mode != "NWS" {
			t.Errorf("Expected encoder mode NWS, got %s", cfg.Encoder.Mode)
		}
		if cfg.Archive.MaxRecords != 5000 {
			t.Errorf("Expected max records 5000, got %d", cfg.Archive.MaxRecords)
		}
		if cfg.API.Port != 9090 {
			t.Errorf("Expected API port 9090, got %d", cfg.API.Port)
		}
		if cfg.Logging.Level != "debug" {
			t.Errorf("Expected log level debug, got %s", cfg.Logging.Level)
		}
	})

	t.Run("Config With Defaults", func(t *testing.T) {
		configPath := filepath.Join(tempDir, "minimal.yaml")
		if err := os.WriteFile(configPath, []byte("dictionary:\n  path: \"d.json\"\n"), 0644); err != nil {
			t.Fatalf("Failed to write config file: %v", err)
		}

		cfg, err := Load(configPath)
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}

		if cfg.Encoder.Mode != "DEFAULT" {
			t.Errorf("Expected default encoder mode DEFAULT, got %s", cfg.Encoder.Mode)
		}
		if cfg.Transcoder.Binary != "ffmpeg" {
			t.Errorf("Expected default transcoder binary ffmpeg, got %s", cfg.Transcoder.Binary)
		}
		if cfg.Archive.MaxRecords != 10000 {
			t.Errorf("Expected default max records 10000, got %d", cfg.Archive.MaxRecords)
		}
		if cfg.API.Port != 8080 {
			t.Errorf("Expected default API port 8080, got %d", cfg.API.Port)
		}
		if cfg.Logging.Level != "info" {
			t.Errorf("Expected default log level info, got %s", cfg.Logging.Level)
		}
	})

	t.Run("File Not Found", func(t *testing.T) {
		_, err := Load("/nonexistent/path/config.yaml")
		if err == nil {
			t.Error("Expected error for nonexistent file, got nil")
		}
		if !strings.Contains(err.Error(), "failed to read config file") {
			t.Errorf("Expected 'failed to read config file' error, got: %v", err)
		}
	})

	t.Run("Invalid YAML", func(t *testing.T) {
		configPath := filepath.Join(tempDir, "invalid.yaml")
		if err := os.WriteFile(configPath, []byte("dictionary: [invalid\n"), 0644); err != nil {
			t.Fatalf("Failed to write config file: %v", err)
		}

		_, err := Load(configPath)
		if err == nil {
			t.Error("Expected error for invalid YAML, got nil")
		}
		if !strings.Contains(err.Error(), "failed to parse config file") {
			t.Errorf("Expected 'failed to parse config file' error, got: %v", err)
		}
	})

	t.Run("Empty File", func(t *testing.T) {
		configPath := filepath.Join(tempDir, "empty.yaml")
		if err := os.WriteFile(configPath, []byte(""), 0644); err != nil {
			t.Fatalf("Failed to write empty config file: %v", err)
		}

		cfg, err := Load(configPath)
		if err != nil {
			t.Fatalf("Expected no error for empty file, got: %v", err)
		}
		if cfg.Dictionary.Path != "dictionary.json" {
			t.Errorf("Expected default dictionary path, got %s", cfg.Dictionary.Path)
		}
	})
}

func TestValidate(t *testing.T) {
	t.Run("Valid Config", func(t *testing.T) {
		cfg := &Config{}
		cfg.Dictionary.Path = "dictionary.json"

		if err := cfg.Validate(); err != nil {
			t.Errorf("Expected no error for valid config, got: %v", err)
		}
	})

	t.Run("Missing Dictionary Path", func(t *testing.T) {
		cfg := &Config{}

		err := cfg.Validate()
		if err == nil {
			t.Error("Expected error for missing dictionary path, got nil")
		}
		if !strings.Contains(err.Error(), "dictionary path is required") {
			t.Errorf("Expected dictionary path error, got: %v", err)
		}
	})
}
