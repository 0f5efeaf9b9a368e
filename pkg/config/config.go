// Package config loads the YAML configuration shared by the sameeas
// CLIs and HTTP server.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config is the sameeas runtime configuration.
type Config struct {
	Dictionary struct {
		Path string `yaml:"path"`
	} `yaml:"dictionary"`

	Encoder struct {
		Mode          string `yaml:"mode"`
		AttentionTone bool   `yaml:"attention_tone"`
		OutputDir     string `yaml:"output_dir"`
	} `yaml:"encoder"`

	Transcoder struct {
		Binary  string `yaml:"binary"`
		WorkDir string `yaml:"work_dir"`
	} `yaml:"transcoder"`

	Archive struct {
		DatabasePath string `yaml:"database_path"`
		MaxRecords   int    `yaml:"max_records"`
	} `yaml:"archive"`

	API struct {
		BindAddress string `yaml:"bind_address"`
		Port        int    `yaml:"port"`
	} `yaml:"api"`

	Logging struct {
		Level      string `yaml:"level"`
		File       string `yaml:"file"`
		Console    bool   `yaml:"console"`
		Structured bool   `yaml:"structured"`
		MaxSize    int    `yaml:"max_size"`
		MaxBackups int    `yaml:"max_backups"`
		MaxAge     int    `yaml:"max_age"`
		Compress   bool   `yaml:"compress"`
	} `yaml:"logging"`
}

// Load reads and parses a YAML configuration file, filling in defaults
// for anything left unset.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Dictionary.Path == "" {
		c.Dictionary.Path = "dictionary.json"
	}
	if c.Encoder.Mode == "" {
		c.Encoder.Mode = "DEFAULT"
	}
	if c.Encoder.OutputDir == "" {
		c.Encoder.OutputDir = "."
	}
	if c.Transcoder.Binary == "" {
		c.Transcoder.Binary = "ffmpeg"
	}
	if c.Transcoder.WorkDir == "" {
		c.Transcoder.WorkDir = os.TempDir()
	}
	if c.Archive.DatabasePath == "" {
		c.Archive.DatabasePath = "sameeas.db"
	}
	if c.Archive.MaxRecords == 0 {
		c.Archive.MaxRecords = 10000
	}
	if c.API.BindAddress == "" {
		c.API.BindAddress = "0.0.0.0"
	}
	if c.API.Port == 0 {
		c.API.Port = 8080
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Validate checks the configuration for values the rest of the system
// cannot operate without.
func (c *Config) Validate() error {
	if c.Dictionary.Path == "" {
		return fmt.Errorf("dictionary path is required")
	}
	return nil
}
