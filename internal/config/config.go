package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks for a config file when no explicit
// path is given.
const DefaultPath = "prompter.yaml"

type Config struct {
	Server   ServerConfig   `yaml:"server,omitempty"`
	Database DatabaseConfig `yaml:"database,omitempty"`
	Enhance  EnhanceConfig  `yaml:"enhance,omitempty"`
	Audit    AuditConfig    `yaml:"audit,omitempty"`
	Logging  LoggingConfig  `yaml:"logging,omitempty"`
}

type ServerConfig struct {
	Addr string `yaml:"addr,omitempty"`
	CORS bool   `yaml:"cors"`
}

type DatabaseConfig struct {
	Path string `yaml:"path,omitempty"`
}

// EnhanceConfig selects the upstream model behind the enhance endpoint.
// APIKey may be left empty and supplied through the environment instead.
type EnhanceConfig struct {
	Provider string `yaml:"provider,omitempty"`
	Model    string `yaml:"model,omitempty"`
	APIKey   string `yaml:"api_key,omitempty"`
	BaseURL  string `yaml:"base_url,omitempty"`
}

type AuditConfig struct {
	Enabled       bool   `yaml:"enabled"`
	Dir           string `yaml:"dir,omitempty"`
	RetentionDays int    `yaml:"retention_days,omitempty"`
	FilePrefix    string `yaml:"file_prefix,omitempty"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: ":8080",
			CORS: true,
		},
		Database: DatabaseConfig{
			Path: "newsletter.db",
		},
		Enhance: EnhanceConfig{
			Provider: "gemini",
		},
		Audit: AuditConfig{
			Dir:           ".prompter/audit",
			RetentionDays: 7,
			FilePrefix:    "optimize",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads DefaultPath when it exists, otherwise returns the defaults.
// Environment overrides apply either way.
func Load() (*Config, error) {
	cfg, err := LoadFromPath(DefaultPath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg = DefaultConfig()
			cfg.applyEnv()
			return cfg, nil
		}
		return nil, err
	}
	return cfg, nil
}

// LoadFromPath reads the given YAML file over the defaults. Unlike Load,
// a missing file is an error here because the path was asked for
// explicitly.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv lets deployments override file values without editing the
// config. DATABASE_URL accepts the sqlite:/// scheme carried over from
// older deployments.
func (c *Config) applyEnv() {
	if v := os.Getenv("PROMPTER_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Database.Path = strings.TrimPrefix(v, "sqlite:///")
	}
	if v := os.Getenv("ENHANCE_PROVIDER"); v != "" {
		c.Enhance.Provider = v
	}
	if v := os.Getenv("ENHANCE_MODEL"); v != "" {
		c.Enhance.Model = v
	}
	if v := os.Getenv("ENHANCE_API_KEY"); v != "" {
		c.Enhance.APIKey = v
	}
	if v := os.Getenv("ENHANCE_BASE_URL"); v != "" {
		c.Enhance.BaseURL = v
	}
}
