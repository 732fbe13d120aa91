package mcpserver

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config customises the MCP endpoint. It is loaded from an optional
// mcp.yaml; every field has a usable default.
type Config struct {
	Name         string                  `yaml:"name"`
	Instructions string                  `yaml:"instructions"`
	Overrides    map[string]ToolOverride `yaml:"overrides"`
}

// ToolOverride allows per-tool customization.
type ToolOverride struct {
	Description string `yaml:"description"`
	Disabled    bool   `yaml:"disabled"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig reads and parses an mcp.yaml configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig parses mcp.yaml configuration from raw bytes.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse mcp config: %w", err)
	}
	for name := range cfg.Overrides {
		if !knownTool(name) {
			return nil, fmt.Errorf("parse mcp config: override for unknown tool %q", name)
		}
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Name == "" {
		c.Name = "minio-lite-admin"
	}
	if c.Instructions == "" {
		c.Instructions = "Read-only view of a MinIO deployment: server identity, capacity and disk health, and access keys."
	}
	if c.Overrides == nil {
		c.Overrides = map[string]ToolOverride{}
	}
}
