package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// Config holds the complete application configuration. The intent catalog
// itself is compiled into the program; the config only covers the surfaces
// around it.
type Config struct {
	// Application information
	Name    string `yaml:"name" json:"name"`
	Version string `yaml:"version" json:"version"`

	// REPL configuration
	REPL REPLConfig `yaml:"repl" json:"repl"`

	// Transcript (audit) log configuration
	Transcript TranscriptConfig `yaml:"transcript" json:"transcript"`

	// HTTP API server configuration
	Server *ServerConfig `yaml:"server,omitempty" json:"server,omitempty"`

	// MCP server configuration
	MCPServer *MCPServerConfig `yaml:"mcp_server,omitempty" json:"mcp_server,omitempty"`

	// Logging configuration
	LogLevel string `yaml:"log_level" json:"log_level"`
}

// REPLConfig holds interactive-mode configuration.
type REPLConfig struct {
	Prompt      string `yaml:"prompt" json:"prompt"`
	HistorySize int    `yaml:"history_size" json:"history_size"`
}

// TranscriptConfig holds transcript log configuration.
type TranscriptConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	Path    string `yaml:"path,omitempty" json:"path,omitempty"`
}

// ServerConfig holds HTTP API server configuration.
type ServerConfig struct {
	Host string `yaml:"host,omitempty" json:"host,omitempty"`
	Port int    `yaml:"port" json:"port"`
}

// MCPServerConfig holds MCP server configuration.
type MCPServerConfig struct {
	Enabled     bool   `yaml:"enabled" json:"enabled"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Transport   string `yaml:"transport" json:"transport"`
}

// EnvTranscriptPath overrides Transcript.Path when set.
const EnvTranscriptPath = "FAQBOT_TRANSCRIPT"

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Name:    "AI Course Assistant",
		Version: "1.0.0",
		REPL: REPLConfig{
			Prompt:      "You> ",
			HistorySize: 1000,
		},
		Transcript: TranscriptConfig{
			Enabled: false,
			Path:    "faqbot_transcript.log",
		},
		Server: &ServerConfig{
			Port: 8080,
		},
		MCPServer: &MCPServerConfig{
			Enabled:   false,
			Name:      "FAQ Bot MCP Server",
			Transport: "stdio",
		},
		LogLevel: "info",
	}
}

// LoadConfig loads configuration from a file, with defaults filled in for
// anything the file omits. The format follows the file extension.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	ext := filepath.Ext(configPath)

	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}

	config.applyEnvOverrides()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) applyEnvOverrides() {
	if path := os.Getenv(EnvTranscriptPath); path != "" {
		c.Transcript.Enabled = true
		c.Transcript.Path = path
	}
}

// Validate checks configuration consistency.
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("name must not be empty")
	}
	if c.REPL.Prompt == "" {
		return fmt.Errorf("repl.prompt must not be empty")
	}
	if c.REPL.HistorySize < 0 {
		return fmt.Errorf("repl.history_size must not be negative")
	}
	if c.Transcript.Enabled && c.Transcript.Path == "" {
		return fmt.Errorf("transcript.path is required when transcript is enabled")
	}
	if c.Server != nil && (c.Server.Port <= 0 || c.Server.Port > 65535) {
		return fmt.Errorf("server.port must be in range 1-65535, got %d", c.Server.Port)
	}
	if c.MCPServer != nil && c.MCPServer.Enabled && c.MCPServer.Transport != "stdio" {
		return fmt.Errorf("unsupported mcp_server.transport: %s", c.MCPServer.Transport)
	}
	return nil
}

// TranscriptPath returns the transcript file path, or "" when disabled.
func (c *Config) TranscriptPath() string {
	if !c.Transcript.Enabled {
		return ""
	}
	return c.Transcript.Path
}
