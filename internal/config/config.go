package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration for ontoline
type Config struct {
	Format string       `yaml:"format"`
	Name   string       `yaml:"name"`
	Source string       `yaml:"source"`
	Render RenderConfig `yaml:"render"`
	Dev    DevConfig    `yaml:"dev"`
}

// RenderConfig controls report rendering options
type RenderConfig struct {
	ShowMatch bool `yaml:"show_match"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug   bool `yaml:"debug"`
	Verbose bool `yaml:"verbose"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Format: "outline",
		Render: RenderConfig{
			ShowMatch: true,
		},
		Dev: DevConfig{
			Debug:   false,
			Verbose: false,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults so absent keys keep their default values
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".ontoline.yml", ".ontoline.yaml", "ontoline.yml", "ontoline.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return ""
}

// LoadConfigWithCLI loads config with CLI argument precedence. CLI values
// equal to their flag defaults do not override the config file, so a file
// setting survives unless the user passed something explicitly.
func LoadConfigWithCLI(configPath, cliFormat, cliName, cliSource string) (*Config, error) {
	cfg := NewConfig()

	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	if cliFormat != "" && cliFormat != "outline" {
		cfg.Format = cliFormat
	}
	if cliName != "" {
		cfg.Name = cliName
	}
	if cliSource != "" {
		cfg.Source = cliSource
	}

	return cfg, nil
}
