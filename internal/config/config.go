package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvironmentConfig holds the credentials and endpoint for one named
// environment (for example "production" or "staging"). The environment
// name doubles as the session's environment tag.
type EnvironmentConfig struct {
	URL      string `yaml:"url"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

// Config represents the main configuration structure.
type Config struct {
	DefaultEnv   string                       `yaml:"default_env"`
	Environments map[string]EnvironmentConfig `yaml:"environments"`
}

// DefaultConfigPath returns the default path to the configuration file.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".strata/config.yaml"
	}
	return filepath.Join(home, ".strata", "config.yaml")
}

// GetEnvConfig returns the configuration for a named environment. An
// empty name resolves to the default environment, falling back to the
// only configured one.
func (c *Config) GetEnvConfig(envName string) (*EnvironmentConfig, string, error) {
	if envName == "" {
		envName = c.DefaultEnv
	}

	if envName == "" {
		if len(c.Environments) == 0 {
			return nil, "", fmt.Errorf(`missing authentication credentials

To authenticate, use one of the following methods:

1. CLI flags:
   strata login --email YOUR_EMAIL --password YOUR_PASSWORD --url YOUR_API_URL

2. Environment variables:
   export STRATA_EMAIL="your-email"
   export STRATA_PASSWORD="your-password"
   export STRATA_URL="https://api.your-project.dev"

3. Configuration file:
   Run: strata config --init
   Then edit: %s`, DefaultConfigPath())
		}

		// Use the first environment
		for name := range c.Environments {
			envName = name
			break
		}
	}

	env, exists := c.Environments[envName]
	if !exists {
		envNames := make([]string, 0, len(c.Environments))
		for name := range c.Environments {
			envNames = append(envNames, name)
		}
		return nil, "", fmt.Errorf("environment '%s' not found in configuration. Available environments: %v", envName, envNames)
	}

	return &env, envName, nil
}

// Validate ensures the configuration is valid.
func (c *Config) Validate() error {
	if len(c.Environments) == 0 {
		return fmt.Errorf("no environments configured")
	}

	for name, env := range c.Environments {
		if env.URL == "" {
			return fmt.Errorf("environment '%s' missing url", name)
		}
		if env.Email == "" {
			return fmt.Errorf("environment '%s' missing email", name)
		}
	}

	return nil
}
