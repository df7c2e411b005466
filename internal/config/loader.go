package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ConfigManager manages configuration loading with precedence: CLI
// flags > env vars > config file > defaults.
type ConfigManager struct {
	configPath string
}

// NewConfigManager creates a new ConfigManager.
func NewConfigManager(configPath string) *ConfigManager {
	if configPath == "" {
		configPath = DefaultConfigPath()
	}

	// Load .env files (doesn't override existing env vars)
	loadEnvFiles()

	return &ConfigManager{
		configPath: configPath,
	}
}

// ConfigPath returns the configuration file path.
func (cm *ConfigManager) ConfigPath() string {
	return cm.configPath
}

// loadEnvFiles loads .env files from the current directory and
// ~/.strata/.env.
func loadEnvFiles() {
	// Skip .env loading during tests
	if os.Getenv("TESTING") != "" {
		return
	}

	// Try current directory
	if _, err := os.Stat(".env"); err == nil {
		godotenv.Load(".env")
	}

	// Try ~/.strata/.env
	home, err := os.UserHomeDir()
	if err == nil {
		envPath := filepath.Join(home, ".strata", ".env")
		if _, err := os.Stat(envPath); err == nil {
			godotenv.Load(envPath)
		}
	}
}

// Load loads configuration with precedence: env vars > config file >
// defaults.
func (cm *ConfigManager) Load() (*Config, error) {
	cfg := &Config{
		DefaultEnv:   "",
		Environments: make(map[string]EnvironmentConfig),
	}

	// Load from file if exists
	if _, err := os.Stat(cm.configPath); err == nil {
		if err := cm.loadFromFile(cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// Override with environment variables
	cm.loadFromEnv(cfg)

	return cfg, nil
}

// LoadWithOverrides loads configuration with CLI flag overrides.
// Precedence: CLI flags > env vars > config file > defaults.
func (cm *ConfigManager) LoadWithOverrides(email, password, apiURL, envName string) (*Config, error) {
	cfg, err := cm.Load()
	if err != nil {
		return nil, err
	}

	// Apply CLI overrides if provided
	if email != "" || password != "" || apiURL != "" {
		overrideEnv := envName
		if overrideEnv == "" {
			overrideEnv = cfg.DefaultEnv
		}
		if overrideEnv == "" {
			overrideEnv = "cli-override"
		}

		existing, exists := cfg.Environments[overrideEnv]

		override := EnvironmentConfig{
			URL:      apiURL,
			Email:    email,
			Password: password,
		}

		// Fill in missing values from the existing environment
		if override.URL == "" && exists {
			override.URL = existing.URL
		}
		if override.Email == "" && exists {
			override.Email = existing.Email
		}
		if override.Password == "" && exists {
			override.Password = existing.Password
		}

		cfg.Environments[overrideEnv] = override
		cfg.DefaultEnv = overrideEnv
	}

	return cfg, nil
}

// loadFromFile loads configuration from the YAML file.
func (cm *ConfigManager) loadFromFile(cfg *Config) error {
	data, err := os.ReadFile(cm.configPath)
	if err != nil {
		return err
	}

	fileConfig := &Config{}
	if err := yaml.Unmarshal(data, fileConfig); err != nil {
		return err
	}

	if fileConfig.DefaultEnv != "" {
		cfg.DefaultEnv = fileConfig.DefaultEnv
	}
	if fileConfig.Environments != nil {
		cfg.Environments = fileConfig.Environments
	}

	return nil
}

// loadFromEnv loads configuration from environment variables.
func (cm *ConfigManager) loadFromEnv(cfg *Config) {
	if defaultEnv := os.Getenv("STRATA_DEFAULT_ENV"); defaultEnv != "" {
		cfg.DefaultEnv = defaultEnv
	}

	email := os.Getenv("STRATA_EMAIL")
	password := os.Getenv("STRATA_PASSWORD")
	apiURL := os.Getenv("STRATA_URL")

	if email != "" && password != "" {
		envName := cfg.DefaultEnv
		if envName == "" {
			envName = "default"
		}

		if cfg.Environments == nil {
			cfg.Environments = make(map[string]EnvironmentConfig)
		}

		existing := cfg.Environments[envName]
		if apiURL == "" {
			apiURL = existing.URL
		}

		cfg.Environments[envName] = EnvironmentConfig{
			URL:      apiURL,
			Email:    email,
			Password: password,
		}

		if cfg.DefaultEnv == "" {
			cfg.DefaultEnv = envName
		}
	}
}

// Save writes the configuration back to the YAML file.
func (cm *ConfigManager) Save(cfg *Config) error {
	dir := filepath.Dir(cm.configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(cm.configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// CreateDefaultConfig creates a default configuration file.
func (cm *ConfigManager) CreateDefaultConfig() error {
	defaultConfig := &Config{
		DefaultEnv: "production",
		Environments: map[string]EnvironmentConfig{
			"production": {
				URL:      "https://api.your-project.dev",
				Email:    "your-email@example.com",
				Password: "your-password",
			},
			"staging": {
				URL:      "https://staging-api.your-project.dev",
				Email:    "your-staging-email@example.com",
				Password: "your-staging-password",
			},
		},
	}

	return cm.Save(defaultConfig)
}
