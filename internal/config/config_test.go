package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigManager_Load(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	configContent := `default_env: test
environments:
  test:
    url: https://api.example.com
    email: jane@example.com
    password: secret
`
	err := os.WriteFile(configPath, []byte(configContent), 0600)
	if err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	manager := NewConfigManager(configPath)
	cfg, err := manager.Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.DefaultEnv != "test" {
		t.Errorf("Expected default_env 'test', got '%s'", cfg.DefaultEnv)
	}

	if len(cfg.Environments) != 1 {
		t.Errorf("Expected 1 environment, got %d", len(cfg.Environments))
	}

	envConfig, ok := cfg.Environments["test"]
	if !ok {
		t.Fatal("Environment 'test' not found")
	}

	if envConfig.Email != "jane@example.com" {
		t.Errorf("Expected email 'jane@example.com', got '%s'", envConfig.Email)
	}
}

func TestConfigManager_LoadWithOverrides(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	configContent := `default_env: default
environments:
  default:
    url: https://api.example.com
    email: default@example.com
    password: default-password
`
	err := os.WriteFile(configPath, []byte(configContent), 0600)
	if err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	manager := NewConfigManager(configPath)
	cfg, err := manager.LoadWithOverrides("override@example.com", "", "", "override")
	if err != nil {
		t.Fatalf("Failed to load config with overrides: %v", err)
	}

	envConfig, name, err := cfg.GetEnvConfig("override")
	if err != nil {
		t.Fatalf("Failed to get env config: %v", err)
	}

	if name != "override" {
		t.Errorf("Expected environment name 'override', got '%s'", name)
	}
	if envConfig.Email != "override@example.com" {
		t.Errorf("Expected email 'override@example.com', got '%s'", envConfig.Email)
	}
}

func TestConfigManager_OverridesInheritExistingValues(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	configContent := `default_env: production
environments:
  production:
    url: https://api.example.com
    email: jane@example.com
    password: stored-password
`
	if err := os.WriteFile(configPath, []byte(configContent), 0600); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	manager := NewConfigManager(configPath)
	cfg, err := manager.LoadWithOverrides("", "flag-password", "", "")
	if err != nil {
		t.Fatalf("Failed to load config with overrides: %v", err)
	}

	envConfig, _, err := cfg.GetEnvConfig("")
	if err != nil {
		t.Fatalf("Failed to get env config: %v", err)
	}
	if envConfig.Email != "jane@example.com" {
		t.Errorf("Expected stored email kept, got '%s'", envConfig.Email)
	}
	if envConfig.Password != "flag-password" {
		t.Errorf("Expected password overridden, got '%s'", envConfig.Password)
	}
	if envConfig.URL != "https://api.example.com" {
		t.Errorf("Expected stored url kept, got '%s'", envConfig.URL)
	}
}

func TestConfig_GetEnvConfig(t *testing.T) {
	cfg := &Config{
		DefaultEnv: "default",
		Environments: map[string]EnvironmentConfig{
			"default": {
				URL:      "https://api.example.com",
				Email:    "jane@example.com",
				Password: "secret",
			},
		},
	}

	envConfig, name, err := cfg.GetEnvConfig("")
	if err != nil {
		t.Fatalf("Failed to get default env config: %v", err)
	}

	if name != "default" {
		t.Errorf("Expected resolved name 'default', got '%s'", name)
	}
	if envConfig.URL != "https://api.example.com" {
		t.Errorf("Expected url 'https://api.example.com', got '%s'", envConfig.URL)
	}

	// Test error case
	_, _, err = cfg.GetEnvConfig("nonexistent")
	if err == nil {
		t.Error("Expected error for nonexistent environment")
	}
}

func TestConfigManager_CreateDefaultConfig(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	manager := NewConfigManager(configPath)
	err := manager.CreateDefaultConfig()
	if err != nil {
		t.Fatalf("Failed to create default config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}

	cfg, err := manager.Load()
	if err != nil {
		t.Fatalf("Failed to load created config: %v", err)
	}

	if cfg.DefaultEnv != "production" {
		t.Errorf("Expected default_env 'production', got '%s'", cfg.DefaultEnv)
	}
}

func TestConfigManager_Save(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	manager := NewConfigManager(configPath)
	cfg := &Config{
		DefaultEnv: "staging",
		Environments: map[string]EnvironmentConfig{
			"staging": {URL: "https://staging.example.com", Email: "a@b.c", Password: "p"},
		},
	}

	if err := manager.Save(cfg); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	loaded, err := manager.Load()
	if err != nil {
		t.Fatalf("Failed to reload config: %v", err)
	}
	if loaded.DefaultEnv != "staging" {
		t.Errorf("Expected default_env 'staging', got '%s'", loaded.DefaultEnv)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: &Config{
				Environments: map[string]EnvironmentConfig{
					"test": {
						URL:      "https://api.example.com",
						Email:    "jane@example.com",
						Password: "secret",
					},
				},
			},
			wantErr: false,
		},
		{
			name: "no environments",
			config: &Config{
				Environments: map[string]EnvironmentConfig{},
			},
			wantErr: true,
		},
		{
			name: "missing url",
			config: &Config{
				Environments: map[string]EnvironmentConfig{
					"test": {
						Email:    "jane@example.com",
						Password: "secret",
					},
				},
			},
			wantErr: true,
		},
		{
			name: "missing email",
			config: &Config{
				Environments: map[string]EnvironmentConfig{
					"test": {
						URL:      "https://api.example.com",
						Password: "secret",
					},
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
