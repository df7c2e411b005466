package commands

import (
	"context"
	"fmt"

	"github.com/strata-experimental/strata-cli/internal/api"
	"github.com/strata-experimental/strata-cli/internal/auth"
	"github.com/strata-experimental/strata-cli/internal/config"
)

// newSession resolves credentials from flags, environment variables and
// the config file, creates a client, and logs in for the lifetime of a
// single command invocation. The session lives in-process only; nothing
// is persisted to disk.
func newSession(ctx context.Context, flags GlobalFlags, envName string) (*api.Client, error) {
	if envName == "" {
		envName = flags.Environment
	}

	configManager := config.NewConfigManager(flags.ConfigFile)
	cfg, err := configManager.LoadWithOverrides(flags.Email, flags.Password, flags.URL, envName)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	envConfig, resolvedName, err := cfg.GetEnvConfig(envName)
	if err != nil {
		return nil, err
	}

	client := api.NewClient(envConfig.URL, 0)
	_, err = client.Auth.Login(ctx, &auth.Credentials{
		Email:       envConfig.Email,
		Password:    envConfig.Password,
		URL:         envConfig.URL,
		Environment: resolvedName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}

	return client, nil
}
