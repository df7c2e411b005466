package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/strata-experimental/strata-cli/internal/config"
	"github.com/strata-experimental/strata-cli/internal/output"
)

// RegisterConfig registers the config command.
func RegisterConfig(rootCmd *cobra.Command) {
	var initConfig bool
	var show bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long: `Manage the CLI configuration file.

Use --init to create a starter configuration, --show to display the
resolved configuration with passwords masked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := GetGlobalFlags(cmd.Context())
			configManager := config.NewConfigManager(flags.ConfigFile)

			if initConfig {
				if err := configManager.CreateDefaultConfig(); err != nil {
					return fmt.Errorf("failed to create config: %w", err)
				}
				output.SuccessPrintln(fmt.Sprintf("Created %s", configManager.ConfigPath()))
				output.Println("Edit the file and fill in your credentials.")
				return nil
			}

			if show {
				cfg, err := configManager.Load()
				if err != nil {
					return fmt.Errorf("failed to load configuration: %w", err)
				}

				output.Printf("Config file: %s\n", configManager.ConfigPath())
				output.Printf("Default environment: %s\n\n", cfg.DefaultEnv)
				for name, env := range cfg.Environments {
					output.Printf("%s:\n", output.Cyan(name))
					output.Printf("  url:      %s\n", env.URL)
					output.Printf("  email:    %s\n", env.Email)
					output.Printf("  password: %s\n", maskSecret(env.Password))
				}
				return nil
			}

			return cmd.Help()
		},
	}

	cmd.Flags().BoolVar(&initConfig, "init", false, "Create a starter configuration file")
	cmd.Flags().BoolVar(&show, "show", false, "Show the resolved configuration")

	rootCmd.AddCommand(cmd)
}

func maskSecret(secret string) string {
	if secret == "" {
		return "(not set)"
	}
	return "********"
}
