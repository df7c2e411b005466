package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/strata-experimental/strata-cli/internal/config"
	"github.com/strata-experimental/strata-cli/internal/output"
)

// RegisterLogout registers the logout command.
func RegisterLogout(rootCmd *cobra.Command) {
	var all bool

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Remove stored credentials",
		Long: `Remove stored credentials from the configuration file.

By default only the password of the selected environment is removed.
With --all the whole environment entry is deleted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := GetGlobalFlags(cmd.Context())
			configManager := config.NewConfigManager(flags.ConfigFile)

			cfg, err := configManager.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			envName := flags.Environment
			if envName == "" {
				envName = cfg.DefaultEnv
			}
			envConfig, ok := cfg.Environments[envName]
			if !ok {
				output.Printf("No stored credentials for environment '%s'\n", envName)
				return nil
			}

			if all {
				delete(cfg.Environments, envName)
				if cfg.DefaultEnv == envName {
					cfg.DefaultEnv = ""
				}
			} else {
				envConfig.Password = ""
				cfg.Environments[envName] = envConfig
			}

			if err := configManager.Save(cfg); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			output.SuccessPrintln(fmt.Sprintf("Logged out of environment '%s'", envName))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Delete the whole environment entry, not just the password")

	rootCmd.AddCommand(cmd)
}
