package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"charm.land/huh/v2"
	"github.com/spf13/cobra"
	"github.com/strata-experimental/strata-cli/internal/api"
	"github.com/strata-experimental/strata-cli/internal/auth"
	"github.com/strata-experimental/strata-cli/internal/config"
	"github.com/strata-experimental/strata-cli/internal/output"
)

// RegisterLogin registers the login command.
func RegisterLogin(rootCmd *cobra.Command) {
	var persist bool
	var format string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the Strata API",
		Long: `Authenticate against the Strata API and print the session token.

Credentials are resolved from CLI flags, environment variables
(STRATA_EMAIL, STRATA_PASSWORD, STRATA_URL), or the configuration file.
Missing credentials are prompted for interactively.

With --persist the command stays in the foreground and keeps the session
alive by refreshing the token in the background until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := GetGlobalFlags(cmd.Context())
			configManager := config.NewConfigManager(flags.ConfigFile)

			cfg, err := configManager.LoadWithOverrides(flags.Email, flags.Password, flags.URL, flags.Environment)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			var envConfig config.EnvironmentConfig
			envName := flags.Environment
			if resolved, resolvedName, err := cfg.GetEnvConfig(flags.Environment); err == nil {
				envConfig = *resolved
				envName = resolvedName
			}

			if envConfig.Email == "" || envConfig.Password == "" {
				if err := promptCredentials(&envConfig); err != nil {
					return err
				}
			}

			client := api.NewClient(envConfig.URL, 0)
			result, err := client.Auth.Login(cmd.Context(), &auth.Credentials{
				Email:       envConfig.Email,
				Password:    envConfig.Password,
				URL:         envConfig.URL,
				Environment: envName,
				Persist:     persist,
			})
			if err != nil {
				return fmt.Errorf("failed to authenticate: %w", err)
			}

			if format == "json" {
				if err := output.PrintJSON(result); err != nil {
					return err
				}
			} else {
				output.SuccessPrintln("Logged in")
				output.Printf("URL:         %s\n", result.URL)
				output.Printf("Environment: %s\n", result.Environment)
				output.Printf("Token:       %s\n", result.Token)
			}

			if !persist {
				return nil
			}

			// Keep the session alive until interrupted; failed background
			// refreshes are reported but never kill the loop.
			client.Auth.OnAutoRefreshError(func(err error) {
				output.ErrorPrintf("%s: %v\n", output.Warning("auto-refresh failed"), err)
			})

			output.Println("Keeping session alive. Press Ctrl+C to log out.")
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			<-ctx.Done()

			client.Auth.Logout()
			output.Println("\nLogged out.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&persist, "persist", false, "Keep the session alive with background token refresh")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: json")

	rootCmd.AddCommand(cmd)
}

// promptCredentials asks for whatever is still missing.
func promptCredentials(envConfig *config.EnvironmentConfig) error {
	var fields []huh.Field
	if envConfig.URL == "" {
		fields = append(fields, huh.NewInput().
			Title("API URL").
			Placeholder(api.DefaultAPIURL).
			Value(&envConfig.URL))
	}
	if envConfig.Email == "" {
		fields = append(fields, huh.NewInput().
			Title("Email").
			Value(&envConfig.Email))
	}
	if envConfig.Password == "" {
		fields = append(fields, huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&envConfig.Password))
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	if err := form.Run(); err != nil {
		return fmt.Errorf("credential prompt aborted: %w", err)
	}
	return nil
}
