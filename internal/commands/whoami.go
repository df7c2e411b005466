package commands

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"github.com/strata-experimental/strata-cli/internal/api"
	"github.com/strata-experimental/strata-cli/internal/auth"
	"github.com/strata-experimental/strata-cli/internal/output"
	"golang.org/x/sync/errgroup"
)

var (
	whoamiLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")).Width(12)
	whoamiValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
)

// RegisterWhoami registers the whoami command.
func RegisterWhoami(rootCmd *cobra.Command) {
	var format string

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session and user",
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := GetGlobalFlags(cmd.Context())

			client, err := newSession(cmd.Context(), flags, "")
			if err != nil {
				return err
			}
			defer client.Close()

			var (
				user api.User
				info api.ServerInfo
			)
			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				var err error
				user, err = client.GetCurrentUser(ctx)
				return err
			})
			g.Go(func() error {
				var err error
				info, err = client.GetServerInfo(ctx)
				return err
			})
			if err := g.Wait(); err != nil {
				return fmt.Errorf("failed to query session identity: %w", err)
			}

			session := client.Auth.Session()
			if format == "json" {
				return output.PrintJSON(map[string]interface{}{
					"environment": session.Environment,
					"url":         session.BaseURL,
					"user":        user,
					"server":      info,
				})
			}

			printWhoamiRow("Environment", session.Environment)
			printWhoamiRow("URL", session.BaseURL)
			printWhoamiRow("Email", stringField(user, "email"))
			printWhoamiRow("User ID", stringField(user, "id"))
			printWhoamiRow("Server", stringField(info, "version"))
			if claims := auth.DecodeClaims(session.Token); !claims.ExpiresAt.IsZero() {
				printWhoamiRow("Token exp", claims.ExpiresAt.Format("2006-01-02 15:04:05 MST"))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: json")

	rootCmd.AddCommand(cmd)
}

func printWhoamiRow(label, value string) {
	if value == "" {
		value = "-"
	}
	output.Printf("%s %s\n", whoamiLabelStyle.Render(label), whoamiValueStyle.Render(value))
}

func stringField(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}
