package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/strata-experimental/strata-cli/internal/api"
	"github.com/strata-experimental/strata-cli/internal/auth"
	"github.com/strata-experimental/strata-cli/internal/output"
)

// RegisterRefresh registers the refresh command.
func RegisterRefresh(rootCmd *cobra.Command) {
	var token string

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Exchange a session token for a fresh one",
		Long: `Exchange a session token for a fresh one and print it.

The exchange is a pure primitive: it does not touch any stored session.
Without --token a new session is created from the configured credentials
and its token is exchanged.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := GetGlobalFlags(cmd.Context())

			var client *api.Client
			if token == "" {
				var err error
				client, err = newSession(cmd.Context(), flags, "")
				if err != nil {
					return err
				}
				defer client.Close()
				token = client.Auth.Session().Token
			} else {
				client = api.NewClient(flags.URL, 0)
				defer client.Close()
			}

			resp, err := client.Auth.Refresh(cmd.Context(), token)
			if err != nil {
				return fmt.Errorf("failed to refresh token: %w", err)
			}

			fresh, err := auth.TokenFromResponse(resp)
			if err != nil {
				return err
			}

			claims := auth.DecodeClaims(fresh)
			output.Println(fresh)
			if !claims.ExpiresAt.IsZero() {
				output.VerbosePrintf("Expires at %s\n", claims.ExpiresAt.Format("2006-01-02 15:04:05 MST"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "Token to exchange (defaults to a freshly created session)")

	rootCmd.AddCommand(cmd)
}
