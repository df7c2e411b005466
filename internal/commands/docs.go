package commands

import (
	"fmt"

	"github.com/cli/browser"
	"github.com/spf13/cobra"
	"github.com/strata-experimental/strata-cli/internal/output"
)

const docsURL = "https://docs.strata.dev/cli"

// RegisterDocs registers the docs command.
func RegisterDocs(rootCmd *cobra.Command) {
	var printOnly bool

	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Open the CLI documentation in a browser",
		RunE: func(cmd *cobra.Command, args []string) error {
			if printOnly {
				output.Println(docsURL)
				return nil
			}

			if err := browser.OpenURL(docsURL); err != nil {
				return fmt.Errorf("failed to open browser: %w", err)
			}
			output.Printf("Opened %s\n", docsURL)
			return nil
		},
	}

	cmd.Flags().BoolVar(&printOnly, "print", false, "Print the URL instead of opening a browser")

	rootCmd.AddCommand(cmd)
}
