package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/strata-experimental/strata-cli/internal/commands"
	"github.com/strata-experimental/strata-cli/internal/output"
)

var (
	version   = "0.1.0"
	buildDate = "unknown"
	commit    = "unknown"
)

func init() {
	// Try to get build info from runtime
	if info, ok := debug.ReadBuildInfo(); ok {
		if version == "dev" {
			for _, setting := range info.Settings {
				if setting.Key == "vcs.revision" && commit == "unknown" {
					commit = setting.Value
					if len(commit) > 7 {
						commit = commit[:7]
					}
				}
				if setting.Key == "vcs.time" && buildDate == "unknown" {
					buildDate = setting.Value
				}
			}
		}
	}

	commands.SetBuildInfo(commands.BuildInfo{
		Version:   version,
		BuildDate: buildDate,
		Commit:    commit,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	})
}

func main() {
	var rootCmd = &cobra.Command{
		Use:   "strata",
		Short: "Strata CLI - Command-line interface for the Strata API",
		Long: `Strata CLI - Command-line interface for the Strata API

Manage sessions, query collections and items, and export snapshots.

Credentials can be provided via:
  1. CLI flags (--email, --password, --url) - highest priority
  2. Environment variables (STRATA_EMAIL, STRATA_PASSWORD, STRATA_URL)
  3. Configuration file (~/.strata/config.yaml)`,
		Version: version,
	}

	// Global flags
	var (
		configFile  string
		apiURL      string
		email       string
		password    string
		environment string
		debugFlag   bool
		noColor     bool
		quiet       bool
		verbose     bool
	)

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&apiURL, "url", "", "API URL (overrides config/env)")
	rootCmd.PersistentFlags().StringVar(&email, "email", "", "Account email (overrides config/env)")
	rootCmd.PersistentFlags().StringVar(&password, "password", "", "Account password (overrides config/env)")
	rootCmd.PersistentFlags().StringVarP(&environment, "environment", "e", "", "Named environment from the configuration file")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false, "Enable debug mode")
	rootCmd.PersistentFlags().MarkHidden("debug")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable color output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-error output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	// Store global flags in context and initialize color output
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		output.Init(noColor)

		if quiet {
			output.SetVerbosity(output.QuietLevel)
		} else if verbose {
			output.SetVerbosity(output.VerboseLevel)
		} else {
			output.SetVerbosity(output.NormalLevel)
		}

		cmd.SetContext(commands.WithGlobalFlags(cmd.Context(), commands.GlobalFlags{
			ConfigFile:  configFile,
			URL:         apiURL,
			Email:       email,
			Password:    password,
			Environment: environment,
			Debug:       debugFlag,
			NoColor:     noColor,
			Quiet:       quiet,
			Verbose:     verbose,
		}))
	}

	// Add subcommands
	commands.RegisterLogin(rootCmd)
	commands.RegisterLogout(rootCmd)
	commands.RegisterRefresh(rootCmd)
	commands.RegisterWhoami(rootCmd)
	commands.RegisterAPI(rootCmd)
	commands.RegisterExport(rootCmd)
	commands.RegisterConfig(rootCmd)
	commands.RegisterDocs(rootCmd)
	commands.RegisterVersion(rootCmd)
	commands.RegisterCompletion(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		// Initialize output in case PreRun didn't execute
		output.Init(false)
		output.SetVerbosity(output.NormalLevel)
		formattedErr := output.FormatError(err)
		if formattedErr != "" {
			output.ErrorPrintf("%s\n", formattedErr)
		} else {
			output.ErrorPrintf("%s: %v\n", output.Error("Error"), err)
		}
		os.Exit(1)
	}
}
