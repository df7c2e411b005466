package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/strata-experimental/strata-cli/internal/output"
	"github.com/strata-experimental/strata-cli/internal/update"
)

// BuildInfo holds build-time information
type BuildInfo struct {
	Version   string
	BuildDate string
	Commit    string
	GoVersion string
	Platform  string
}

var buildInfo = BuildInfo{
	Version:   "dev",
	BuildDate: "unknown",
	Commit:    "unknown",
	GoVersion: runtime.Version(),
	Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
}

// SetBuildInfo sets build information (called from main.go)
func SetBuildInfo(info BuildInfo) {
	buildInfo = info
}

// RegisterVersion registers the version command.
func RegisterVersion(rootCmd *cobra.Command) {
	var checkUpdate bool

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show the CLI version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("Strata CLI version %s\n", buildInfo.Version)
			fmt.Printf("Build date: %s\n", buildInfo.BuildDate)
			fmt.Printf("Git commit: %s\n", buildInfo.Commit)
			fmt.Printf("Go version: %s\n", buildInfo.GoVersion)
			fmt.Printf("Platform: %s\n", buildInfo.Platform)

			if !checkUpdate {
				return nil
			}

			checker := update.NewChecker()
			result, err := checker.CheckLatestVersion(cmd.Context(), buildInfo.Version)
			if err != nil {
				return fmt.Errorf("failed to check for updates: %w", err)
			}
			if result.UpdateAvailable {
				output.WarningPrintln(fmt.Sprintf("Update available: %s -> %s", result.CurrentVersion, result.LatestVersion))
				output.Printf("Download: %s\n", result.DownloadURL)
			} else {
				output.Println("You are on the latest version.")
			}
			return nil
		},
	}

	versionCmd.Flags().BoolVar(&checkUpdate, "check", false, "Check for a newer release")

	rootCmd.AddCommand(versionCmd)
}
