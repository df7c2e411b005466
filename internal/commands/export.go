package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/strata-experimental/strata-cli/internal/modules/export"
	"github.com/strata-experimental/strata-cli/internal/output"
)

// RegisterExport registers the export command.
func RegisterExport(rootCmd *cobra.Command) {
	var opts export.Options
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a snapshot of collections and items",
		Long: `Export collections, their items, and server metadata to a JSON
snapshot file. Items are collected concurrently per collection.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := GetGlobalFlags(cmd.Context())

			client, err := newSession(cmd.Context(), flags, "")
			if err != nil {
				return err
			}

			module := export.NewModule(client)
			defer module.Close()

			output.VerbosePrintf("Exporting to %s\n", opts.OutputPath)
			result, err := module.Execute(cmd.Context(), opts)
			if err != nil {
				return err
			}

			if !result.Success {
				if format == "json" {
					return output.PrintJSONResult(output.JSONResult{
						Success: false,
						Message: result.Message,
						Error:   result.Error.Error(),
					})
				}
				return fmt.Errorf("%s: %w", result.Message, result.Error)
			}

			if format == "json" {
				return output.PrintJSONResult(output.JSONResult{
					Success: true,
					Message: result.Message,
					Data: map[string]interface{}{
						"output_path": result.OutputPath,
						"collections": result.CollectionsCount,
						"items":       result.ItemsCount,
					},
				})
			}

			output.SuccessPrintln(result.Message)
			output.Printf("Collections: %d\n", result.CollectionsCount)
			output.Printf("Items:       %d\n", result.ItemsCount)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.OutputPath, "output", "o", "", "Output file path (required)")
	cmd.Flags().StringSliceVarP(&opts.Collections, "collection", "c", nil, "Only export the named collections (repeatable)")
	cmd.Flags().BoolVar(&opts.SkipItems, "skip-items", false, "Export collection schemas only, without items")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: json")
	cmd.MarkFlagRequired("output")

	rootCmd.AddCommand(cmd)
}
