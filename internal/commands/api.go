package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/strata-experimental/strata-cli/internal/api"
	"github.com/strata-experimental/strata-cli/internal/output"
	"gopkg.in/yaml.v3"
)

// RegisterAPI registers the api command group for raw resource access.
func RegisterAPI(rootCmd *cobra.Command) {
	apiCmd := &cobra.Command{
		Use:   "api",
		Short: "Query API resources directly",
	}

	apiCmd.AddCommand(newCollectionsCommand())
	apiCmd.AddCommand(newItemsCommand())

	rootCmd.AddCommand(apiCmd)
}

func newCollectionsCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "collections",
		Short: "List collections",
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := GetGlobalFlags(cmd.Context())
			client, err := newSession(cmd.Context(), flags, "")
			if err != nil {
				return err
			}
			defer client.Close()

			collections, err := client.GetCollections(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list collections: %w", err)
			}

			return printFormatted(collections, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json, yaml")
	return cmd
}

func newItemsCommand() *cobra.Command {
	itemsCmd := &cobra.Command{
		Use:   "items",
		Short: "Work with collection items",
	}

	var listFormat string
	var listParams []string
	listCmd := &cobra.Command{
		Use:   "list <collection>",
		Short: "List items of a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := GetGlobalFlags(cmd.Context())
			client, err := newSession(cmd.Context(), flags, "")
			if err != nil {
				return err
			}
			defer client.Close()

			params, err := parseParams(listParams)
			if err != nil {
				return err
			}

			items, err := client.GetItems(cmd.Context(), args[0], params)
			if err != nil {
				return fmt.Errorf("failed to list items of '%s': %w", args[0], err)
			}

			return printFormatted(items, listFormat)
		},
	}
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "json", "Output format: json, yaml")
	listCmd.Flags().StringArrayVarP(&listParams, "param", "p", nil, "Query parameter as key=value (repeatable)")

	var createBody string
	createCmd := &cobra.Command{
		Use:   "create <collection>",
		Short: "Create an item in a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := GetGlobalFlags(cmd.Context())
			client, err := newSession(cmd.Context(), flags, "")
			if err != nil {
				return err
			}
			defer client.Close()

			var item api.Item
			if err := json.Unmarshal([]byte(createBody), &item); err != nil {
				return fmt.Errorf("invalid item JSON: %w", err)
			}

			created, err := client.CreateItem(cmd.Context(), args[0], item)
			if err != nil {
				return fmt.Errorf("failed to create item in '%s': %w", args[0], err)
			}

			return output.PrintJSON(created)
		},
	}
	createCmd.Flags().StringVarP(&createBody, "body", "b", "{}", "Item payload as JSON")

	deleteCmd := &cobra.Command{
		Use:   "delete <collection> <id>",
		Short: "Delete an item from a collection",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := GetGlobalFlags(cmd.Context())
			client, err := newSession(cmd.Context(), flags, "")
			if err != nil {
				return err
			}
			defer client.Close()

			if err := client.DeleteItem(cmd.Context(), args[0], args[1]); err != nil {
				return fmt.Errorf("failed to delete item '%s': %w", args[1], err)
			}

			output.SuccessPrintln(fmt.Sprintf("Deleted %s/%s", args[0], args[1]))
			return nil
		},
	}

	itemsCmd.AddCommand(listCmd)
	itemsCmd.AddCommand(createCmd)
	itemsCmd.AddCommand(deleteCmd)
	return itemsCmd
}

// parseParams converts repeated key=value flags into a parameter map.
func parseParams(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	params := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid parameter '%s', expected key=value", pair)
		}
		params[key] = value
	}
	return params, nil
}

// printFormatted renders data as json or yaml.
func printFormatted(data interface{}, format string) error {
	switch format {
	case "yaml":
		encoded, err := yaml.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		output.Print("%s", string(encoded))
		return nil
	case "json", "":
		return output.PrintJSON(data)
	default:
		return fmt.Errorf("unsupported format '%s', expected json or yaml", format)
	}
}
