package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/strata-experimental/strata-cli/internal/api"
)

// Module handles exporting a snapshot of the API contents.
type Module struct {
	client *api.Client
}

// NewModule creates a new export module around an authenticated client.
func NewModule(client *api.Client) *Module {
	return &Module{
		client: client,
	}
}

// Result represents the result of an export operation.
type Result struct {
	Success          bool
	Message          string
	OutputPath       string
	CollectionsCount int
	ItemsCount       int
	Error            error
}

// Execute performs the export operation.
func (m *Module) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	collector := NewCollector(m.client)
	data, err := collector.Collect(ctx, opts)
	if err != nil {
		return &Result{
			Success: false,
			Message: "Export failed",
			Error:   err,
		}, nil
	}

	if err := writeJSON(data, opts.OutputPath); err != nil {
		return &Result{
			Success: false,
			Message: "Export failed",
			Error:   fmt.Errorf("failed to write output: %w", err),
		}, nil
	}

	itemsCount := 0
	for _, items := range data.Items {
		itemsCount += len(items)
	}

	return &Result{
		Success:          true,
		Message:          fmt.Sprintf("Successfully exported data to %s", opts.OutputPath),
		OutputPath:       opts.OutputPath,
		CollectionsCount: len(data.Collections),
		ItemsCount:       itemsCount,
	}, nil
}

// Close closes the API client.
func (m *Module) Close() error {
	if m.client != nil {
		return m.client.Close()
	}
	return nil
}

// writeJSON writes the snapshot to a single JSON file.
func writeJSON(data *Data, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := os.WriteFile(outputPath, encoded, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	return nil
}
