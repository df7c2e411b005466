package export

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/strata-experimental/strata-cli/internal/api"
	"golang.org/x/sync/errgroup"
)

// Options represents export options.
type Options struct {
	OutputPath  string
	Collections []string
	SkipItems   bool
}

// Validate validates export options.
func (o *Options) Validate() error {
	if o.OutputPath == "" {
		return fmt.Errorf("output_path is required")
	}
	return nil
}

// Data represents a collected snapshot.
type Data struct {
	Collections []api.Collection      `json:"collections"`
	Items       map[string][]api.Item `json:"items"`
	Server      api.ServerInfo        `json:"server"`
}

// Collector collects a snapshot from the API concurrently.
type Collector struct {
	client *api.Client
}

// NewCollector creates a new collector.
func NewCollector(client *api.Client) *Collector {
	return &Collector{
		client: client,
	}
}

// Collect retrieves collections, then their items concurrently.
func (c *Collector) Collect(ctx context.Context, opts Options) (*Data, error) {
	data := &Data{
		Collections: []api.Collection{},
		Items:       make(map[string][]api.Item),
	}

	// Collections come first; everything else hangs off them.
	allCollections, err := c.client.GetCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get collections: %w", err)
	}

	if len(opts.Collections) > 0 {
		wanted := make(map[string]bool)
		for _, name := range opts.Collections {
			wanted[name] = true
		}
		for _, coll := range allCollections {
			if name, ok := coll["collection"].(string); ok && wanted[name] {
				data.Collections = append(data.Collections, coll)
			}
		}
	} else {
		data.Collections = allCollections
	}

	g, ctx := errgroup.WithContext(ctx)
	var mu sync.Mutex

	if !opts.SkipItems {
		for _, collection := range data.Collections {
			name, ok := collection["collection"].(string)
			if !ok {
				continue
			}

			g.Go(func() error {
				items, err := c.client.GetItems(ctx, name, nil)
				if err != nil {
					// System collections without item access report 403
					var apiErr *api.APIError
					if errors.As(err, &apiErr) && apiErr.Status == http.StatusForbidden {
						return nil
					}
					return fmt.Errorf("failed to get items for collection %s: %w", name, err)
				}

				mu.Lock()
				data.Items[name] = items
				mu.Unlock()
				return nil
			})
		}
	}

	g.Go(func() error {
		info, err := c.client.GetServerInfo(ctx)
		if err != nil {
			return fmt.Errorf("failed to get server info: %w", err)
		}

		mu.Lock()
		data.Server = info
		mu.Unlock()
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return data, nil
}
