package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Collection represents a Strata collection.
type Collection map[string]interface{}

// Item represents an item within a collection.
type Item map[string]interface{}

// User represents a Strata user.
type User map[string]interface{}

// ServerInfo represents server metadata.
type ServerInfo map[string]interface{}

// GetCollections retrieves all collections visible to the session.
func (c *Client) GetCollections(ctx context.Context) ([]Collection, error) {
	resp, err := c.request(ctx, http.MethodGet, "/_/collections", nil, nil)
	if err != nil {
		return nil, err
	}

	var result struct {
		Data []Collection `json:"data"`
	}
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode collections: %w", err)
	}

	return result.Data, nil
}

// GetItems retrieves the items of a collection. params are passed
// through as query parameters (filters, limits).
func (c *Client) GetItems(ctx context.Context, collection string, params map[string]string) ([]Item, error) {
	resp, err := c.request(ctx, http.MethodGet, fmt.Sprintf("/_/items/%s", collection), nil, params)
	if err != nil {
		return nil, err
	}

	var result struct {
		Data []Item `json:"data"`
	}
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}

	return result.Data, nil
}

// CreateItem creates a new item in a collection.
func (c *Client) CreateItem(ctx context.Context, collection string, item Item) (Item, error) {
	resp, err := c.request(ctx, http.MethodPost, fmt.Sprintf("/_/items/%s", collection), item, nil)
	if err != nil {
		return nil, err
	}

	var result struct {
		Data Item `json:"data"`
	}
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode item: %w", err)
	}

	return result.Data, nil
}

// DeleteItem deletes an item from a collection.
func (c *Client) DeleteItem(ctx context.Context, collection, id string) error {
	_, err := c.request(ctx, http.MethodDelete, fmt.Sprintf("/_/items/%s/%s", collection, id), nil, nil)
	return err
}

// GetCurrentUser retrieves the user the session belongs to.
func (c *Client) GetCurrentUser(ctx context.Context) (User, error) {
	resp, err := c.request(ctx, http.MethodGet, "/_/users/me", nil, nil)
	if err != nil {
		return nil, err
	}

	var result struct {
		Data User `json:"data"`
	}
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}

	return result.Data, nil
}

// GetServerInfo retrieves server metadata (version, project name).
func (c *Client) GetServerInfo(ctx context.Context) (ServerInfo, error) {
	resp, err := c.request(ctx, http.MethodGet, "/_/server/info", nil, nil)
	if err != nil {
		return nil, err
	}

	var result struct {
		Data ServerInfo `json:"data"`
	}
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode server info: %w", err)
	}

	return result.Data, nil
}
