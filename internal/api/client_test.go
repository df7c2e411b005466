package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/strata-experimental/strata-cli/internal/auth"
)

func tokenHandler(token string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]map[string]string{"data": {"token": token}})
	}
}

func TestNewClient_DefaultURL(t *testing.T) {
	client := NewClient("", 0)

	if got := client.Auth.Session().BaseURL; got != DefaultAPIURL {
		t.Errorf("Expected default apiURL %q, got %q", DefaultAPIURL, got)
	}
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	client := NewClient("https://api.example.com/", 0)

	if got := client.Auth.Session().BaseURL; got != "https://api.example.com" {
		t.Errorf("Expected trailing slash removed, got %q", got)
	}
}

func TestClient_LoginAgainstServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/_/auth/authenticate" {
			t.Errorf("Expected path '/_/auth/authenticate', got %q", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("Expected method POST, got %q", r.Method)
		}

		var payload map[string]string
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("Failed to decode request body: %v", err)
		}
		if payload["email"] != "jane@example.com" || payload["password"] != "secret" {
			t.Errorf("Unexpected credentials payload: %v", payload)
		}

		tokenHandler("test-session-token")(w, r)
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)

	result, err := client.Auth.Login(context.Background(), &auth.Credentials{
		Email:    "jane@example.com",
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if result.Token != "test-session-token" {
		t.Errorf("Expected token 'test-session-token', got %q", result.Token)
	}
}

func TestClient_RequestCarriesBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/_/auth/authenticate" {
			tokenHandler("bearer-token")(w, r)
			return
		}

		if got := r.Header.Get("Authorization"); got != "Bearer bearer-token" {
			t.Errorf("Expected Authorization 'Bearer bearer-token', got %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]interface{}{{"collection": "articles"}},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	if _, err := client.Auth.Login(context.Background(), &auth.Credentials{Email: "a@b.c", Password: "p"}); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	collections, err := client.GetCollections(context.Background())
	if err != nil {
		t.Fatalf("GetCollections failed: %v", err)
	}
	if len(collections) != 1 || collections[0]["collection"] != "articles" {
		t.Errorf("Unexpected collections: %v", collections)
	}
}

func TestClient_RequestRequiresSession(t *testing.T) {
	client := NewClient("https://api.example.com", 0)

	_, err := client.GetCollections(context.Background())
	if !errors.Is(err, auth.ErrNotAuthenticated) {
		t.Errorf("Expected ErrNotAuthenticated, got %v", err)
	}
}

func TestClient_GetItemsPassesParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/_/auth/authenticate" {
			tokenHandler("t")(w, r)
			return
		}

		if r.URL.Path != "/_/items/articles" {
			t.Errorf("Expected path '/_/items/articles', got %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("limit"); got != "10" {
			t.Errorf("Expected limit=10 query param, got %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]interface{}{{"id": "1"}},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	if _, err := client.Auth.Login(context.Background(), &auth.Credentials{Email: "a@b.c", Password: "p"}); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	items, err := client.GetItems(context.Background(), "articles", map[string]string{"limit": "10"})
	if err != nil {
		t.Fatalf("GetItems failed: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("Expected 1 item, got %d", len(items))
	}
}

func TestClient_Close(t *testing.T) {
	client := NewClient("https://api.example.com", 0)

	if err := client.Close(); err != nil {
		t.Errorf("Close() returned error: %v", err)
	}
}
