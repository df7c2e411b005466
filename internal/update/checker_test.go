package update

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		v1, v2 string
		want   int
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.0.0", "1.0.1", -1},
		{"1.2.0", "1.10.0", -1},
		{"2.0.0", "1.9.9", 1},
		{"v1.0.0", "1.0.0", 0},
		{"1.0", "1.0.1", -1},
		{"dev", "1.0.0", -1},
		{"1.0.0", "dev", 1},
	}

	for _, tt := range tests {
		got := compareVersions(tt.v1, tt.v2)
		if got != tt.want {
			t.Errorf("compareVersions(%q, %q) = %d, want %d", tt.v1, tt.v2, got, tt.want)
		}
	}
}

func TestChecker_CheckLatestVersion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"tag_name": "v1.2.0",
			"html_url": "https://example.com/releases/v1.2.0",
		})
	}))
	defer server.Close()

	checker := NewChecker()
	checker.releasesURL = server.URL

	result, err := checker.CheckLatestVersion(context.Background(), "1.0.0")
	if err != nil {
		t.Fatalf("CheckLatestVersion failed: %v", err)
	}

	if result.LatestVersion != "1.2.0" {
		t.Errorf("Expected latest version 1.2.0, got %s", result.LatestVersion)
	}
	if !result.UpdateAvailable {
		t.Error("Expected update to be available")
	}
	if result.DownloadURL != "https://example.com/releases/v1.2.0" {
		t.Errorf("Unexpected download URL: %s", result.DownloadURL)
	}
}

func TestChecker_CheckLatestVersionUpToDate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"tag_name": "v1.0.0",
		})
	}))
	defer server.Close()

	checker := NewChecker()
	checker.releasesURL = server.URL

	result, err := checker.CheckLatestVersion(context.Background(), "1.0.0")
	if err != nil {
		t.Fatalf("CheckLatestVersion failed: %v", err)
	}
	if result.UpdateAvailable {
		t.Error("Expected no update for matching versions")
	}
}
