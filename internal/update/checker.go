package update

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const defaultReleasesURL = "https://api.github.com/repos/strata-experimental/strata-cli/releases/latest"

// CheckResult represents the result of an update check.
type CheckResult struct {
	LatestVersion   string
	CurrentVersion  string
	UpdateAvailable bool
	DownloadURL     string
	Error           error
}

// Checker checks for newer releases on GitHub.
type Checker struct {
	httpClient  *http.Client
	releasesURL string
}

// NewChecker creates a new update checker.
func NewChecker() *Checker {
	return &Checker{
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		releasesURL: defaultReleasesURL,
	}
}

// CheckLatestVersion checks for the latest version on GitHub.
func (c *Checker) CheckLatestVersion(ctx context.Context, currentVersion string) (*CheckResult, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.releasesURL, nil)
	if err != nil {
		return &CheckResult{
			CurrentVersion: currentVersion,
			Error:          err,
		}, err
	}

	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &CheckResult{
			CurrentVersion: currentVersion,
			Error:          err,
		}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("failed to fetch releases: %s", resp.Status)
		return &CheckResult{
			CurrentVersion: currentVersion,
			Error:          err,
		}, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &CheckResult{
			CurrentVersion: currentVersion,
			Error:          err,
		}, err
	}

	var release struct {
		TagName string `json:"tag_name"`
		HTMLURL string `json:"html_url"`
	}

	if err := json.Unmarshal(body, &release); err != nil {
		return &CheckResult{
			CurrentVersion: currentVersion,
			Error:          err,
		}, err
	}

	latestVersion := strings.TrimPrefix(release.TagName, "v")

	return &CheckResult{
		LatestVersion:   latestVersion,
		CurrentVersion:  currentVersion,
		UpdateAvailable: compareVersions(currentVersion, latestVersion) < 0,
		DownloadURL:     release.HTMLURL,
	}, nil
}

// compareVersions compares two version strings.
// Returns -1 if v1 < v2, 0 if v1 == v2, 1 if v1 > v2.
func compareVersions(v1, v2 string) int {
	v1 = strings.TrimPrefix(strings.TrimSpace(v1), "v")
	v2 = strings.TrimPrefix(strings.TrimSpace(v2), "v")

	// Dev builds always count as older than a release
	if v1 == "dev" {
		return -1
	}
	if v2 == "dev" {
		return 1
	}

	parts1 := strings.Split(v1, ".")
	parts2 := strings.Split(v2, ".")

	maxLen := len(parts1)
	if len(parts2) > maxLen {
		maxLen = len(parts2)
	}

	for i := 0; i < maxLen; i++ {
		var n1, n2 int
		if i < len(parts1) {
			n1, _ = strconv.Atoi(parts1[i])
		}
		if i < len(parts2) {
			n2, _ = strconv.Atoi(parts2[i])
		}

		if n1 < n2 {
			return -1
		}
		if n1 > n2 {
			return 1
		}
	}

	return 0
}
