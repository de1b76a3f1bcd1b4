// Package releases looks up the latest published release of the app.
package releases

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hashicorp/go-version"

	"github.com/geoconv/geoconv/internal/buildinfo"
)

const DefaultURL = "https://api.github.com/repos/geoconv/geoconv/releases/latest"

type LatestRelease struct {
	Version    string `json:"version"`
	ReleaseURL string `json:"release_url"`
}

// UnmarshalJSON accepts both the plain format and the GitHub releases API
// format (tag_name/html_url).
func (r *LatestRelease) UnmarshalJSON(b []byte) error {
	var v struct {
		Version    string `json:"version"`
		ReleaseURL string `json:"release_url"`
		TagName    string `json:"tag_name"`
		HTMLURL    string `json:"html_url"`
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	r.Version, r.ReleaseURL = v.Version, v.ReleaseURL
	if r.Version == "" {
		r.Version = v.TagName
	}
	if r.ReleaseURL == "" {
		r.ReleaseURL = v.HTMLURL
	}
	return nil
}

// GetLatestVersion retrieves the latest release info from url (DefaultURL if empty).
func GetLatestVersion(ctx context.Context, url string) (*LatestRelease, error) {
	if url == "" {
		url = DefaultURL
	}
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", buildinfo.UserAgent())

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("getting latest version: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var release *LatestRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if release == nil || release.Version == "" {
		return nil, fmt.Errorf("decoding response: missing version")
	}

	return release, nil
}

// Compare compares current against the release version, like
// version.Version.Compare: -1 if a newer release exists, 0 if current is the
// latest and 1 for development versions.
func Compare(current string, release *LatestRelease) (int, error) {
	currentVer, err := version.NewVersion(current)
	if err != nil {
		return 0, fmt.Errorf("invalid version format (current: %s): %w", current, err)
	}
	latestVer, err := version.NewVersion(release.Version)
	if err != nil {
		return 0, fmt.Errorf("invalid version format (latest: %s): %w", release.Version, err)
	}
	return currentVer.Compare(latestVer), nil
}
