// Package update checks GitHub for a newer released version.
package update

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"time"
)

// DefaultReleaseURL points at the latest-release endpoint for this project.
const DefaultReleaseURL = "https://api.github.com/repos/pcsm/pcsm/releases/latest"

// Checker queries a GitHub latest-release endpoint.
type Checker struct {
	url  string
	http *http.Client
}

// NewChecker returns a checker for the given endpoint, defaulting to this
// project's release feed.
func NewChecker(url string) *Checker {
	if url == "" {
		url = DefaultReleaseURL
	}
	return &Checker{
		url:  url,
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

// Result describes the outcome of an update check.
type Result struct {
	Current   string
	Latest    string
	UpdateURL string
	Outdated  bool
}

// Check fetches the latest published release and compares it with the
// running version. Tag prefixes like "v" are ignored when comparing.
func (c *Checker) Check(ctx context.Context, current string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "pcsm")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("release check: unexpected status %s", resp.Status)
	}

	var release struct {
		TagName string `json:"tag_name"`
		HTMLURL string `json:"html_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("release check: %w", err)
	}

	return &Result{
		Current:   current,
		Latest:    release.TagName,
		UpdateURL: release.HTMLURL,
		Outdated:  versionLess(current, release.TagName),
	}, nil
}

var versionDigits = regexp.MustCompile(`\d+`)

// versionTuple extracts the numeric components of a version string, so
// "v1.10.2" becomes [1 10 2]. Non-numeric text is ignored.
func versionTuple(v string) []int {
	parts := versionDigits.FindAllString(v, -1)
	nums := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			continue
		}
		nums = append(nums, n)
	}
	return nums
}

// versionLess reports whether a is an older version than b.
func versionLess(a, b string) bool {
	av, bv := versionTuple(a), versionTuple(b)
	if len(bv) == 0 {
		return false
	}
	for i := 0; i < len(av) && i < len(bv); i++ {
		if av[i] != bv[i] {
			return av[i] < bv[i]
		}
	}
	return len(av) < len(bv)
}
