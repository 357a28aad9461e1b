// Package pcgw looks up save locations on PCGamingWiki. It implements
// ports.SaveLocator and is a pure data source: callers own caching and
// retries.
package pcgw

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pcsm/internal/ports"
)

// DefaultBaseURL is the MediaWiki API endpoint of PCGamingWiki.
const DefaultBaseURL = "https://www.pcgamingwiki.com/w/api.php"

const saveSectionHeading = "save game data location"

// Client talks to the PCGamingWiki MediaWiki API.
type Client struct {
	baseURL string
	http    *http.Client
}

// Ensure Client implements SaveLocator
var _ ports.SaveLocator = (*Client)(nil)

// NewClient returns a client for the given API base URL, defaulting to the
// public PCGamingWiki endpoint.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// FindHints returns the Windows save-location hints recorded for a game:
// the best-matching wiki page is looked up, its "Save game data location"
// section fetched, and path-shaped strings extracted from the section text.
// An unknown game yields an empty list, not an error.
func (c *Client) FindHints(ctx context.Context, game string) ([]string, error) {
	title, err := c.SearchTitle(ctx, game)
	if err != nil {
		return nil, err
	}
	if title == "" {
		return nil, nil
	}

	idx, err := c.saveSectionIndex(ctx, title)
	if err != nil {
		return nil, err
	}
	if idx == "" {
		return nil, nil
	}

	sectionHTML, err := c.sectionHTML(ctx, title, idx)
	if err != nil {
		return nil, err
	}
	return ExtractWindowsPaths(sectionHTML), nil
}

// SearchTitle returns the best-matching wiki page title for a game name,
// empty when nothing matches.
func (c *Client) SearchTitle(ctx context.Context, game string) (string, error) {
	var raw []json.RawMessage
	err := c.get(ctx, url.Values{
		"action":    {"opensearch"},
		"search":    {game},
		"limit":     {"1"},
		"namespace": {"0"},
		"format":    {"json"},
	}, &raw)
	if err != nil {
		return "", err
	}

	if len(raw) < 2 {
		return "", nil
	}
	var titles []string
	if err := json.Unmarshal(raw[1], &titles); err != nil {
		return "", fmt.Errorf("opensearch response: %w", err)
	}
	if len(titles) == 0 {
		return "", nil
	}
	return titles[0], nil
}

// Suggest returns up to 20 page titles matching a partial game name, for
// autocomplete.
func (c *Client) Suggest(ctx context.Context, query string) ([]string, error) {
	var resp struct {
		Query struct {
			Search []struct {
				Title string `json:"title"`
			} `json:"search"`
		} `json:"query"`
	}
	err := c.get(ctx, url.Values{
		"action":   {"query"},
		"list":     {"search"},
		"srsearch": {query},
		"srlimit":  {"20"},
		"format":   {"json"},
	}, &resp)
	if err != nil {
		return nil, err
	}

	titles := make([]string, 0, len(resp.Query.Search))
	for _, s := range resp.Query.Search {
		titles = append(titles, s.Title)
	}
	return titles, nil
}

// saveSectionIndex finds the section index of the save-location heading on
// a page. An exact heading match wins over a substring match; empty means
// the page has no such section.
func (c *Client) saveSectionIndex(ctx context.Context, title string) (string, error) {
	var resp struct {
		Parse struct {
			Sections []struct {
				Line  string `json:"line"`
				Index string `json:"index"`
			} `json:"sections"`
		} `json:"parse"`
	}
	err := c.get(ctx, url.Values{
		"action": {"parse"},
		"page":   {title},
		"prop":   {"sections"},
		"format": {"json"},
	}, &resp)
	if err != nil {
		return "", err
	}

	for _, s := range resp.Parse.Sections {
		if strings.ToLower(strings.TrimSpace(s.Line)) == saveSectionHeading {
			return s.Index, nil
		}
	}
	for _, s := range resp.Parse.Sections {
		if strings.Contains(strings.ToLower(s.Line), saveSectionHeading) {
			return s.Index, nil
		}
	}
	return "", nil
}

func (c *Client) sectionHTML(ctx context.Context, title, index string) (string, error) {
	var resp struct {
		Parse struct {
			Text struct {
				Content string `json:"*"`
			} `json:"text"`
		} `json:"parse"`
	}
	err := c.get(ctx, url.Values{
		"action":  {"parse"},
		"page":    {title},
		"prop":    {"text"},
		"section": {index},
		"format":  {"json"},
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Parse.Text.Content, nil
}

func (c *Client) get(ctx context.Context, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "pcsm")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("pcgw: unexpected status %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
