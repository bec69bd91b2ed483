// Package portal queries the faculty's schedule portal and parses its result tables.
package portal

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/javiermolinar/horario/internal/debuglog"
	"github.com/javiermolinar/horario/internal/schedule"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Client handles form submissions to the portal's PHP endpoints.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cycle      string
	cache      *Cache
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithCache reuses responses stored in cache.
func WithCache(cache *Cache) Option {
	return func(c *Client) { c.cache = cache }
}

// NewClient creates a portal client for the given base URL and school cycle.
func NewClient(baseURL, cycle string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		cycle:      cycle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Query posts a form to an endpoint under /hor/ and returns the response body.
// Every request carries estu=0 and the configured cycle.
func (c *Client) Query(ctx context.Context, endpoint string, extra url.Values) (string, error) {
	form := url.Values{}
	form.Set("estu", "0")
	form.Set("qsemac", c.cycle)
	for k, vs := range extra {
		form[k] = vs
	}

	key := endpoint + "?" + form.Encode()
	if c.cache != nil {
		if body, ok := c.cache.Get(key); ok {
			debuglog.Log("PORTAL_CACHE_HIT", map[string]any{"endpoint": endpoint})
			return body, nil
		}
	}

	endpointURL := fmt.Sprintf("%s/hor/%s", c.baseURL, endpoint)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpointURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	req.Header.Set("Referer", c.baseURL+"/index.php")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		debuglog.LogError("portal query "+endpoint, err)
		return "", fmt.Errorf("fetching %s: %w", endpointURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	debuglog.Log("PORTAL_REQUEST", map[string]any{
		"endpoint": endpoint,
		"status":   resp.StatusCode,
		"ms":       time.Since(start).Milliseconds(),
	})

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code %d when fetching %s", resp.StatusCode, endpointURL)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	body := string(data)

	if c.cache != nil {
		if err := c.cache.Put(key, body); err != nil {
			debuglog.LogError("portal cache write", err)
		}
	}
	return body, nil
}

// Search runs a search and parses the result table into sections.
func (c *Client) Search(ctx context.Context, s Search) ([]*schedule.Section, error) {
	body, err := c.Query(ctx, s.Endpoint, s.Form)
	if err != nil {
		return nil, err
	}
	sections, err := Parse(strings.NewReader(body), s.Mode)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.Endpoint, err)
	}
	return sections, nil
}
