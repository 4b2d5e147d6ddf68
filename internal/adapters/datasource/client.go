// Package datasource is the pull-based client dashboards use to read the
// inventory API. Responses are cached as raw JSON so repeated renders within
// the TTL never hit the server.
package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/poyrazK/dnsaudit/internal/core/domain"
	"github.com/poyrazK/dnsaudit/internal/core/ports"
)

// Client fetches inventory data over HTTP with a cache in front.
type Client struct {
	baseURL string
	http    *http.Client
	cache   ports.Cache
	ttl     time.Duration
}

// NewClient creates a Client for the API at baseURL. Cached responses live
// for ttl before the next call re-fetches.
func NewClient(baseURL string, cache ports.Cache, ttl time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		cache:   cache,
		ttl:     ttl,
	}
}

// Summary fetches the estate-wide statistics.
func (c *Client) Summary(ctx context.Context) (domain.Summary, error) {
	var out domain.Summary
	err := c.get(ctx, "/api/summary", &out)
	return out, err
}

// BusinessUnits fetches the per-unit roll-up statistics.
func (c *Client) BusinessUnits(ctx context.Context) (map[string]domain.BusinessUnitStats, error) {
	var out map[string]domain.BusinessUnitStats
	err := c.get(ctx, "/api/business-units", &out)
	return out, err
}

// BusinessUnit fetches the detailed view of a single unit.
func (c *Client) BusinessUnit(ctx context.Context, name string) (domain.BusinessUnit, error) {
	var out domain.BusinessUnit
	err := c.get(ctx, "/api/business-units/"+url.PathEscape(name), &out)
	return out, err
}

// Systems fetches all systems across all business units.
func (c *Client) Systems(ctx context.Context) ([]domain.System, error) {
	var out []domain.System
	err := c.get(ctx, "/api/systems", &out)
	return out, err
}

// SystemsWithIssues fetches the systems carrying at least one issue.
func (c *Client) SystemsWithIssues(ctx context.Context) ([]domain.System, error) {
	var out []domain.System
	err := c.get(ctx, "/api/systems/issues", &out)
	return out, err
}

// Certificates fetches the processed certificate expiry data.
func (c *Client) Certificates(ctx context.Context) ([]domain.CertStatus, error) {
	var out []domain.CertStatus
	err := c.get(ctx, "/api/certificates", &out)
	return out, err
}

// get resolves path against the cache first, then the API. Fresh responses
// are stored back under the path as key.
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	if body, ok := c.cache.Get(ctx, path); ok {
		return json.Unmarshal(body, out)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", path, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetching %s: unexpected status %d", path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response for %s: %w", path, err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding response for %s: %w", path, err)
	}

	c.cache.Set(ctx, path, body, c.ttl)
	return nil
}
