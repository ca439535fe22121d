// Package oddsapi provides a client for The Odds API v4.
package oddsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	// APIPrefix is the versioned path prefix for all endpoints
	APIPrefix = "/v4"
	// DefaultTimeout bounds every request so one slow event cannot hang the run
	DefaultTimeout = 15 * time.Second
)

// Client talks to The Odds API. A single client is reused across all
// requests of a run.
type Client struct {
	baseURL string
	apiKey  string
	sport   string
	regions string
	markets []string
	client  *http.Client

	// limits holds the quota headers from the most recent response
	limits RateLimits
}

// NewClient creates a Client for the given sport and market set.
func NewClient(baseURL, apiKey, sport, regions string, markets []string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		sport:   sport,
		regions: regions,
		markets: markets,
		client:  &http.Client{Timeout: timeout},
	}
}

// Events fetches the upcoming events listing for the configured sport.
func (c *Client) Events(ctx context.Context) ([]Event, error) {
	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("regions", c.regions)
	params.Set("dateFormat", "iso")

	endpoint := fmt.Sprintf("%s%s/sports/%s/events?%s", c.baseURL, APIPrefix, c.sport, params.Encode())

	var events []Event
	if err := c.getJSON(ctx, endpoint, &events); err != nil {
		return nil, fmt.Errorf("fetch events: %w", err)
	}

	return events, nil
}

// EventOdds fetches bookmaker/market/outcome odds for one event, restricted
// to the client's market set, in American odds format.
func (c *Client) EventOdds(ctx context.Context, eventID string) (Event, error) {
	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("regions", c.regions)
	params.Set("markets", strings.Join(c.markets, ","))
	params.Set("oddsFormat", "american")
	params.Set("dateFormat", "iso")

	endpoint := fmt.Sprintf("%s%s/sports/%s/events/%s/odds?%s",
		c.baseURL, APIPrefix, c.sport, url.PathEscape(eventID), params.Encode())

	var event Event
	if err := c.getJSON(ctx, endpoint, &event); err != nil {
		return Event{}, fmt.Errorf("fetch odds for event %s: %w", eventID, err)
	}

	return event, nil
}

// RateLimits returns the quota headers seen on the most recent response.
func (c *Client) RateLimits() RateLimits {
	return c.limits
}

// getJSON performs a GET request and decodes the JSON body into out.
func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request failed: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "propsline/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	c.recordLimits(resp)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response failed: %w", err)
	}

	return nil
}

// recordLimits captures the x-requests-remaining/used quota headers.
func (c *Client) recordLimits(resp *http.Response) {
	remaining, errR := strconv.Atoi(resp.Header.Get("x-requests-remaining"))
	used, errU := strconv.Atoi(resp.Header.Get("x-requests-used"))
	if errR != nil && errU != nil {
		return
	}

	c.limits = RateLimits{
		RequestsRemaining: remaining,
		RequestsUsed:      used,
		FetchedAt:         time.Now(),
	}
}
