package trips

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"tripledger/internal/core"
)

// Client fetches the trip from the planner backend. The fetch is one-shot
// per call; callers own retry and caching policy.
type Client struct {
	url        string
	httpClient *http.Client
}

func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) Load(ctx context.Context) (*core.Trip, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build trip request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch trip: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch trip: unexpected status %d", resp.StatusCode)
	}

	var trip core.Trip
	if err := json.NewDecoder(resp.Body).Decode(&trip); err != nil {
		return nil, fmt.Errorf("decode trip response: %w", err)
	}
	return &trip, nil
}
