// Package postgrest implements the book, reader and action list repositories
// over a hosted PostgREST API (the Supabase REST endpoint).
//
// Rows travel as snake_case JSON and reads embed the reader name through
// the readers!inner(name) join. The types in rows.go are the only place that
// translates between that wire shape and the domain entities.
package postgrest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"resty.dev/v3"
)

const (
	selectWithReader = "*,readers!inner(name)"
	newestFirst      = "created_at.desc"
	preferHeader     = "Prefer"
	returnRows       = "return=representation"
)

// Client is a thin resty wrapper bound to <url>/rest/v1 with the anon key.
type Client struct {
	http *resty.Client
}

// NewClient creates a client for the project at baseURL.
func NewClient(baseURL, anonKey string, timeout time.Duration) *Client {
	client := resty.New()
	client.SetBaseURL(strings.TrimRight(baseURL, "/") + "/rest/v1")
	client.SetHeader("apikey", anonKey)
	client.SetHeader("Authorization", "Bearer "+anonKey)
	client.SetHeader("Content-Type", "application/json")
	client.SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &Client{http: client}
}

// Close releases the underlying HTTP client.
func (c *Client) Close() error {
	return c.http.Close()
}

// Ping checks that the readers table is reachable.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("select", "id").
		SetQueryParam("limit", "1").
		Get("/readers")
	if err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("ping: response error %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}

func (c *Client) request(ctx context.Context) *resty.Request {
	return c.http.R().SetContext(ctx)
}

func eq(v string) string {
	return "eq." + v
}
