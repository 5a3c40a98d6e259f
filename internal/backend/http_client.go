package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const defaultTimeout = 30 * time.Second

// Options configures a backend Client
type Options struct {
	BaseURL string
	Timeout time.Duration

	// RequestsPerSecond throttles outgoing calls; zero disables throttling
	RequestsPerSecond float64
	Burst             int
}

// Client implements WeatherClient and UserClient over the backend's JSON API
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	limiter    *rate.Limiter
}

// NewClient creates a new backend client
func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	c := &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: "WardrobeTerminal/1.0 (github.com/ngmaloney/wardrobe-terminal)",
	}

	if opts.RequestsPerSecond > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}

	return c
}

// newRequest builds a request against the backend with the standard headers.
// body is JSON-encoded when non-nil.
func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// do waits for the limiter, then sends the request once
func (c *Client) do(req *http.Request) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(req.Context()); err != nil {
			return nil, fmt.Errorf("rate limit wait canceled: %w", err)
		}
	}
	return c.httpClient.Do(req)
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// apiError builds an APIError from a non-success response
func apiError(resp *http.Response) *APIError {
	var payload struct {
		Error string `json:"error"`
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	_ = json.Unmarshal(body, &payload)

	return &APIError{StatusCode: resp.StatusCode, Message: payload.Error}
}
