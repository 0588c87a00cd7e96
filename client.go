// Package d2c is the Go client for the Dev2Cloud sandbox API.
//
// A Client authenticates every request with an API key (sent as the
// X-Api-Key header) and exposes sandbox operations through service
// groups:
//
//	client := d2c.NewClient(os.Getenv("D2C_API_KEY"))
//	sandbox, err := client.Sandbox.CreateAndWait(ctx, models.SandboxTypePostgres, 0)
package d2c

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dev2cloud/d2c-go/services"
)

// DefaultBaseURL is the production Dev2Cloud API endpoint.
const DefaultBaseURL = "https://api.dev2.cloud"

// ClientOption is a function that configures a Client
type ClientOption func(*Client)

// Client is the main client for interacting with the Dev2Cloud API
// After creation, the client is immutable and safe for concurrent use
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client

	// Custom headers to include in all requests
	headers map[string]string

	// Service groups
	Sandbox *services.SandboxService
}

// NewClient creates a new Client authenticated with the given API key
func NewClient(apiKey string, opts ...ClientOption) *Client {
	if apiKey == "" {
		panic("D2C_API_KEY is not set. Please set your API key in .env file or environment variables")
	}

	client := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		headers: make(map[string]string),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	// Apply options
	for _, opt := range opts {
		opt(client)
	}

	// Initialize services
	client.Sandbox = services.NewSandboxService(client)

	return client
}

// WithBaseURL sets a custom base URL for the client. Trailing slashes
// are trimmed so paths can always be appended verbatim.
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithTimeout sets the HTTP client timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithHeader adds a custom header that will be included in all requests
func WithHeader(key, value string) ClientOption {
	return func(c *Client) {
		c.headers[key] = value
	}
}

// WithHeaders adds multiple custom headers that will be included in all requests
func WithHeaders(headers map[string]string) ClientOption {
	return func(c *Client) {
		for k, v := range headers {
			c.headers[k] = v
		}
	}
}

// GetAPIKey returns the configured API key
func (c *Client) GetAPIKey() string {
	return c.apiKey
}

// GetBaseURL returns the configured base URL
func (c *Client) GetBaseURL() string {
	return c.baseURL
}

// NewRequest creates a new HTTP request with auth headers and custom headers
func (c *Client) NewRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	url := fmt.Sprintf("%s%s", c.baseURL, path)

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Set auth header
	req.Header.Set("X-Api-Key", c.apiKey)

	// Set default headers
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	// Set custom headers
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	return req, nil
}

// Do executes a single HTTP request. There is no retry policy: every
// call maps to exactly one exchange with the API.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.httpClient.Do(req)
}
