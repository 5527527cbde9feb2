package api

import (
	"log/slog"
	"net/http"
	"time"
)

// Client issues JSON GET requests against one upstream base URL.
type Client struct {
	name       string
	baseURL    string
	apiKey     string
	headers    http.Header
	httpClient *http.Client
	logger     *slog.Logger

	maxBodySize int64
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a new REST API client. name is used in error messages.
// An empty apiKey sends no Authorization header.
func NewClient(name, baseURL, apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		name:       name,
		baseURL:    baseURL,
		apiKey:     apiKey,
		headers:    make(http.Header),
		httpClient: &http.Client{},
		logger:     slog.Default(),

		maxBodySize: DefaultMaxBodySize,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithTimeout sets the HTTP client timeout. Zero means no timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHeader adds a static header sent on every request.
func WithHeader(key, value string) ClientOption {
	return func(c *Client) {
		c.headers.Set(key, value)
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// Name returns the upstream name the client was built for.
func (c *Client) Name() string {
	return c.name
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}
