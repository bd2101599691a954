package common

import (
	"log/slog"
	"net/http"
)

// BaseClient contains the client configuration shared by provider adapters
type BaseClient struct {
	APIKey     string
	HTTPClient *http.Client
	BaseURL    string
	Logger     *slog.Logger
}

// ClientOption configures a BaseClient using the functional options pattern
type ClientOption func(*BaseClient)

// WithLogger sets the logger for any client
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *BaseClient) {
		c.Logger = logger
	}
}

// WithHTTPClient sets the HTTP client for any client
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *BaseClient) {
		c.HTTPClient = client
	}
}

// WithBaseURL sets the base URL for any client
func WithBaseURL(url string) ClientOption {
	return func(c *BaseClient) {
		c.BaseURL = url
	}
}

// NewBaseClient creates a base client; the default HTTP client has no timeout
func NewBaseClient(apiKey, defaultBaseURL string, opts ...ClientOption) *BaseClient {
	c := &BaseClient{
		APIKey:     apiKey,
		HTTPClient: &http.Client{},
		BaseURL:    defaultBaseURL,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}

	return c
}
