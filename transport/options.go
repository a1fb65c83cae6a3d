package transport

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	timeout    time.Duration
	retryMax   int
	httpClient *http.Client
}

func defaultOptions() *clientOptions {
	return &clientOptions{
		timeout:  10 * time.Second,
		retryMax: 3,
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithRetryMax caps the number of automatic retries for
// connection-level failures.
func WithRetryMax(max int) Option {
	return func(o *clientOptions) {
		o.retryMax = max
	}
}

// WithHTTPClient replaces the underlying pooled HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}
