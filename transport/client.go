// Package transport performs authenticated, retried HTTP exchanges
// against a single CCHub host.
package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
)

// Client owns one pooled HTTP session bound to a single base host.
//
// Connection-level failures (resets, DNS hiccups) are retried up to the
// configured cap; HTTP error statuses are never retried and are passed
// through to the caller untouched.
type Client struct {
	baseURL     string
	apiVersion  string
	accessToken string
	httpClient  *retryablehttp.Client
	logger      zerolog.Logger
}

// NewClient creates a transport client bound to serverAddress.
func NewClient(serverAddress, apiVersion, accessToken string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if serverAddress == "" {
		return nil, fmt.Errorf("server address is required")
	}
	if accessToken == "" {
		return nil, fmt.Errorf("access token is required")
	}
	if apiVersion == "" {
		return nil, fmt.Errorf("api version is required")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = o.retryMax
	if o.httpClient != nil {
		rc.HTTPClient = o.httpClient
	}
	rc.HTTPClient.Timeout = o.timeout
	rc.Logger = leveledLogger{logger}
	rc.CheckRetry = retryTransportFailures

	return &Client{
		baseURL:     strings.TrimRight(serverAddress, "/"),
		apiVersion:  apiVersion,
		accessToken: accessToken,
		httpClient:  rc,
		logger:      logger,
	}, nil
}

// retryTransportFailures retries only when the exchange itself failed.
// A response with an error status is a valid exchange and is returned
// to the caller as-is.
func retryTransportFailures(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		return true, nil
	}
	return false, nil
}

// Send performs one HTTP exchange against the given endpoint.
//
// The access token is injected into the query parameters after any
// caller-supplied values, so a caller-provided accessToken entry can
// never override it. Transport failures are logged and returned as
// *Error; HTTP error statuses come back as a normal Response.
func (c *Client) Send(ctx context.Context, method, endpoint string, params url.Values, body []byte) (*Response, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("accessToken", c.accessToken)

	requestURL := fmt.Sprintf("%s/api/v%s%s?%s", c.baseURL, c.apiVersion, endpoint, params.Encode())

	req, err := retryablehttp.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return nil, &Error{Method: method, Endpoint: endpoint, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).
			Str("method", method).
			Str("endpoint", endpoint).
			Msg("Transport failure")
		return nil, &Error{Method: method, Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error().Err(err).
			Str("method", method).
			Str("endpoint", endpoint).
			Msg("Failed to read response body")
		return nil, &Error{Method: method, Endpoint: endpoint, Err: err}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       b,
	}, nil
}

// Get performs a GET exchange.
func (c *Client) Get(ctx context.Context, endpoint string, params url.Values) (*Response, error) {
	return c.Send(ctx, http.MethodGet, endpoint, params, nil)
}

// Post performs a POST exchange with the given payload.
func (c *Client) Post(ctx context.Context, endpoint string, params url.Values, body []byte) (*Response, error) {
	return c.Send(ctx, http.MethodPost, endpoint, params, body)
}

// Put performs a PUT exchange with the given payload.
func (c *Client) Put(ctx context.Context, endpoint string, params url.Values, body []byte) (*Response, error) {
	return c.Send(ctx, http.MethodPut, endpoint, params, body)
}

// Delete performs a DELETE exchange.
func (c *Client) Delete(ctx context.Context, endpoint string, params url.Values) (*Response, error) {
	return c.Send(ctx, http.MethodDelete, endpoint, params, nil)
}

// Simulate issues a GET carrying a _method override for environments
// where only GET is reachable. Whether the server honors the override
// is outside this client's control.
func (c *Client) Simulate(ctx context.Context, endpoint, method string, params url.Values) (*Response, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("_method", strings.ToUpper(method))
	return c.Send(ctx, http.MethodGet, endpoint, params, nil)
}
