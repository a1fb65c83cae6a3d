package cchub

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/cchub/go-cchub/config"
	"github.com/cchub/go-cchub/transport"
)

// Verb is one of the HTTP verbs the API accepts.
type Verb string

// Verbs accepted by Dispatch.
const (
	VerbGet    Verb = "get"
	VerbPost   Verb = "post"
	VerbPut    Verb = "put"
	VerbDelete Verb = "delete"
)

var verbMethods = map[Verb]string{
	VerbGet:    http.MethodGet,
	VerbPost:   http.MethodPost,
	VerbPut:    http.MethodPut,
	VerbDelete: http.MethodDelete,
}

// Client dispatches verb operations against the CCHub model catalog
// and provides the paginated fetch-all helper.
//
// A Client is safe for sequential reuse; it holds no internal locking
// and is not meant to be shared across goroutines.
type Client struct {
	transport *transport.Client
	logger    zerolog.Logger
}

// NewClient creates a CCHub client bound to one server.
func NewClient(serverAddress, apiVersion, accessToken string, logger zerolog.Logger, opts ...transport.Option) (*Client, error) {
	tc, err := transport.NewClient(serverAddress, apiVersion, accessToken, logger, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create transport: %w", err)
	}

	return &Client{
		transport: tc,
		logger:    logger,
	}, nil
}

// NewClientFromConfig creates a client from a loaded configuration.
func NewClientFromConfig(cfg *config.Config, logger zerolog.Logger, opts ...transport.Option) (*Client, error) {
	return NewClient(cfg.Server.Address, cfg.Server.APIVersion, cfg.Server.AccessToken, logger, opts...)
}

// Dispatch sends one verb operation against a model. The model and
// verb are checked per call; the catalog itself is fixed.
func (c *Client) Dispatch(ctx context.Context, model Model, verb Verb, opts ...RequestOption) (*transport.Response, error) {
	if !model.Known() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownModel, model)
	}
	method, ok := verbMethods[verb]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVerb, verb)
	}

	o := newRequestOptions(opts)

	endpoint := model.collectionPath()
	if o.id != "" {
		endpoint = model.recordPath(o.id)
	}

	var params url.Values
	if o.params != nil {
		var err error
		params, err = o.params.Values()
		if err != nil {
			return nil, fmt.Errorf("failed to encode params: %w", err)
		}
	}

	if o.simulate {
		return c.transport.Simulate(ctx, endpoint, method, params)
	}

	return c.transport.Send(ctx, method, endpoint, params, o.body)
}

// Get reads a model collection, or a single record with WithID.
func (c *Client) Get(ctx context.Context, model Model, opts ...RequestOption) (*transport.Response, error) {
	return c.Dispatch(ctx, model, VerbGet, opts...)
}

// Post creates a record.
func (c *Client) Post(ctx context.Context, model Model, opts ...RequestOption) (*transport.Response, error) {
	return c.Dispatch(ctx, model, VerbPost, opts...)
}

// Put updates a record.
func (c *Client) Put(ctx context.Context, model Model, opts ...RequestOption) (*transport.Response, error) {
	return c.Dispatch(ctx, model, VerbPut, opts...)
}

// Delete removes a record.
func (c *Client) Delete(ctx context.Context, model Model, opts ...RequestOption) (*transport.Response, error) {
	return c.Dispatch(ctx, model, VerbDelete, opts...)
}
