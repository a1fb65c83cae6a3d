package cchub

// RequestOption configures a single dispatched request.
type RequestOption func(*requestOptions)

// requestOptions holds per-request settings.
type requestOptions struct {
	id       string
	params   *Params
	body     []byte
	simulate bool
}

func newRequestOptions(opts []RequestOption) *requestOptions {
	o := &requestOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithID targets the single-record endpoint /{model}/{id}.json instead
// of the collection endpoint.
func WithID(id string) RequestOption {
	return func(o *requestOptions) {
		o.id = id
	}
}

// WithParams attaches query parameters to the request.
func WithParams(params *Params) RequestOption {
	return func(o *requestOptions) {
		o.params = params
	}
}

// WithBody attaches a JSON payload to the request.
func WithBody(body []byte) RequestOption {
	return func(o *requestOptions) {
		o.body = body
	}
}

// WithSimulate routes the request through the GET fallback, carrying
// the intended verb in a _method override parameter. For environments
// that block non-GET methods.
func WithSimulate() RequestOption {
	return func(o *requestOptions) {
		o.simulate = true
	}
}
