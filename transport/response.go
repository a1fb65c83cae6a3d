package transport

import "net/http"

// Response is the raw outcome of a completed HTTP exchange. Error
// statuses are not interpreted here; callers decide what a non-200
// status means.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// OK reports whether the exchange returned HTTP 200.
func (r *Response) OK() bool {
	return r.StatusCode == http.StatusOK
}
