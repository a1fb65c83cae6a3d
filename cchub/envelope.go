package cchub

import "encoding/json"

// Envelope is the fixed wrapper every CCHub endpoint returns. Error
// entries and records are kept as raw JSON; their schemas belong to
// the remote service, not to this client.
type Envelope struct {
	Error  []json.RawMessage `json:"error"`
	Result EnvelopeResult    `json:"result"`
}

// EnvelopeResult carries the page's records and the server-reported
// size of the full collection.
type EnvelopeResult struct {
	Data  []json.RawMessage `json:"data"`
	Total int               `json:"total"`
}
