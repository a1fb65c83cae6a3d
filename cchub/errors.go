package cchub

import "errors"

// Common errors returned by the client.
var (
	// ErrUnknownModel indicates the model is not part of the catalog.
	ErrUnknownModel = errors.New("unknown model")

	// ErrUnknownVerb indicates an HTTP verb outside get/post/put/delete.
	ErrUnknownVerb = errors.New("unknown verb")
)
