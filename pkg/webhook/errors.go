package webhook

import "errors"

// Sentinel errors the HTTP layer maps to status codes.
var (
	// ErrUnauthorized marks signature verification failures, including a
	// missing secret on a config that requires one.
	ErrUnauthorized = errors.New("webhook unauthorized")

	// ErrBadPayload marks a request body that is not a JSON object.
	ErrBadPayload = errors.New("webhook payload is not a JSON object")
)
