package models

import "errors"

// Error taxonomy shared by all services. Handlers map these to HTTP
// status codes; anything unwrapped is treated as an internal failure.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
)
