package adapter

import "errors"

// Sentinel errors returned by the adapters. HTTP failures are mapped by
// mapHTTPError; callers match them with [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("access token rejected")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("rate limited")
	ErrInternalServerError = errors.New("internal server error")

	// ErrTransport wraps network failures and unexpected responses.
	ErrTransport = errors.New("transport error")
)
