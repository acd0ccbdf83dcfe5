package http

import "errors"

// ErrInvalidLimit is returned for a non-numeric or non-positive "limit"
// query parameter.
var ErrInvalidLimit = errors.New("invalid limit")
