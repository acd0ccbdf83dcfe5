package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// AccessTokenHeader is the header the notification service reads the
// account access token from.
const AccessTokenHeader = "Access-Token"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient().
//	    WithAccessToken(token)
//	resp, err := client.R().Get("/v2/users/me")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// WithAccessToken attaches token to every request sent by the client.
func (c *HTTPClient) WithAccessToken(token string) *HTTPClient {
	c.SetHeader(AccessTokenHeader, strings.TrimSpace(token))
	return c
}

// WithBaseURL sets the base URL and per-request timeout.
func (c *HTTPClient) WithBaseURL(baseURL string, timeout time.Duration) *HTTPClient {
	c.SetBaseURL(strings.TrimRight(baseURL, "/"))
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return c
}
