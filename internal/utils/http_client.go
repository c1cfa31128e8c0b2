package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client for outbound requests such as remote image
// downloads. Embedding exposes the full resty API while leaving room for
// studio-specific defaults.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own configuration
// and connection pool.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
