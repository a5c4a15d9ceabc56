package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// userAgent identifies the uploader in endpoint logs.
const userAgent = "order-intake-client"

// maxRedirects bounds the redirect chain. Apps Script answers a POST to
// /exec with a 302 to the script's content URL.
const maxRedirects = 5

// HTTPClient wraps a resty client preconfigured for a JSON ingestion endpoint.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client with the given request timeout (zero means
// none), JSON Accept header, the uploader user agent and a bounded redirect
// policy. Each call returns an independent client with its own pool.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(maxRedirects))

	return &HTTPClient{Client: client}
}
