package utils

import (
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so its whole API is available directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a resty client rooted at baseURL. timeout bounds the
// connect phase, each read and write on the connection, and the request as a
// whole; zero leaves resty's defaults.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().SetBaseURL(baseURL)

	if timeout > 0 {
		dialer := &net.Dialer{Timeout: timeout}
		client.SetTransport(&http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			DialContext:           dialer.DialContext,
			TLSHandshakeTimeout:   timeout,
			ResponseHeaderTimeout: timeout,
			ExpectContinueTimeout: time.Second,
			MaxIdleConns:          16,
			IdleConnTimeout:       90 * time.Second,
		})
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
