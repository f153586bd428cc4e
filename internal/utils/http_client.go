package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// ClientUserAgent is sent with every request made through HTTPClient.
const ClientUserAgent = "go-house-bids-client"

// HTTPClient embeds *resty.Client so its whole API is available directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent resty client rooted at baseURL.
// A non-positive timeout leaves resty's default (no timeout) in place.
//
//	client := utils.NewHTTPClient("http://localhost:5005", 15*time.Second)
//	resp, err := client.R().Get("/api/houses")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", ClientUserAgent).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}
