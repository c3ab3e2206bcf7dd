package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient pointed at baseURL. Every request
// carries userAgent and times out after timeout.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8000", 30*time.Second, "edu/1.0")
//	resp, err := client.R().Get("/api/stats/")
func NewHTTPClient(baseURL string, timeout time.Duration, userAgent string) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	if userAgent != "" {
		client.SetHeader("User-Agent", userAgent)
	}

	return &HTTPClient{Client: client}
}
