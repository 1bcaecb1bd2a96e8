package http

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/vignesh-tw/migration-analysis/internal/logger"
)

// NewRetryableClient returns a new pre-configured instance of retryablehttp.Client.
// With retries set to 0 every request is attempted exactly once.
func NewRetryableClient(timeout time.Duration, retries int) *retryablehttp.Client {
	return &retryablehttp.Client{
		HTTPClient: &http.Client{
			Timeout:   timeout,
			Transport: &http.Transport{Proxy: http.ProxyFromEnvironment},
		},
		Logger:       logger.Leveled{},
		RetryWaitMin: 1 * time.Second,
		RetryWaitMax: 30 * time.Second,
		RetryMax:     retries,
		CheckRetry:   retryablehttp.DefaultRetryPolicy,
		Backoff:      retryablehttp.DefaultBackoff,
		ErrorHandler: retryablehttp.PassthroughErrorHandler,
	}
}
