package http

import (
	"context"
	"io"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/vignesh-tw/migration-analysis/internal/version"
)

// UserAgent identifies mig towards the API.
var UserAgent = "mig/" + version.Version

// NewRetryableRequestWithContext is a wrapper around retryablehttp.NewRequestWithContext that modifies the request by
// adding additional headers.
func NewRetryableRequestWithContext(ctx context.Context, method, url string, body io.Reader) (*retryablehttp.Request, error) {
	r, err := retryablehttp.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return r, err
	}
	r.Header.Set("User-Agent", UserAgent)

	return r, err
}
