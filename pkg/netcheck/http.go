package netcheck

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// DefaultHTTPTimeout bounds the fallback HEAD request.
const DefaultHTTPTimeout = 10 * time.Second

// HTTPClient abstracts HTTP requests for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// RealHTTPClient sends a single request through go-retryablehttp with
// retries disabled, so that non-2xx responses are still returned to the
// caller rather than converted into errors.
type RealHTTPClient struct {
	Timeout time.Duration
	Logger  *slog.Logger
}

// Do executes an HTTP request without following redirects.
func (c *RealHTTPClient) Do(req *http.Request) (*http.Response, error) {
	client := retryablehttp.NewClient()
	client.RetryMax = 0
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	client.HTTPClient.Timeout = c.Timeout
	client.HTTPClient.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	client.Logger = nil
	if c.Logger != nil {
		client.Logger = c.Logger
	}

	rreq, err := retryablehttp.FromRequest(req)
	if err != nil {
		return nil, err
	}
	return client.Do(rreq)
}

// Acceptable reports whether an HTTP status shows the host is reachable.
// Anything below 500 means a server answered, including auth errors.
func Acceptable(status int) bool {
	return status >= 200 && status < 500
}

// ProbeHTTP sends HEAD to url and classifies the response.
func ProbeHTTP(ctx context.Context, client HTTPClient, url string) Attempt {
	attempt := Attempt{Method: "HTTPS HEAD", Target: url}
	if client == nil {
		attempt.Outcome = Unavailable
		attempt.Err = errors.New("no HTTP client configured")
		return attempt
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, http.NoBody)
	if err != nil {
		attempt.Outcome = Unavailable
		attempt.Err = fmt.Errorf("failed to create request: %w", err)
		return attempt
	}

	resp, err := client.Do(req)
	if err != nil {
		attempt.Outcome = Unreachable
		attempt.Err = err
		return attempt
	}
	_ = resp.Body.Close()

	attempt.Status = resp.StatusCode
	if !Acceptable(resp.StatusCode) {
		attempt.Outcome = Unreachable
		attempt.Err = fmt.Errorf("status %d outside [200,500)", resp.StatusCode)
		return attempt
	}

	attempt.Outcome = Reachable
	return attempt
}
