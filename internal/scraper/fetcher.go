// Package scraper implements the fetch, extract and failover stages of
// the headlines pipeline.
package scraper

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// Fetch failure sentinels. SourceSelector matches on these when it
// converts a failed attempt into a fallback transition.
var (
	ErrEmptyURL             = errors.New("url must not be empty")
	ErrTimeout              = errors.New("request timed out")
	ErrConnection           = errors.New("connection failed")
	ErrUnexpectedStatusCode = errors.New("unexpected status code")
)

// DefaultTimeout bounds a single fetch attempt.
const DefaultTimeout = 10 * time.Second

// defaultBufferSizeKb caps the response body read.
const defaultBufferSizeKb = 2048

// Fetcher issues single GET requests with a browser-like User-Agent.
// It never retries; the failover policy lives in SourceSelector.
type Fetcher struct {
	client       *http.Client
	userAgent    string
	bufferSizeKb int
}

// NewFetcher creates a fetcher with the given per-request timeout.
// Non-positive arguments fall back to the defaults.
func NewFetcher(timeout time.Duration, userAgent string, bufferSizeKb int) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	if bufferSizeKb <= 0 {
		bufferSizeKb = defaultBufferSizeKb
	}

	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
		},
		userAgent:    userAgent,
		bufferSizeKb: bufferSizeKb,
	}
}

// FetchWithMetrics returns (body, statusCode, duration, error).
func (f *Fetcher) FetchWithMetrics(url string) ([]byte, int, time.Duration, error) {
	if url == "" {
		return nil, 0, 0, ErrEmptyURL
	}

	start := time.Now()

	req, err := http.NewRequest(http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, 0, time.Since(start), fmt.Errorf("failed to create request: %w", err)
	}

	// Set user agent to avoid being blocked
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, 0, time.Since(start), classifyTransportError(url, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)

		return nil, resp.StatusCode, time.Since(start), fmt.Errorf("%w: %d", ErrUnexpectedStatusCode, resp.StatusCode)
	}

	// Read with buffer limit
	// bufferSizeKb is in KB, convert to bytes
	limit := int64(f.bufferSizeKb) * 1024

	body, err := io.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		return nil, resp.StatusCode, time.Since(start), fmt.Errorf("failed to read response body: %w", err)
	}

	return body, resp.StatusCode, time.Since(start), nil
}

// Fetch fetches the raw markup at url.
func (f *Fetcher) Fetch(url string) ([]byte, error) {
	body, _, _, err := f.FetchWithMetrics(url)

	return body, err
}

// classifyTransportError maps transport failures onto the fetch
// sentinels so the caller can tell a timeout from a refused connection.
func classifyTransportError(url string, err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: GET %s: %v", ErrTimeout, url, err)
	}

	return fmt.Errorf("%w: GET %s: %v", ErrConnection, url, err)
}
