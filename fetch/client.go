// SPDX-License-Identifier: EPL-2.0

package fetch

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultTimeout    = 15 * time.Second
	DefaultMaxRetries = 3
	DefaultBackoff    = 500 * time.Millisecond
	DefaultMaxBytes   = 64 << 20

	// retry-after answers above this are treated as the cap
	maxRetryAfter = 30 * time.Second
)

// Options configure a Client. Zero fields take the defaults above.
type Options struct {
	HTTPClient *http.Client
	Timeout    time.Duration
	MaxRetries int
	Backoff    time.Duration
	MaxBytes   int64
	Logger     *log.Logger
}

// Client loads audio bytes over HTTP(S) or from the local filesystem.
// It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	timeout    time.Duration
	maxRetries int
	backoff    time.Duration
	maxBytes   int64
	log        *log.Logger
}

// New returns a Client configured by opts.
func New(opts Options) *Client {
	c := &Client{
		httpClient: opts.HTTPClient,
		timeout:    opts.Timeout,
		maxRetries: opts.MaxRetries,
		backoff:    opts.Backoff,
		maxBytes:   opts.MaxBytes,
		log:        opts.Logger,
	}

	if c.httpClient == nil {
		c.httpClient = http.DefaultClient
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.maxRetries <= 0 {
		c.maxRetries = DefaultMaxRetries
	}
	if c.backoff <= 0 {
		c.backoff = DefaultBackoff
	}
	if c.maxBytes <= 0 {
		c.maxBytes = DefaultMaxBytes
	}
	if c.log == nil {
		c.log = log.Default()
	}

	return c
}

// Fetch returns the bytes behind location. http and https URLs go over the
// network with retries; file URLs and bare paths are read from disk.
func (c *Client) Fetch(ctx context.Context, location string) ([]byte, error) {
	if strings.TrimSpace(location) == "" {
		return nil, fmt.Errorf("%w: %w", ErrFetch, ErrEmptyURL)
	}

	u, err := url.Parse(location)
	if err != nil || u.Scheme == "" || len(u.Scheme) == 1 {
		// no scheme, or a windows drive letter
		return c.readFile(location)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return c.get(ctx, location)
	case "file":
		return c.readFile(u.Path)
	default:
		return nil, fmt.Errorf("%w: unsupported scheme %q", ErrFetch, u.Scheme)
	}
}

func (c *Client) readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer f.Close()

	return c.readLimited(f)
}

func (c *Client) readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, c.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrFetch, err)
	}
	if int64(len(data)) > c.maxBytes {
		return nil, fmt.Errorf("%w: %w (limit %d bytes)", ErrFetch, ErrTooLarge, c.maxBytes)
	}
	return data, nil
}

func (c *Client) get(ctx context.Context, location string) ([]byte, error) {
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: request canceled: %w", ErrFetch, err)
		}

		data, retryAfter, retry, err := c.attempt(ctx, location)
		if err == nil {
			return data, nil
		}
		if !retry {
			return nil, err
		}

		attemptNum := attempt + 1
		if attemptNum == c.maxRetries {
			return nil, fmt.Errorf("%w after %d attempts", err, c.maxRetries)
		}
		c.log.Printf("WARN fetch: retry attempt %d/%d for %s: %v", attemptNum, c.maxRetries, location, err)

		backoff := c.backoff * time.Duration(1<<attempt)
		if retryAfter > 0 {
			backoff = retryAfter
		}
		if err := sleepWithContext(ctx, backoff); err != nil {
			return nil, err
		}
	}

	return nil, fmt.Errorf("%w: request failed after %d attempts", ErrFetch, c.maxRetries)
}

// attempt performs one GET bounded by the client timeout.
func (c *Client) attempt(ctx context.Context, location string) ([]byte, time.Duration, bool, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, location, nil)
	if err != nil {
		return nil, 0, false, fmt.Errorf("%w: build request: %w", ErrFetch, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// the caller's cancellation is final; a timed out attempt is not
		if ctx.Err() != nil {
			return nil, 0, false, fmt.Errorf("%w: %w", ErrFetch, err)
		}
		return nil, 0, true, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

		err := fmt.Errorf("%w: %w %d", ErrFetch, ErrStatus, resp.StatusCode)
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
			return nil, parseRetryAfter(resp), true, err
		}
		return nil, 0, false, err
	}

	if resp.ContentLength > c.maxBytes {
		return nil, 0, false, fmt.Errorf("%w: %w (%d bytes, limit %d)", ErrFetch, ErrTooLarge, resp.ContentLength, c.maxBytes)
	}

	data, err := c.readLimited(resp.Body)
	if err != nil {
		return nil, 0, false, err
	}
	return data, 0, false, nil
}

func parseRetryAfter(resp *http.Response) time.Duration {
	raw := resp.Header.Get("Retry-After")
	if raw == "" {
		return 0
	}

	var d time.Duration
	if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
		d = time.Duration(seconds) * time.Second
	} else if when, err := http.ParseTime(raw); err == nil {
		d = time.Until(when)
	}

	return min(max(d, 0), maxRetryAfter)
}

func sleepWithContext(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: request canceled: %w", ErrFetch, ctx.Err())
	case <-timer.C:
		return nil
	}
}
