package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http %s %s: status %d: %s", e.Method, e.URL, e.StatusCode, snippet(e.Body, 300))
}

// Temporary reports whether retrying the request may succeed.
func (e *StatusError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests ||
		e.StatusCode == http.StatusRequestTimeout ||
		e.StatusCode >= 500
}

// RetryPolicy bounds how often and how long a request is retried.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	// Jitter is the randomization factor applied to each delay, 0 disables it.
	Jitter float64
}

// DefaultRetryPolicy is a short policy suited to calls made inside a request.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 2,
		BaseDelay:   200 * time.Millisecond,
		MaxDelay:    2 * time.Second,
		Jitter:      0.2,
	}
}

func (p RetryPolicy) withDefaults() RetryPolicy {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = 1
	}
	if p.BaseDelay <= 0 {
		p.BaseDelay = DefaultRetryPolicy().BaseDelay
	}
	if p.MaxDelay <= 0 {
		p.MaxDelay = DefaultRetryPolicy().MaxDelay
	}
	if p.Jitter < 0 || p.Jitter >= 1 {
		p.Jitter = 0
	}
	return p
}

// newBackOff returns an exponential schedule doubling from BaseDelay up to MaxDelay
func (p RetryPolicy) newBackOff() *backoff.ExponentialBackOff {
	b := &backoff.ExponentialBackOff{
		InitialInterval:     p.BaseDelay,
		RandomizationFactor: p.Jitter,
		Multiplier:          2,
		MaxInterval:         p.MaxDelay,
	}
	b.Reset()
	return b
}

// RequestBuilder builds a fresh request for every attempt.
type RequestBuilder func(ctx context.Context) (*http.Request, error)

// Do executes the request, retrying transient failures, and returns the full body of
// the successful response. The body is always drained so connections are reused.
func Do(ctx context.Context, client *http.Client, build RequestBuilder, policy RetryPolicy) ([]byte, error) {
	policy = policy.withDefaults()

	var lastErr error
	body, err := backoff.Retry(ctx, func() ([]byte, error) {
		body, retryAfter, err := doOnce(ctx, client, build)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if !retryable(ctx, err) {
			return nil, backoff.Permanent(err)
		}
		if retryAfter > 0 {
			return nil, &backoff.RetryAfterError{Duration: min(retryAfter, policy.MaxDelay)}
		}
		return nil, err
	},
		backoff.WithBackOff(policy.newBackOff()),
		backoff.WithMaxTries(uint(policy.MaxAttempts)),
	)
	if err == nil {
		return body, nil
	}
	// A cancelled wait reports the context error; anything else reports the last response.
	if lastErr == nil || ctx.Err() != nil {
		return nil, err
	}
	return nil, lastErr
}

// GetJSON issues a GET with retries and decodes the JSON response into out.
func GetJSON(ctx context.Context, client *http.Client, url string, policy RetryPolicy, out interface{}) error {
	body, err := Do(ctx, client, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		return req, nil
	}, policy)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func doOnce(ctx context.Context, client *http.Client, build RequestBuilder) ([]byte, time.Duration, error) {
	req, err := build(ctx)
	if err != nil {
		return nil, 0, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, parseRetryAfter(resp.Header.Get("Retry-After")), &StatusError{
			Method:     req.Method,
			URL:        redact(req.URL.String()),
			StatusCode: resp.StatusCode,
			Body:       body,
		}
	}
	return body, 0, nil
}

func retryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}

	var se *StatusError
	if errors.As(err, &se) {
		return se.Temporary()
	}

	var nerr net.Error
	if errors.As(err, &nerr) {
		return true
	}
	return errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF)
}

// parseRetryAfter understands the delay-seconds form only.
func parseRetryAfter(v string) time.Duration {
	secs, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

// redact hides api keys passed as query parameters
func redact(u string) string {
	i := strings.Index(u, "apikey=")
	if i < 0 {
		return u
	}
	end := strings.IndexByte(u[i:], '&')
	if end < 0 {
		return u[:i] + "apikey=REDACTED"
	}
	return u[:i] + "apikey=REDACTED" + u[i+end:]
}

func snippet(b []byte, max int) string {
	s := strings.TrimSpace(string(b))
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
