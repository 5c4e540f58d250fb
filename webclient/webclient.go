// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package webclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Client runs GET requests with a client side rate limit and retries failed
// requests with exponential backoff.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	maxRetry   time.Duration
	logger     zerolog.Logger
}

func NewClient(timeout time.Duration, perSecond int, maxRetry time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		limiter:    NewRateLimiter(perSecond),
		maxRetry:   maxRetry,
		logger:     logger,
	}
}

func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode >= 500
}

// Get returns the first successful response. Network errors, status 429 and
// server errors are retried, other client errors are returned immediately.
// The caller needs to close the response body.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	var resp *http.Response
	op := func() error {
		err := c.limiter.Wait(ctx)
		if err != nil {
			return backoff.Permanent(err)
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		r, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			return err
		}
		if isRetryableStatus(r.StatusCode) {
			b, _ := io.ReadAll(io.LimitReader(r.Body, 512))
			r.Body.Close()
			err = fmt.Errorf("query returned error code %d (%s)", r.StatusCode, b)
			if r.StatusCode == http.StatusTooManyRequests {
				// enforce some delay if the server complains
				select {
				case <-ctx.Done():
					return backoff.Permanent(ctx.Err())
				case <-time.After(retryAfter(r)):
				}
			}
			return err
		}
		resp = r
		return nil
	}
	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = c.maxRetry
	notify := func(err error, d time.Duration) {
		c.logger.Warn().Err(err).Dur("retry_in", d).Str("url", url).Msg("request failed, retrying")
	}
	if err := backoff.RetryNotify(op, backoff.WithContext(b, ctx), notify); err != nil {
		return nil, err
	}
	return resp, nil
}

func ParseJsonResponse(resp *http.Response, v any) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("query returned error code %d (%s)", resp.StatusCode, b)
	}

	m, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || m != "application/json" {
		return fmt.Errorf("invalid content type %s", resp.Header.Get("Content-Type"))
	}

	if err = json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid json response: %w", err)
	}
	return nil
}
