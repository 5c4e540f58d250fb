// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package webclient

import (
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const MinWaitTime = time.Millisecond * 250
const MaxRetryAfter = time.Minute

// NewRateLimiter creates a client side limiter allowing perSecond requests per second.
// Zero or negative values disable the limit.
func NewRateLimiter(perSecond int) *rate.Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Every(time.Second/time.Duration(perSecond)), perSecond)
}

// retryAfter returns the delay requested by a "Retry-After" header in seconds,
// or MinWaitTime if the server did not specify one.
func retryAfter(resp *http.Response) time.Duration {
	seconds, err := strconv.ParseInt(resp.Header.Get("Retry-After"), 10, 32)
	if err != nil || seconds <= 0 {
		return MinWaitTime
	}
	return min(time.Second*time.Duration(seconds), MaxRetryAfter)
}
