/*
 * Rate limit - rate limit headers.
 *
 * Copyright 2026 Marco Confalonieri.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package metrics

import (
	"fmt"
	"net/http"
	"strconv"
)

const (
	rlLimit     = "Ratelimit-Limit"
	rlRemaining = "Ratelimit-Remaining"
	rlReset     = "Ratelimit-Reset"
)

// rateLimit contains the rate limits communicated by the API with every
// response.
type rateLimit struct {
	limit     int
	remaining int
	reset     uint64
}

// readLimit reads the hourly request limit.
func readLimit(h http.Header) (int, error) {
	strLimit := h.Get(rlLimit)
	if strLimit == "" {
		return 0, fmt.Errorf("header %s not found", rlLimit)
	}
	limit, err := strconv.Atoi(strLimit)
	if err != nil {
		return 0, fmt.Errorf("header %s had unexpected value %q", rlLimit, strLimit)
	}
	return limit, nil
}

// readRemaining reads the number of requests left in the current window.
func readRemaining(h http.Header) (int, error) {
	strRemaining := h.Get(rlRemaining)
	if strRemaining == "" {
		return 0, fmt.Errorf("header %s not found", rlRemaining)
	}
	remaining, err := strconv.Atoi(strRemaining)
	if err != nil {
		return 0, fmt.Errorf("header %s had unexpected value %q", rlRemaining, strRemaining)
	}
	return remaining, nil
}

// readReset reads the epoch second when the current window ends.
func readReset(h http.Header) (uint64, error) {
	strReset := h.Get(rlReset)
	if strReset == "" {
		return 0, fmt.Errorf("header %s not found", rlReset)
	}
	reset, err := strconv.ParseUint(strReset, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("header %s had unexpected value %q", rlReset, strReset)
	}
	return reset, nil
}

// parseRateLimit extracts the rate limits from the response headers.
func parseRateLimit(h http.Header) (*rateLimit, error) {
	limit, err := readLimit(h)
	if err != nil {
		return nil, err
	}
	remaining, err := readRemaining(h)
	if err != nil {
		return nil, err
	}
	reset, err := readReset(h)
	if err != nil {
		return nil, err
	}
	return &rateLimit{
		limit:     limit,
		remaining: remaining,
		reset:     reset,
	}, nil
}

// ObserveRateLimitHeaders updates the rate limit gauges from the headers
// of an API response.
func (m *ClientMetrics) ObserveRateLimitHeaders(h http.Header) error {
	rl, err := parseRateLimit(h)
	if err != nil {
		return err
	}
	m.rateLimitLimit.Set(float64(rl.limit))
	m.rateLimitRemaining.Set(float64(rl.remaining))
	m.rateLimitReset.Set(float64(rl.reset))
	return nil
}
