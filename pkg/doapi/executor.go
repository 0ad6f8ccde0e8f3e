/*
 * Executor - performs the HTTP call described by a builder.
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
package doapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"digitalocean-doapi/internal/metrics"
	"digitalocean-doapi/pkg/doapi/response"
)

// executor holds the transport shared by every builder of a manager.
type executor struct {
	client *http.Client
}

// APIError is the error envelope returned by the API on non-2xx replies.
type APIError struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Status, e.ID, e.Message)
}

// newAPIError builds an APIError from a reply body, falling back to the
// raw body when the envelope cannot be decoded.
func newAPIError(status int, body []byte) *APIError {
	apiErr := APIError{Status: status}
	if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Message == "" {
		apiErr.ID = "unknown"
		apiErr.Message = strings.TrimSpace(string(body))
	}
	return &apiErr
}

// Retrieve executes the request described by the builder and decodes the
// reply into the builder's response shape. Builders expecting a
// header-only reply skip body decoding. A builder is meant to be
// consumed by exactly one Retrieve call.
func (b RequestBuilder[T]) Retrieve(ctx context.Context) (*T, error) {
	if b.ex == nil {
		return nil, errors.New("request builder is not bound to a manager")
	}
	m := metrics.GetClientMetricsInstance()

	var reader io.Reader
	if b.body != nil {
		reader = bytes.NewReader(b.body)
	}
	req, err := http.NewRequestWithContext(ctx, b.method, b.url, reader)
	if err != nil {
		return nil, fmt.Errorf("cannot build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+b.auth.Token)
	req.Header.Set("Accept", "application/json")
	if b.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	log.WithFields(log.Fields{
		"method":     b.method,
		"url":        b.url,
		"request_id": requestID,
	}).Debug("Sending request to the DigitalOcean API")

	start := time.Now()
	resp, err := b.ex.client.Do(req)
	if err != nil {
		m.IncFailedAPICallsTotal(b.action)
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()
	m.AddAPIRequestDuration(b.action, time.Since(start).Milliseconds())
	if err := m.ObserveRateLimitHeaders(resp.Header); err != nil {
		log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err,
		}).Debug("No rate limit information in response")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		m.IncFailedAPICallsTotal(b.action)
		return nil, fmt.Errorf("cannot read API response: %w", err)
	}
	if resp.StatusCode >= 300 {
		m.IncFailedAPICallsTotal(b.action)
		return nil, newAPIError(resp.StatusCode, body)
	}
	m.IncSuccessfulAPICallsTotal(b.action)

	result := new(T)
	if _, headerOnly := any(result).(*response.HeaderOnly); headerOnly || len(body) == 0 {
		return result, nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		return nil, fmt.Errorf("cannot decode API response: %w", err)
	}
	return result, nil
}
