/*
 * Metrics - Prometheus instrumentation for API calls.
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
	"github.com/prometheus/client_golang/prometheus"
)

// metrics instance
var metrics *ClientMetrics

type ClientMetrics struct {
	registry *prometheus.Registry

	successfulAPICallsTotal *prometheus.CounterVec
	failedAPICallsTotal     *prometheus.CounterVec

	apiRequestDuration *prometheus.HistogramVec

	rateLimitLimit     prometheus.Gauge
	rateLimitRemaining prometheus.Gauge
	rateLimitReset     prometheus.Gauge
}

// GetClientMetricsInstance returns the current ClientMetrics instance or
// creates a new one if required.
func GetClientMetricsInstance() *ClientMetrics {
	if metrics == nil {
		reg := prometheus.NewRegistry()
		metrics = &ClientMetrics{
			registry: reg,
			successfulAPICallsTotal: prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Name: "successful_api_calls_total",
					Help: "The number of successful DigitalOcean API calls",
				},
				[]string{"action"},
			),
			failedAPICallsTotal: prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Name: "failed_api_calls_total",
					Help: "The number of DigitalOcean API calls that returned an error",
				},
				[]string{"action"},
			),
			apiRequestDuration: prometheus.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "api_request_duration_ms",
					Help:    "Histogram of the delay in milliseconds when calling the DigitalOcean API",
					Buckets: []float64{10, 100, 250, 500, 1000, 1500, 2000},
				},
				[]string{"action"},
			),
			rateLimitLimit: prometheus.NewGauge(prometheus.GaugeOpts{
				Name: "rate_limit_limit",
				Help: "The number of requests the API allows per hour",
			}),
			rateLimitRemaining: prometheus.NewGauge(prometheus.GaugeOpts{
				Name: "rate_limit_remaining",
				Help: "The number of requests left in the current rate limit window",
			}),
			rateLimitReset: prometheus.NewGauge(prometheus.GaugeOpts{
				Name: "rate_limit_reset",
				Help: "The epoch second when the current rate limit window resets",
			}),
		}
		reg.MustRegister(metrics.successfulAPICallsTotal)
		reg.MustRegister(metrics.failedAPICallsTotal)
		reg.MustRegister(metrics.apiRequestDuration)
		reg.MustRegister(metrics.rateLimitLimit)
		reg.MustRegister(metrics.rateLimitRemaining)
		reg.MustRegister(metrics.rateLimitReset)
	}
	return metrics
}

// getLabels builds the label map.
func getLabels(action string) prometheus.Labels {
	return prometheus.Labels{"action": action}
}

func (m ClientMetrics) GetRegistry() *prometheus.Registry {
	return m.registry
}

// IncSuccessfulAPICallsTotal increments the successful_api_calls_total
// counter.
func (m *ClientMetrics) IncSuccessfulAPICallsTotal(action string) {
	m.successfulAPICallsTotal.With(getLabels(action)).Inc()
}

// IncFailedAPICallsTotal increments the failed_api_calls_total counter.
func (m *ClientMetrics) IncFailedAPICallsTotal(action string) {
	m.failedAPICallsTotal.With(getLabels(action)).Inc()
}

// AddAPIRequestDuration records the duration of an API call.
func (m *ClientMetrics) AddAPIRequestDuration(action string, delay int64) {
	m.apiRequestDuration.With(getLabels(action)).Observe(float64(delay))
}
