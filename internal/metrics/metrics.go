// Lotwire - In-Process Ring Buffer Log Sink with HTTP Exposure
// Copyright 2026 dynamoRando
// SPDX-License-Identifier: MIT
// https://github.com/dynamoRando/lotwire

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for the sink and the exposure server:
// - record acceptance, filtering, and eviction in the ring buffer
// - buffer occupancy
// - HTTP endpoint latency and throughput

var (
	// Sink metrics
	SinkRecordsAccepted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lotwire_sink_records_accepted_total",
			Help: "Total number of log records accepted into the ring buffer",
		},
		[]string{"level"},
	)

	SinkRecordsFiltered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lotwire_sink_records_filtered_total",
			Help: "Total number of log records dropped before buffering",
		},
		[]string{"reason"}, // "level" (below threshold), "module" (self-exclusion)
	)

	SinkRecordsEvicted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lotwire_sink_records_evicted_total",
			Help: "Total number of buffered records evicted by capacity pressure",
		},
	)

	SinkBufferItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "lotwire_sink_buffer_items",
			Help: "Current number of records held in the ring buffer",
		},
	)

	// HTTP metrics
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lotwire_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lotwire_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
)

// RecordHTTPRequest records latency and outcome for a completed request.
func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}
