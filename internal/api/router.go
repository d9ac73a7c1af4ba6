// Lotwire - In-Process Ring Buffer Log Sink with HTTP Exposure
// Copyright 2026 dynamoRando
// SPDX-License-Identifier: MIT
// https://github.com/dynamoRando/lotwire

// Package api provides the read-only HTTP exposure of a ring buffer sink
// using the Chi router.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dynamoRando/lotwire/internal/middleware"
	"github.com/dynamoRando/lotwire/sink"
)

// ModuleName identifies this package as the origin of log records. The
// sink excludes records carrying it by default, so serving a request
// never feeds the buffer being served.
const ModuleName = "lotwire/internal/api"

// Handler serves the exposure routes. It holds a shared reference to the
// same ring the application logs into, never a copy.
type Handler struct {
	ring *sink.Ring
}

// NewHandler creates a handler backed by the given ring.
func NewHandler(ring *sink.Ring) *Handler {
	return &Handler{ring: ring}
}

// Routes builds the router:
//
//	GET /        liveness marker, no buffer access
//	GET /logs    JSON array of buffered records, oldest first
//	GET /metrics Prometheus exposition
//
// The CORS layer is global so every response, including chi's 404 and
// 405, carries the headers. It sets headers only; statuses pass through.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS)
	r.Use(middleware.PrometheusMetrics)

	r.Get("/", h.Index)
	r.Get("/logs", h.Logs)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
