// Lotwire - In-Process Ring Buffer Log Sink with HTTP Exposure
// Copyright 2026 dynamoRando
// SPDX-License-Identifier: MIT
// https://github.com/dynamoRando/lotwire

// Package middleware provides the HTTP middleware for the exposure
// server: the CORS header layer, request IDs, and Prometheus
// instrumentation.
package middleware

import "net/http"

// CORS headers carried by every response from the exposure server. The
// published API contract includes all four headers unconditionally, which
// is why this is not go-chi/cors: that middleware only emits headers when
// the request carries an Origin header.
//
// The allow-credentials/wildcard-origin pairing is part of the published
// contract; the API is unauthenticated and cookie-free, so the
// credentials header is inert.
const (
	corsAllowOrigin      = "*"
	corsAllowMethods     = "POST, GET, PATCH, OPTIONS, DELETE"
	corsAllowHeaders     = "*"
	corsAllowCredentials = "true"
)

// CORS sets the four CORS headers on every response and answers OPTIONS
// preflight requests with 200. It does not touch the status code of any
// other response; handler statuses pass through unchanged.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", corsAllowOrigin)
		h.Set("Access-Control-Allow-Methods", corsAllowMethods)
		h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
		h.Set("Access-Control-Allow-Credentials", corsAllowCredentials)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
