// Lotwire - In-Process Ring Buffer Log Sink with HTTP Exposure
// Copyright 2026 dynamoRando
// SPDX-License-Identifier: MIT
// https://github.com/dynamoRando/lotwire

package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/dynamoRando/lotwire/internal/logging"
)

// Index handles liveness requests. It never touches the buffer.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("Logserver online")); err != nil {
		logging.Error().Err(err).Str("module", ModuleName).Msg("Failed to write liveness response")
	}
}

// Logs handles buffer inspection requests. The snapshot copy is taken
// under the sink's lock; marshaling and writing happen here with the
// lock released. An empty buffer serializes as [].
func (h *Handler) Logs(w http.ResponseWriter, r *http.Request) {
	items := h.ring.Snapshot()

	data, err := json.Marshal(items)
	if err != nil {
		logging.Error().Err(err).Str("module", ModuleName).Msg("Failed to marshal log items")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Str("module", ModuleName).Msg("Failed to write log items response")
	}
}
