// Lotwire - In-Process Ring Buffer Log Sink with HTTP Exposure
// Copyright 2026 dynamoRando
// SPDX-License-Identifier: MIT
// https://github.com/dynamoRando/lotwire

// Package sink implements the bounded log buffer at the core of lotwire:
// a mutex-guarded, fixed-capacity FIFO of log items with evict-oldest
// overflow behavior, plus adapters that register a ring as the
// destination of an application's slog or zerolog output.
//
// The intended wiring is one *Ring shared by two owners: the logging
// registration point (via NewSlogHandler or NewZerologWriter) and the
// HTTP exposure layer (via Snapshot). Records flow in from any number of
// goroutines; snapshots copy the buffer out under the same lock so the
// server never serializes while writers are blocked.
package sink
