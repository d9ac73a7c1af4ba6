// Lotwire - In-Process Ring Buffer Log Sink with HTTP Exposure
// Copyright 2026 dynamoRando
// SPDX-License-Identifier: MIT
// https://github.com/dynamoRando/lotwire

package sink

import (
	"context"
	"log/slog"
	"strings"
)

// defaultModule names records whose origin the adapter cannot determine.
const defaultModule = "app"

// ModuleKey is the slog attribute consulted for a record's originating
// module. Loggers created with .With(slog.String(sink.ModuleKey, name))
// tag every record they emit.
const ModuleKey = "module"

// SlogHandler implements slog.Handler on top of a Ring. This is how an
// application registers the sink as its active logger:
//
//	slog.SetDefault(slog.New(sink.NewSlogHandler(ring)))
//
// The record's module is taken from the "module" attribute when present,
// otherwise from the handler's accumulated groups.
type SlogHandler struct {
	ring   *Ring
	module string
	groups []string
}

// NewSlogHandler creates a handler that feeds the given ring.
func NewSlogHandler(ring *Ring) *SlogHandler {
	return &SlogHandler{ring: ring}
}

// Enabled reports whether the ring retains records at the given level.
func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.ring.Enabled(slogToSinkLevel(level))
}

// Handle forwards the record into the ring.
//
//nolint:gocritic // slog.Record is passed by value per slog.Handler interface
func (h *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	module := h.module

	// A per-record module attribute wins over the handler's.
	record.Attrs(func(attr slog.Attr) bool {
		if attr.Key == ModuleKey {
			module = attr.Value.String()
			return false
		}
		return true
	})

	if module == "" && len(h.groups) > 0 {
		module = strings.Join(h.groups, ".")
	}
	if module == "" {
		module = defaultModule
	}

	h.ring.Record(slogToSinkLevel(record.Level), module, record.Message)
	return nil
}

// WithAttrs returns a handler that remembers a "module" attribute when
// one is given. Other attributes are not retained; items hold only the
// rendered message.
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := *h
	for _, attr := range attrs {
		if attr.Key == ModuleKey {
			out.module = attr.Value.String()
		}
	}
	return &out
}

// WithGroup returns a handler whose group path serves as the module name
// fallback.
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	out := *h
	out.groups = append(append([]string(nil), h.groups...), name)
	return &out
}

// slogToSinkLevel maps slog levels onto the sink's five severities.
// Anything below slog.LevelDebug counts as trace.
func slogToSinkLevel(level slog.Level) Level {
	switch {
	case level < slog.LevelDebug:
		return LevelTrace
	case level < slog.LevelInfo:
		return LevelDebug
	case level < slog.LevelWarn:
		return LevelInfo
	case level < slog.LevelError:
		return LevelWarn
	default:
		return LevelError
	}
}
