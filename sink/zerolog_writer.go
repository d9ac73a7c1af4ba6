// Lotwire - In-Process Ring Buffer Log Sink with HTTP Exposure
// Copyright 2026 dynamoRando
// SPDX-License-Identifier: MIT
// https://github.com/dynamoRando/lotwire

package sink

import (
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// ZerologWriter implements zerolog.LevelWriter on top of a Ring, so a
// zerolog-based application can tee its output into the sink:
//
//	log.Logger = zerolog.New(zerolog.MultiLevelWriter(os.Stderr, sink.NewZerologWriter(ring)))
//
// The writer decodes the serialized event to recover the "module" and
// "message" fields. Events that are not valid JSON are ignored.
type ZerologWriter struct {
	ring *Ring
}

// NewZerologWriter creates a writer that feeds the given ring.
func NewZerologWriter(ring *Ring) *ZerologWriter {
	return &ZerologWriter{ring: ring}
}

// Write handles events logged without a level (zerolog's Log()).
func (w *ZerologWriter) Write(p []byte) (int, error) {
	return w.write(zerolog.NoLevel, p)
}

// WriteLevel handles leveled events.
func (w *ZerologWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	return w.write(level, p)
}

func (w *ZerologWriter) write(level zerolog.Level, p []byte) (int, error) {
	var ev struct {
		Level   string `json:"level"`
		Module  string `json:"module"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(p, &ev); err != nil {
		// Never surface an error into the logging path.
		return len(p), nil
	}

	module := ev.Module
	if module == "" {
		module = defaultModule
	}

	w.ring.Record(zerologToSinkLevel(level), module, ev.Message)
	return len(p), nil
}

// zerologToSinkLevel maps zerolog levels onto the sink's severities.
// Fatal and panic fold into error; unleveled events count as info.
func zerologToSinkLevel(level zerolog.Level) Level {
	switch level {
	case zerolog.TraceLevel:
		return LevelTrace
	case zerolog.DebugLevel:
		return LevelDebug
	case zerolog.InfoLevel:
		return LevelInfo
	case zerolog.WarnLevel:
		return LevelWarn
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		return LevelError
	default:
		return LevelInfo
	}
}
