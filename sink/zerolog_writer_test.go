// Lotwire - In-Process Ring Buffer Log Sink with HTTP Exposure
// Copyright 2026 dynamoRando
// SPDX-License-Identifier: MIT
// https://github.com/dynamoRando/lotwire

package sink

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestZerologWriter_RecordsReachRing(t *testing.T) {
	r := New(50, LevelTrace)
	logger := zerolog.New(NewZerologWriter(r))

	logger.Debug().Str("module", "worker").Msg("Debug")
	logger.Error().Str("module", "worker").Msg("Error")

	got := r.Snapshot()
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	if got[0] != (Item{Level: "debug", Module: "worker", Message: "Debug"}) {
		t.Errorf("first item = %+v", got[0])
	}
	if got[1] != (Item{Level: "error", Module: "worker", Message: "Error"}) {
		t.Errorf("second item = %+v", got[1])
	}
}

func TestZerologWriter_DefaultModule(t *testing.T) {
	r := New(10, LevelTrace)
	logger := zerolog.New(NewZerologWriter(r))

	logger.Info().Msg("no module field")

	got := r.Snapshot()
	if len(got) != 1 {
		t.Fatalf("expected 1 item, got %d", len(got))
	}
	if got[0].Module != "app" {
		t.Errorf("module = %q, want app", got[0].Module)
	}
}

func TestZerologWriter_ThresholdApplies(t *testing.T) {
	r := New(10, LevelWarn)
	logger := zerolog.New(NewZerologWriter(r))

	logger.Info().Msg("dropped")
	logger.Warn().Msg("kept")

	got := r.Snapshot()
	if len(got) != 1 || got[0].Message != "kept" {
		t.Fatalf("unexpected snapshot %+v", got)
	}
}

func TestZerologWriter_MultiWriterSharesRing(t *testing.T) {
	r := New(10, LevelTrace)
	var discard discardWriter
	logger := zerolog.New(zerolog.MultiLevelWriter(discard, NewZerologWriter(r)))

	logger.Error().Str("module", "worker").Msg("teed")

	if r.Len() != 1 {
		t.Fatalf("expected teed record in ring, got %d items", r.Len())
	}
}

func TestZerologToSinkLevel(t *testing.T) {
	tests := []struct {
		in   zerolog.Level
		want Level
	}{
		{zerolog.TraceLevel, LevelTrace},
		{zerolog.DebugLevel, LevelDebug},
		{zerolog.InfoLevel, LevelInfo},
		{zerolog.WarnLevel, LevelWarn},
		{zerolog.ErrorLevel, LevelError},
		{zerolog.FatalLevel, LevelError},
		{zerolog.PanicLevel, LevelError},
		{zerolog.NoLevel, LevelInfo},
	}
	for _, tt := range tests {
		if got := zerologToSinkLevel(tt.in); got != tt.want {
			t.Errorf("zerologToSinkLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
