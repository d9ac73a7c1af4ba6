// Lotwire - In-Process Ring Buffer Log Sink with HTTP Exposure
// Copyright 2026 dynamoRando
// SPDX-License-Identifier: MIT
// https://github.com/dynamoRando/lotwire

package sink

import (
	"context"
	"log/slog"
	"testing"
)

func TestSlogHandler_RecordsReachRing(t *testing.T) {
	r := New(50, LevelTrace)
	logger := slog.New(NewSlogHandler(r))

	logger.Debug("Debug")
	logger.Error("Error")

	got := r.Snapshot()
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	if got[0].Level != "debug" || got[0].Message != "Debug" {
		t.Errorf("first item = %+v", got[0])
	}
	if got[1].Level != "error" || got[1].Message != "Error" {
		t.Errorf("second item = %+v", got[1])
	}
}

func TestSlogHandler_ModuleFromAttr(t *testing.T) {
	r := New(10, LevelTrace)
	logger := slog.New(NewSlogHandler(r))

	logger.Info("tagged", slog.String(ModuleKey, "billing"))
	logger.With(slog.String(ModuleKey, "payments")).Warn("pre-set")
	logger.Info("untagged")

	got := r.Snapshot()
	if len(got) != 3 {
		t.Fatalf("expected 3 items, got %d", len(got))
	}
	if got[0].Module != "billing" {
		t.Errorf("per-record attr: module = %q, want billing", got[0].Module)
	}
	if got[1].Module != "payments" {
		t.Errorf("With attr: module = %q, want payments", got[1].Module)
	}
	if got[2].Module != "app" {
		t.Errorf("fallback module = %q, want app", got[2].Module)
	}
}

func TestSlogHandler_ModuleFromGroups(t *testing.T) {
	r := New(10, LevelTrace)
	logger := slog.New(NewSlogHandler(r)).WithGroup("http").WithGroup("client")

	logger.Info("grouped")

	got := r.Snapshot()
	if len(got) != 1 {
		t.Fatalf("expected 1 item, got %d", len(got))
	}
	if got[0].Module != "http.client" {
		t.Errorf("module = %q, want http.client", got[0].Module)
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	r := New(10, LevelWarn)
	h := NewSlogHandler(r)

	tests := []struct {
		level slog.Level
		want  bool
	}{
		{slog.LevelDebug, false},
		{slog.LevelInfo, false},
		{slog.LevelWarn, true},
		{slog.LevelError, true},
	}
	for _, tt := range tests {
		if got := h.Enabled(context.Background(), tt.level); got != tt.want {
			t.Errorf("Enabled(%v) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestSlogHandler_ThresholdAppliesOnHandle(t *testing.T) {
	r := New(10, LevelError)
	logger := slog.New(NewSlogHandler(r))

	logger.Info("dropped")
	logger.Error("kept")

	got := r.Snapshot()
	if len(got) != 1 || got[0].Message != "kept" {
		t.Fatalf("unexpected snapshot %+v", got)
	}
}

func TestSlogToSinkLevel(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want Level
	}{
		{slog.LevelDebug - 4, LevelTrace},
		{slog.LevelDebug, LevelDebug},
		{slog.LevelInfo, LevelInfo},
		{slog.LevelWarn, LevelWarn},
		{slog.LevelError, LevelError},
		{slog.LevelError + 4, LevelError},
	}
	for _, tt := range tests {
		if got := slogToSinkLevel(tt.in); got != tt.want {
			t.Errorf("slogToSinkLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
