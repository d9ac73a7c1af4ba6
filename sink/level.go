// Lotwire - In-Process Ring Buffer Log Sink with HTTP Exposure
// Copyright 2026 dynamoRando
// SPDX-License-Identifier: MIT
// https://github.com/dynamoRando/lotwire

package sink

// Level is the severity of a log record. Higher values are more severe.
type Level int8

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

// level labels as they appear in configuration and in serialized items.
const (
	labelTrace = "trace"
	labelDebug = "debug"
	labelInfo  = "info"
	labelWarn  = "warn"
	labelError = "error"
)

// ParseLevel converts a severity label to a Level. Matching is
// case-sensitive against the five lowercase labels; any other string maps
// to LevelError. Misconfigured levels therefore retain only the most
// severe records instead of failing.
func ParseLevel(label string) Level {
	switch label {
	case labelTrace:
		return LevelTrace
	case labelDebug:
		return LevelDebug
	case labelInfo:
		return LevelInfo
	case labelWarn:
		return LevelWarn
	case labelError:
		return LevelError
	default:
		return LevelError
	}
}

// String returns the lowercase label for the level.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return labelTrace
	case LevelDebug:
		return labelDebug
	case LevelInfo:
		return labelInfo
	case LevelWarn:
		return labelWarn
	default:
		return labelError
	}
}
