// Lotwire - In-Process Ring Buffer Log Sink with HTTP Exposure
// Copyright 2026 dynamoRando
// SPDX-License-Identifier: MIT
// https://github.com/dynamoRando/lotwire

// Package config loads lotwire settings from a YAML file plus
// environment overrides using Koanf v2.
package config

import "fmt"

// Config holds the loaded configuration. Address, Port, NumMessages, and
// Level are required; the rest have defaults.
type Config struct {
	// Address is the bind address for the exposure server.
	Address string `koanf:"address"`

	// Port is the bind port, 0-65535.
	Port int `koanf:"port"`

	// NumMessages is the ring buffer capacity.
	NumMessages int `koanf:"num_messages"`

	// Level is the minimum severity retained by the sink: one of
	// error, warn, info, debug, trace. Unrecognized values fall back
	// to error at parse time rather than failing here.
	Level string `koanf:"level"`

	// LogLevel controls the process's own operational logging.
	LogLevel string `koanf:"log_level"`

	// LogFormat is json or console.
	LogFormat string `koanf:"log_format"`

	// ExcludeModules lists extra module substrings the sink drops, in
	// addition to the exposure server's own identifier.
	ExcludeModules []string `koanf:"exclude_modules"`
}

// ambientDefaults carries defaults for the optional keys only. The
// required keys are deliberately absent from this struct: the defaults
// layer must not put them into koanf, or the required-key check would
// see the zero values and a missing address, port, capacity, or level
// would limp along instead of aborting startup.
type ambientDefaults struct {
	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`
}

func defaultConfig() *ambientDefaults {
	return &ambientDefaults{
		LogLevel:  "info",
		LogFormat: "json",
	}
}

// Validate checks the loaded configuration. Any failure here is fatal at
// startup; there is no partial or degraded mode.
func (c *Config) Validate() error {
	if c.Address == "" {
		return fmt.Errorf("address must not be empty")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range 0-65535", c.Port)
	}
	if c.NumMessages <= 0 {
		return fmt.Errorf("num_messages must be positive, got %d", c.NumMessages)
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		return fmt.Errorf("log_format must be json or console, got %q", c.LogFormat)
	}
	return nil
}
