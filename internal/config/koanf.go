// Lotwire - In-Process Ring Buffer Log Sink with HTTP Exposure
// Copyright 2026 dynamoRando
// SPDX-License-Identifier: MIT
// https://github.com/dynamoRando/lotwire

package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix for environment variable overrides:
// LOTWIRE_PORT overrides the "port" key, and so on.
const EnvPrefix = "LOTWIRE_"

// requiredKeys must be present after all layers are loaded.
var requiredKeys = []string{"address", "port", "num_messages", "level"}

// Load reads configuration with layered sources, highest priority last:
//
//  1. Defaults for the optional keys
//  2. The named YAML file in the given directory
//  3. LOTWIRE_-prefixed environment variables
//
// A missing file, a missing required key, or an unparseable value returns
// an error; callers treat that as fatal before any server state exists.
func Load(dir, filename string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	path := filepath.Join(dir, filename)
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load config file %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("load environment variables: %w", err)
	}

	for _, key := range requiredKeys {
		if !k.Exists(key) {
			return nil, fmt.Errorf("missing required config key %q", key)
		}
	}

	// exclude_modules arrives as a comma-separated string from env vars.
	if raw, ok := k.Get("exclude_modules").(string); ok {
		if err := k.Set("exclude_modules", splitCommaList(raw)); err != nil {
			return nil, fmt.Errorf("set exclude_modules: %w", err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// envTransformFunc maps LOTWIRE_-prefixed environment variables to config
// keys. Unknown variables are skipped so unrelated environment entries
// never pollute the config.
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	switch key {
	case "address", "port", "num_messages", "level",
		"log_level", "log_format", "exclude_modules":
		return key
	}
	return ""
}

func splitCommaList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
