// Lotwire - In-Process Ring Buffer Log Sink with HTTP Exposure
// Copyright 2026 dynamoRando
// SPDX-License-Identifier: MIT
// https://github.com/dynamoRando/lotwire

// Package main runs lotwire as a standalone log server.
//
// Startup order: load configuration (fatal on any missing or invalid
// key), initialize operational logging, build the sink, register it as
// the slog default, then start the supervised exposure server. The
// process serves until SIGINT or SIGTERM.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dynamoRando/lotwire"
	"github.com/dynamoRando/lotwire/internal/config"
	"github.com/dynamoRando/lotwire/internal/logging"
	"github.com/dynamoRando/lotwire/sink"
)

func main() {
	configDir := flag.String("config-dir", ".", "directory containing the config file")
	configFile := flag.String("config-file", "config.yaml", "config file name")
	flag.Parse()

	cfg, err := config.Load(*configDir, *configFile)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	settings := lotwire.SettingsFromValues(
		cfg.Address, cfg.Port, sink.ParseLevel(cfg.Level), cfg.NumMessages)
	server := lotwire.New(settings, lotwire.WithExcludedModules(cfg.ExcludeModules...))
	server.RegisterSlogDefault()

	startCtx, cancelStart := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStart()
	if err := server.Start(startCtx); err != nil {
		logging.Fatal().Err(err).Msg("Failed to start log server")
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")

	stopCtx, cancelStop := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStop()
	if err := server.Stop(stopCtx); err != nil {
		logging.Error().Err(err).Msg("Shutdown did not complete cleanly")
		os.Exit(1)
	}
	logging.Info().Msg("Log server stopped")
}
