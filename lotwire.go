// Lotwire - In-Process Ring Buffer Log Sink with HTTP Exposure
// Copyright 2026 dynamoRando
// SPDX-License-Identifier: MIT
// https://github.com/dynamoRando/lotwire

// Package lotwire retains the most recent N log records of a running
// application in a fixed-capacity ring buffer and serves that buffer
// over a minimal HTTP API, for ad hoc diagnostics of a live service
// without external log infrastructure.
//
// Typical embedding:
//
//	settings, err := lotwire.NewSettings(".", "config.yaml")
//	if err != nil {
//	    // fatal: no partial configuration
//	}
//	srv := lotwire.New(settings)
//	srv.RegisterSlogDefault()
//
//	if err := srv.Start(ctx); err != nil {
//	    // bind failure, surfaced synchronously
//	}
//	defer srv.Stop(context.Background())
//
// The sink and the server share one *sink.Ring by reference; there is no
// global registry. Applications that prefer their own logging setup can
// take Sink() and wire it through sink.NewSlogHandler or
// sink.NewZerologWriter themselves.
package lotwire

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/dynamoRando/lotwire/internal/api"
	"github.com/dynamoRando/lotwire/internal/config"
	"github.com/dynamoRando/lotwire/internal/logging"
	"github.com/dynamoRando/lotwire/internal/supervisor"
	"github.com/dynamoRando/lotwire/sink"
)

// Settings is the immutable configuration of a LogServer.
type Settings struct {
	// Address is the bind address of the exposure server.
	Address string

	// Port is the bind port. 0 binds an ephemeral port, readable from
	// Addr after Start.
	Port int

	// Level is the minimum severity the sink retains.
	Level sink.Level

	// Capacity is the maximum number of buffered records.
	Capacity int
}

// NewSettings loads settings from the named YAML file in the given
// directory, with LOTWIRE_-prefixed environment variables overriding
// individual keys. Missing or unparseable required keys are an error;
// callers must not continue with partial configuration.
func NewSettings(dir, filename string) (Settings, error) {
	cfg, err := config.Load(dir, filename)
	if err != nil {
		return Settings{}, err
	}
	return Settings{
		Address:  cfg.Address,
		Port:     cfg.Port,
		Level:    sink.ParseLevel(cfg.Level),
		Capacity: cfg.NumMessages,
	}, nil
}

// SettingsFromValues builds settings directly, for embedders that manage
// configuration themselves.
func SettingsFromValues(address string, port int, level sink.Level, capacity int) Settings {
	return Settings{Address: address, Port: port, Level: level, Capacity: capacity}
}

// Option configures a LogServer at construction time.
type Option func(*LogServer)

// WithExcludedModules adds module substrings the sink drops, on top of
// the exposure server's own identifier.
func WithExcludedModules(modules ...string) Option {
	return func(s *LogServer) {
		s.exclude = append(s.exclude, modules...)
	}
}

// LogServer owns the shared ring buffer sink and the exposure server
// serving it.
type LogServer struct {
	settings Settings
	exclude  []string
	ring     *sink.Ring

	svc    *supervisor.HTTPService
	cancel context.CancelFunc
	done   <-chan error
}

// New creates a LogServer. The ring is built once here and lives for the
// server's lifetime; records from the server's own HTTP layer are
// excluded so serving a request never generates more buffer traffic.
func New(settings Settings, opts ...Option) *LogServer {
	s := &LogServer{
		settings: settings,
		exclude:  []string{api.ModuleName},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.ring = sink.New(settings.Capacity, settings.Level, sink.WithExcludedModules(s.exclude...))
	return s
}

// Sink returns the shared ring handle. Logger registration and the
// exposure server both reach this same instance.
func (s *LogServer) Sink() *sink.Ring {
	return s.ring
}

// RegisterSlogDefault installs the sink as the process-wide slog
// destination. Call before Start so records produced during startup are
// retained.
func (s *LogServer) RegisterSlogDefault() {
	slog.SetDefault(slog.New(sink.NewSlogHandler(s.ring)))
}

// Start launches the exposure server on its own goroutines, supervised
// with restart backoff. It blocks only until the listener is bound and
// returns the bind error if the address is unusable; the passed context
// bounds that wait. Serving continues until Stop.
func (s *LogServer) Start(ctx context.Context) error {
	handler := api.NewHandler(s.ring).Routes()
	addr := net.JoinHostPort(s.settings.Address, strconv.Itoa(s.settings.Port))
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	cfg := supervisor.DefaultTreeConfig()
	s.svc = supervisor.NewHTTPService(srv, cfg.ShutdownTimeout)

	tree := supervisor.NewTree(slog.New(logging.NewSlogHandler()), cfg)
	tree.Add(s.svc)

	runCtx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = tree.ServeBackground(runCtx)

	select {
	case err := <-s.svc.Ready():
		if err != nil {
			cancel()
			<-s.done
			s.cancel = nil
			return err
		}
		logging.Info().Str("addr", s.svc.Addr()).Msg("log server listening")
		return nil
	case err := <-s.done:
		cancel()
		s.cancel = nil
		if err == nil {
			err = errors.New("supervisor stopped before server became ready")
		}
		return err
	case <-ctx.Done():
		cancel()
		<-s.done
		s.cancel = nil
		return ctx.Err()
	}
}

// Addr returns the bound listen address after a successful Start.
func (s *LogServer) Addr() string {
	if s.svc == nil {
		return ""
	}
	return s.svc.Addr()
}

// Stop shuts the exposure server down gracefully and waits for the
// supervisor to finish, bounded by the given context. Stopping a server
// that was never started is a no-op.
func (s *LogServer) Stop(ctx context.Context) error {
	if s.cancel == nil {
		return nil
	}
	s.cancel()
	select {
	case err := <-s.done:
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
