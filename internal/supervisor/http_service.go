// Lotwire - In-Process Ring Buffer Log Sink with HTTP Exposure
// Copyright 2026 dynamoRando
// SPDX-License-Identifier: MIT
// https://github.com/dynamoRando/lotwire

package supervisor

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"
)

// HTTPService runs an *http.Server as a supervised service.
//
// Unlike a bare ListenAndServe goroutine, the listener is bound
// synchronously inside Serve and the result of the first bind attempt is
// published on Ready. That gives the caller that started the server a
// way to learn that the port was taken instead of the failure vanishing
// into a background thread.
type HTTPService struct {
	server          *http.Server
	shutdownTimeout time.Duration
	name            string

	readyOnce sync.Once
	ready     chan error

	mu   sync.Mutex
	addr string
}

// NewHTTPService creates a supervised wrapper around the given server.
// The server's Addr field determines the bind address; a port of 0 binds
// an ephemeral port, readable from Addr after Ready reports success.
func NewHTTPService(server *http.Server, shutdownTimeout time.Duration) *HTTPService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	return &HTTPService{
		server:          server,
		shutdownTimeout: shutdownTimeout,
		name:            "http-server",
		ready:           make(chan error, 1),
	}
}

// Ready yields the result of the first bind attempt: nil once the
// listener is accepting, or the bind error. It fires exactly once;
// supervisor restarts after the first report are logged, not re-signaled.
func (s *HTTPService) Ready() <-chan error {
	return s.ready
}

// Addr returns the bound listen address. Valid after Ready reports nil.
func (s *HTTPService) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

func (s *HTTPService) signalReady(err error) {
	s.readyOnce.Do(func() {
		s.ready <- err
		close(s.ready)
	})
}

// Serve implements suture.Service.
//
//  1. Bind the listener; publish the result on Ready
//  2. Serve until context cancellation or server error
//  3. On cancellation, shut down gracefully within the timeout
//
// http.ErrServerClosed is converted to nil since it is expected on
// shutdown.
func (s *HTTPService) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		err = fmt.Errorf("bind %s: %w", s.server.Addr, err)
		s.signalReady(err)
		return err
	}

	s.mu.Lock()
	s.addr = ln.Addr().String()
	s.mu.Unlock()
	s.signalReady(nil)

	errCh := make(chan error, 1)
	go func() {
		if serveErr := s.server.Serve(ln); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errCh <- serveErr
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil

	case <-ctx.Done():
		// Use a fresh context for shutdown since the original is canceled.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}

		<-errCh
		return ctx.Err()
	}
}

// String implements fmt.Stringer; suture uses it to identify the service
// in log messages.
func (s *HTTPService) String() string {
	return s.name
}
