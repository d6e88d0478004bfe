// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
)

// Server is an HTTP server implementation.
type Server struct {
	settings settings

	addressMutex sync.RWMutex
	boundAddress string
}

// New creates a new HTTP server with the options given.
func New(options ...Option) *Server {
	return &Server{
		settings: newSettings(options),
	}
}

// Address returns the address the server is listening on,
// or the empty string if it is not listening yet.
func (s *Server) Address() string {
	s.addressMutex.RLock()
	defer s.addressMutex.RUnlock()
	return s.boundAddress
}

// Run runs the HTTP server until the context is canceled.
// The ready channel is closed once the server listens, and
// the done channel receives the exit error, or nil after a
// graceful shutdown.
func (s *Server) Run(ctx context.Context, ready chan<- struct{}, done chan<- error) {
	listener, err := net.Listen("tcp", s.settings.address)
	if err != nil {
		done <- fmt.Errorf("cannot listen on %s: %w", s.settings.address, err)
		return
	}

	s.serve(ctx, listener, ready, done)
}

// serve serves on the listener and only returns once the
// shutdown goroutine has exited.
func (s *Server) serve(ctx context.Context, listener net.Listener,
	ready chan<- struct{}, done chan<- error) {
	server := &http.Server{
		Handler:           s.settings.handler,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	s.addressMutex.Lock()
	s.boundAddress = listener.Addr().String()
	s.addressMutex.Unlock()

	serveCtx, stopServing := context.WithCancel(ctx)
	defer stopServing()
	shutdownDone := make(chan error, 1)
	go func() {
		<-serveCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.settings.shutdownTimeout)
		defer cancel()
		shutdownDone <- server.Shutdown(shutdownCtx)
	}()

	s.settings.logger.Info(s.settings.name + " http server listening on " + s.Address())
	close(ready)

	serveErr := server.Serve(listener)
	stopServing()
	shutdownErr := <-shutdownDone

	switch {
	case serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed):
		done <- fmt.Errorf("%s http server crashed: %w", s.settings.name, serveErr)
	case shutdownErr != nil:
		done <- fmt.Errorf("%s http server shutdown failed: %w", s.settings.name, shutdownErr)
	default:
		done <- nil
	}
}
