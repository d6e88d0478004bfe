// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package httpserver

import (
	"net/http"
	"time"
)

const (
	readTimeout            = 10 * time.Second
	readHeaderTimeout      = time.Second
	defaultShutdownTimeout = 3 * time.Second
)

// Option is a functional option for the HTTP server.
type Option func(s *settings)

type settings struct {
	name            string
	address         string
	handler         http.Handler
	logger          Infoer
	shutdownTimeout time.Duration
}

func newSettings(options []Option) settings {
	s := settings{
		handler:         http.NotFoundHandler(),
		logger:          noopInfoer{},
		shutdownTimeout: defaultShutdownTimeout,
	}
	for _, option := range options {
		option(&s)
	}
	return s
}

// Address sets the listening address of the server. The empty
// address listens on all interfaces on a port assigned by the OS.
func Address(address string) Option {
	return func(s *settings) {
		s.address = address
	}
}

// Handler sets the handler serving every request.
// It defaults to a handler replying 404 to everything.
func Handler(handler http.Handler) Option {
	return func(s *settings) {
		s.handler = handler
	}
}

// Infoer logs information messages at the info level.
type Infoer interface {
	Info(message string)
}

// Logger sets the logger of the server and the name
// prefixing its log messages. It defaults to no logging.
func Logger(name string, logger Infoer) Option {
	return func(s *settings) {
		s.name = name
		s.logger = logger
	}
}

// ShutdownTimeout sets how long a graceful shutdown may take once
// the run context is canceled. It defaults to 3 seconds and values
// below or equal to zero are ignored.
func ShutdownTimeout(timeout time.Duration) Option {
	return func(s *settings) {
		if timeout > 0 {
			s.shutdownTimeout = timeout
		}
	}
}

type noopInfoer struct{}

func (noopInfoer) Info(string) {}
