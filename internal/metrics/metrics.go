// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/quentinv72/reth/internal/httpserver"
	"github.com/quentinv72/reth/internal/log"
)

const defaultStopTimeout = 30 * time.Second

var logger log.LeveledLogger = log.NewFromGlobal(log.AddContext("pkg", "metrics"))

var (
	// ErrServerDoneBeforeReady is returned by Start if the server
	// exits without error before listening.
	ErrServerDoneBeforeReady = errors.New("metrics server terminated before being ready")
	// ErrStopTimeout is returned by Stop if the server does not
	// exit before the stop timeout.
	ErrStopTimeout = errors.New("metrics server exit timeout")
)

// Server is a metrics http server
type Server struct {
	address     string
	server      Runner
	cancel      context.CancelFunc
	done        chan error
	stopTimeout time.Duration
}

// NewServer is a constructor for a metrics server exposing the
// metrics of the gatherer given on /metrics. Options given are
// applied after the address, handler and logger options.
func NewServer(address string, gatherer prometheus.Gatherer,
	options ...httpserver.Option) (s *Server) {
	m := http.NewServeMux()
	m.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	options = append([]httpserver.Option{
		httpserver.Address(address),
		httpserver.Handler(m),
		httpserver.Logger("metrics", logger),
	}, options...)
	return &Server{
		address:     address,
		server:      httpserver.New(options...),
		done:        make(chan error),
		stopTimeout: defaultStopTimeout,
	}
}

// Start will start a dedicated metrics server and returns
// once it is listening.
func (s *Server) Start() (err error) {
	logger.Infof("Starting metrics server at http://%s/metrics", s.address)

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	ready := make(chan struct{})

	go s.server.Run(ctx, ready, s.done)

	select {
	case <-ready:
		return nil
	case err := <-s.done:
		cancel()
		if err != nil {
			return err
		}
		return ErrServerDoneBeforeReady
	}
}

// Stop will stop the metrics server
func (s *Server) Stop() (err error) {
	s.cancel()

	timer := time.NewTimer(s.stopTimeout)
	defer timer.Stop()

	select {
	case err := <-s.done:
		if err != nil {
			return fmt.Errorf("stopping metrics server: %w", err)
		}
		return nil
	case <-timer.C:
		return ErrStopTimeout
	}
}
