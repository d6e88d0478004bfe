// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/prometheus/client_golang/prometheus"
	ctoml "github.com/quentinv72/reth/dot/config/toml"
	"github.com/quentinv72/reth/dot/state"
	"github.com/quentinv72/reth/dot/subscription"
	"github.com/quentinv72/reth/dot/types"
	"github.com/quentinv72/reth/internal/httpserver"
	"github.com/quentinv72/reth/internal/log"
	telemetry "github.com/quentinv72/reth/internal/metrics"
	"github.com/quentinv72/reth/internal/pprof"
	"github.com/quentinv72/reth/internal/state/metrics"
)

const drainTimeout = 10 * time.Second

var errListenerNotDrained = errors.New("listener did not drain its subscription")

type listenerWithHandler struct {
	listener *subscription.CanonStateListener
	handler  *countingHandler
}

// simulation commits a synthetic chain block by block on a notification
// bus, then reorgs its tip, while listeners consume the notifications.
type simulation struct {
	cfg      *ctoml.Config
	registry *prometheus.Registry
}

func newSimulation(cfg *ctoml.Config) *simulation {
	return &simulation{
		cfg:      cfg,
		registry: prometheus.NewRegistry(),
	}
}

func (s *simulation) run() (err error) {
	busMetrics, err := metrics.NewPrometheus(s.registry)
	if err != nil {
		return fmt.Errorf("cannot create metrics: %w", err)
	}

	if address := s.cfg.Global.MetricsAddress; address != "" {
		var timeout time.Duration
		timeout, err = metricsShutdownTimeout(s.cfg.Global)
		if err != nil {
			return err
		}
		server := telemetry.NewServer(address, s.registry, httpserver.ShutdownTimeout(timeout))
		if err = server.Start(); err != nil {
			return fmt.Errorf("cannot start metrics server: %w", err)
		}
		defer stopService("metrics server", server, &err)
	}

	if s.cfg.Pprof.ListeningAddress != "" {
		service := pprof.NewService(pprof.Settings{
			ListeningAddress: s.cfg.Pprof.ListeningAddress,
			BlockProfileRate: s.cfg.Pprof.BlockProfileRate,
			MutexProfileRate: s.cfg.Pprof.MutexProfileRate,
		}, logger)
		if err = service.Start(); err != nil {
			return fmt.Errorf("cannot start pprof service: %w", err)
		}
		defer stopService("pprof service", service, &err)
	}

	bus := state.NewNotificationBus(
		state.WithCapacity(s.cfg.Bus.Capacity),
		state.WithMetrics(busMetrics),
		state.WithLogger(logger.New(log.AddContext("service", "bus"))),
	)

	listeners := make([]listenerWithHandler, s.cfg.Simulation.Subscribers)
	for i := range listeners {
		handler := newCountingHandler(logger.New(log.AddContext("listener", fmt.Sprint(i))))
		listener := subscription.NewCanonStateListener(bus, handler)
		listener.Listen()
		listeners[i] = listenerWithHandler{listener: listener, handler: handler}
	}

	if err := s.publish(bus); err != nil {
		bus.Close()
		return err
	}

	bus.Close()

	for i, l := range listeners {
		select {
		case <-l.listener.Done():
		case <-time.After(drainTimeout):
			return fmt.Errorf("%w: listener %d", errListenerNotDrained, i)
		}

		if err := l.listener.Stop(); err != nil {
			return fmt.Errorf("cannot stop listener %d: %w", i, err)
		}
		logger.Infof("listener %d totals: %s", i, l.handler)
	}
	return nil
}

// publish commits each synthetic block as a single block chain,
// then reorgs the last reorg-depth blocks onto a longer fork.
func (s *simulation) publish(bus *state.NotificationBus) error {
	factory := state.NewExecutedBlockFactory(s.cfg.Simulation.Seed)

	canonical := make([]*types.ExecutedBlock, 0, s.cfg.Simulation.Blocks)
	blocks := factory.ExecutedBlocks(0, s.cfg.Simulation.Blocks)
	for block, ok := blocks.Next(); ok; block, ok = blocks.Next() {
		chain, err := types.NewChain(block)
		if err != nil {
			return fmt.Errorf("cannot build chain for block #%d: %w", block.Number(), err)
		}
		bus.PublishCommit(chain)
		canonical = append(canonical, block)
	}
	logger.Infof("committed %d blocks", len(canonical))

	depth := s.cfg.Simulation.ReorgDepth
	if depth == 0 || depth > uint64(len(canonical)) {
		return nil
	}

	oldChain, newChain, err := buildReorg(factory, canonical, depth)
	if err != nil {
		return err
	}
	bus.PublishReorg(oldChain, newChain)
	logger.Infof("reorged %s onto %s", oldChain, newChain)
	return nil
}

// buildReorg reverts the last depth canonical blocks and replaces them
// with a fork one block longer.
func buildReorg(factory *state.ExecutedBlockFactory, canonical []*types.ExecutedBlock,
	depth uint64) (oldChain, newChain *types.Chain, err error) {
	forkIndex := uint64(len(canonical)) - depth

	oldChain, err = types.NewChain(canonical[forkIndex:]...)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot build reverted chain: %w", err)
	}

	var parentHash common.Hash
	if forkIndex > 0 {
		parentHash = canonical[forkIndex-1].Hash()
	}

	fork := make([]*types.ExecutedBlock, 0, depth+1)
	number := oldChain.First().Number()
	for i := uint64(0); i <= depth; i++ {
		block := factory.ExecutedBlockWithNumber(number+i, parentHash)
		fork = append(fork, block)
		parentHash = block.Hash()
	}

	newChain, err = types.NewChain(fork...)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot build fork chain: %w", err)
	}
	return oldChain, newChain, nil
}

type stopper interface {
	Stop() error
}

// stopService stops the service and sets *errPtr to the stop
// error if it is nil.
func stopService(name string, service stopper, errPtr *error) {
	err := service.Stop()
	if err == nil {
		return
	}
	err = fmt.Errorf("cannot stop %s: %w", name, err)
	if *errPtr == nil {
		*errPtr = err
		return
	}
	logger.Error(err.Error())
}
