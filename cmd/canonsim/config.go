// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"errors"
	"fmt"
	"time"

	ctoml "github.com/quentinv72/reth/dot/config/toml"
	"github.com/quentinv72/reth/internal/log"
	"github.com/urfave/cli"
)

var (
	errInvalidCapacity    = errors.New("capacity must be positive")
	errInvalidSubscribers = errors.New("subscribers cannot be negative")
	errReorgTooDeep       = errors.New("reorg depth exceeds the number of blocks")
	errNegativeTimeout    = errors.New("timeout cannot be negative")
)

// createConfig builds the configuration from the defaults, the optional
// toml file and finally the command line flags.
func createConfig(ctx *cli.Context) (*ctoml.Config, error) {
	cfg := ctoml.Default()

	if cfgPath := ctx.String(ConfigFlag.Name); cfgPath != "" {
		logger.Info("loading toml configuration from " + cfgPath + "...")
		if err := ctoml.LoadFile(cfgPath, cfg); err != nil {
			return nil, err
		}
	}

	setGlobalConfigFromFlags(ctx, &cfg.Global)
	setBusConfigFromFlags(ctx, &cfg.Bus)
	setSimulationConfigFromFlags(ctx, &cfg.Simulation)
	setPprofConfigFromFlags(ctx, &cfg.Pprof)

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setGlobalConfigFromFlags(ctx *cli.Context, cfg *ctoml.GlobalConfig) {
	if lvl := ctx.String(LogFlag.Name); lvl != "" {
		cfg.LogLvl = lvl
	}

	if caller := ctx.String(LogCallerFlag.Name); caller != "" {
		cfg.LogCaller = caller
	}

	if metricsAddress := ctx.String(MetricsAddressFlag.Name); metricsAddress != "" {
		cfg.MetricsAddress = metricsAddress
	}

	if timeout := ctx.String(MetricsShutdownTimeoutFlag.Name); timeout != "" {
		cfg.MetricsShutdownTimeout = timeout
	}
}

// logOptions returns the logger options of the global configuration.
func logOptions(cfg ctoml.GlobalConfig) ([]log.Option, error) {
	level, err := log.ParseLevel(cfg.LogLvl)
	if err != nil {
		return nil, fmt.Errorf("cannot parse log level: %w", err)
	}

	callerFields, err := log.ParseCallerFields(cfg.LogCaller)
	if err != nil {
		return nil, fmt.Errorf("cannot parse log caller: %w", err)
	}

	return []log.Option{log.SetLevel(level), log.SetCaller(callerFields)}, nil
}

// metricsShutdownTimeout returns the metrics server shutdown timeout,
// or 0 to use the server default.
func metricsShutdownTimeout(cfg ctoml.GlobalConfig) (time.Duration, error) {
	if cfg.MetricsShutdownTimeout == "" {
		return 0, nil
	}

	timeout, err := time.ParseDuration(cfg.MetricsShutdownTimeout)
	if err != nil {
		return 0, fmt.Errorf("cannot parse metrics shutdown timeout: %w", err)
	}
	if timeout < 0 {
		return 0, fmt.Errorf("%w: metrics shutdown timeout %s", errNegativeTimeout, timeout)
	}
	return timeout, nil
}

func setBusConfigFromFlags(ctx *cli.Context, cfg *ctoml.BusConfig) {
	if ctx.IsSet(CapacityFlag.Name) {
		cfg.Capacity = ctx.Int(CapacityFlag.Name)
	}
}

func setSimulationConfigFromFlags(ctx *cli.Context, cfg *ctoml.SimulationConfig) {
	if ctx.IsSet(SeedFlag.Name) {
		cfg.Seed = ctx.Int64(SeedFlag.Name)
	}

	if ctx.IsSet(BlocksFlag.Name) {
		cfg.Blocks = ctx.Uint64(BlocksFlag.Name)
	}

	if ctx.IsSet(SubscribersFlag.Name) {
		cfg.Subscribers = ctx.Int(SubscribersFlag.Name)
	}

	if ctx.IsSet(ReorgDepthFlag.Name) {
		cfg.ReorgDepth = ctx.Uint64(ReorgDepthFlag.Name)
	}
}

func setPprofConfigFromFlags(ctx *cli.Context, cfg *ctoml.PprofConfig) {
	if address := ctx.String(PprofAddressFlag.Name); address != "" {
		cfg.ListeningAddress = address
	}

	if ctx.IsSet(PprofBlockRateFlag.Name) {
		cfg.BlockProfileRate = ctx.Int(PprofBlockRateFlag.Name)
	}

	if ctx.IsSet(PprofMutexRateFlag.Name) {
		cfg.MutexProfileRate = ctx.Int(PprofMutexRateFlag.Name)
	}
}

func validateConfig(cfg *ctoml.Config) error {
	if _, err := logOptions(cfg.Global); err != nil {
		return err
	}

	if _, err := metricsShutdownTimeout(cfg.Global); err != nil {
		return err
	}

	if cfg.Bus.Capacity <= 0 {
		return fmt.Errorf("%w: %d", errInvalidCapacity, cfg.Bus.Capacity)
	}

	if cfg.Simulation.Subscribers < 0 {
		return fmt.Errorf("%w: %d", errInvalidSubscribers, cfg.Simulation.Subscribers)
	}

	if cfg.Simulation.ReorgDepth > cfg.Simulation.Blocks {
		return fmt.Errorf("%w: depth %d for %d blocks",
			errReorgTooDeep, cfg.Simulation.ReorgDepth, cfg.Simulation.Blocks)
	}
	return nil
}
