// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"github.com/urfave/cli"
)

// Global flags
var (
	// ConfigFlag TOML configuration file
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	// LogFlag cli service settings
	LogFlag = cli.StringFlag{
		Name:  "log",
		Usage: "Global log level. Supports levels crit (silent), eror, warn, info, dbug and trce (trace)",
	}
	// LogCallerFlag caller details in log lines
	LogCallerFlag = cli.StringFlag{
		Name:  "log-caller",
		Usage: "Caller details added to log lines, as a comma separated list of file, line and func",
	}
	// MetricsAddressFlag address for the prometheus metrics endpoint
	MetricsAddressFlag = cli.StringFlag{
		Name:  "metrics-address",
		Usage: "Listen address for the prometheus metrics endpoint. Disabled if empty",
	}
	// MetricsShutdownTimeoutFlag graceful shutdown timeout of the metrics server
	MetricsShutdownTimeoutFlag = cli.StringFlag{
		Name:  "metrics-shutdown-timeout",
		Usage: "Graceful shutdown timeout of the metrics server, eg. 5s",
	}
)

// Notification bus flags
var (
	// CapacityFlag per-subscription queue capacity
	CapacityFlag = cli.IntFlag{
		Name:  "capacity",
		Usage: "Number of notifications buffered per subscription before the oldest is dropped",
	}
)

// Simulation flags
var (
	// SeedFlag seed of the executed block factory
	SeedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "Seed for the executed block factory",
	}
	// BlocksFlag number of blocks committed
	BlocksFlag = cli.Uint64Flag{
		Name:  "blocks",
		Usage: "Number of blocks committed one by one",
	}
	// SubscribersFlag number of listeners attached to the bus
	SubscribersFlag = cli.IntFlag{
		Name:  "subscribers",
		Usage: "Number of listeners subscribed to canonical state notifications",
	}
	// ReorgDepthFlag depth of the final reorg
	ReorgDepthFlag = cli.Uint64Flag{
		Name:  "reorg-depth",
		Usage: "Number of canonical blocks reverted by the final reorg. Disabled if 0",
	}
)

// Pprof flags
var (
	// PprofAddressFlag enables the pprof server on the given address
	PprofAddressFlag = cli.StringFlag{
		Name:  "pprof-address",
		Usage: "Listen address for the pprof server. Disabled if empty",
	}
	// PprofBlockRateFlag block profile rate
	PprofBlockRateFlag = cli.IntFlag{
		Name:  "pprof-block-rate",
		Usage: "Pprof block profile rate. See runtime.SetBlockProfileRate",
	}
	// PprofMutexRateFlag mutex profile rate
	PprofMutexRateFlag = cli.IntFlag{
		Name:  "pprof-mutex-rate",
		Usage: "Pprof mutex profile rate. See runtime.SetMutexProfileFraction",
	}
)

var (
	// GlobalFlags are flags that are valid for use with the root command
	GlobalFlags = []cli.Flag{
		ConfigFlag,
		LogFlag,
		LogCallerFlag,
		MetricsAddressFlag,
		MetricsShutdownTimeoutFlag,
	}

	// SimulationFlags are flags that tune the bus and the simulated chain
	SimulationFlags = []cli.Flag{
		CapacityFlag,
		SeedFlag,
		BlocksFlag,
		SubscribersFlag,
		ReorgDepthFlag,
	}

	// PprofFlags are flags that configure the pprof server
	PprofFlags = []cli.Flag{
		PprofAddressFlag,
		PprofBlockRateFlag,
		PprofMutexRateFlag,
	}
)
