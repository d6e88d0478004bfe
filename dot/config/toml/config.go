// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package toml

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/naoina/toml"
)

const (
	defaultLogLevel    = "info"
	defaultCapacity    = 100
	defaultBlocks      = 64
	defaultSubscribers = 4
	defaultReorgDepth  = 3
)

// Config is a collection of configurations throughout the system
type Config struct {
	Global     GlobalConfig     `toml:"global,omitempty"`
	Bus        BusConfig        `toml:"bus,omitempty"`
	Simulation SimulationConfig `toml:"simulation,omitempty"`
	Pprof      PprofConfig      `toml:"pprof,omitempty"`
}

// GlobalConfig is to marshal/unmarshal toml global config vars
type GlobalConfig struct {
	LogLvl                 string `toml:"log,omitempty"`
	LogCaller              string `toml:"log-caller,omitempty"`
	MetricsAddress         string `toml:"metrics-address,omitempty"`
	MetricsShutdownTimeout string `toml:"metrics-shutdown-timeout,omitempty"`
}

// BusConfig is to marshal/unmarshal toml notification bus config vars
type BusConfig struct {
	Capacity int `toml:"capacity,omitempty"`
}

// SimulationConfig is to marshal/unmarshal toml simulation config vars
type SimulationConfig struct {
	Seed        int64  `toml:"seed,omitempty"`
	Blocks      uint64 `toml:"blocks,omitempty"`
	Subscribers int    `toml:"subscribers,omitempty"`
	ReorgDepth  uint64 `toml:"reorg-depth,omitempty"`
}

// PprofConfig contains the configuration for Pprof.
// The pprof server is disabled if the listening address is empty.
type PprofConfig struct {
	ListeningAddress string `toml:"listening-address,omitempty"`
	BlockProfileRate int    `toml:"block-profile-rate,omitempty"`
	MutexProfileRate int    `toml:"mutex-profile-rate,omitempty"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Global: GlobalConfig{
			LogLvl: defaultLogLevel,
		},
		Bus: BusConfig{
			Capacity: defaultCapacity,
		},
		Simulation: SimulationConfig{
			Blocks:      defaultBlocks,
			Subscribers: defaultSubscribers,
			ReorgDepth:  defaultReorgDepth,
		},
	}
}

// LoadFile decodes the toml file at path on top of cfg.
// Values absent from the file are left unchanged.
func LoadFile(path string, cfg *Config) (err error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("cannot open config file: %w", err)
	}
	defer func() {
		closeErr := file.Close()
		if err == nil && closeErr != nil {
			err = fmt.Errorf("cannot close config file: %w", closeErr)
		}
	}()

	if err = toml.NewDecoder(file).Decode(cfg); err != nil {
		return fmt.Errorf("cannot decode config file %s: %w", path, err)
	}
	return nil
}
