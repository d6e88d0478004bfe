// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"fmt"
	"os"

	"github.com/quentinv72/reth/internal/log"
	"github.com/urfave/cli"
)

const usage = "Canonical state notification simulator"

var logger = log.NewFromGlobal(log.AddContext("pkg", "cmd"))

// newApp creates the canonsim cli application.
func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "canonsim"
	app.Usage = usage
	app.Action = simulateAction
	app.Flags = append(app.Flags, GlobalFlags...)
	app.Flags = append(app.Flags, SimulationFlags...)
	app.Flags = append(app.Flags, PprofFlags...)
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// simulateAction is the root action of the canonsim command.
func simulateAction(ctx *cli.Context) error {
	if arguments := ctx.Args(); len(arguments) > 0 {
		return fmt.Errorf("failed to read command argument: %q", arguments[0])
	}

	cfg, err := createConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to create configuration: %w", err)
	}

	options, err := logOptions(cfg.Global)
	if err != nil {
		return fmt.Errorf("failed to configure logger: %w", err)
	}
	log.Patch(options...)

	return newSimulation(cfg).run()
}
