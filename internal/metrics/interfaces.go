// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import "context"

// Runner runs a server until its context is canceled.
type Runner interface {
	Run(ctx context.Context, ready chan<- struct{}, done chan<- error)
}
