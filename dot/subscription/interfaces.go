// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package subscription

import (
	"github.com/quentinv72/reth/dot/types"
)

// Handler processes canonical state notifications received by a listener.
type Handler interface {
	HandleCommit(newChain *types.Chain) error
	HandleReorg(oldChain, newChain *types.Chain) error
	HandleLag(skipped uint64)
}
