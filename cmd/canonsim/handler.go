// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"fmt"

	"github.com/quentinv72/reth/dot/types"
	"github.com/quentinv72/reth/internal/log"
	"go.uber.org/atomic"
)

// countingHandler logs the notifications it receives and keeps totals.
type countingHandler struct {
	logger log.LeveledLogger

	commits       atomic.Uint64
	reorgs        atomic.Uint64
	committed     atomic.Uint64
	reverted      atomic.Uint64
	skipped       atomic.Uint64
	lastTipNumber atomic.Uint64
}

func newCountingHandler(logger log.LeveledLogger) *countingHandler {
	return &countingHandler{logger: logger}
}

func (h *countingHandler) HandleCommit(newChain *types.Chain) error {
	h.commits.Inc()
	h.committed.Add(uint64(newChain.Len()))
	h.lastTipNumber.Store(newChain.Tip().Number())
	h.logger.Debugf("commit of %s", newChain)
	return nil
}

func (h *countingHandler) HandleReorg(oldChain, newChain *types.Chain) error {
	h.reorgs.Inc()
	h.reverted.Add(uint64(oldChain.Len()))
	h.committed.Add(uint64(newChain.Len()))
	h.lastTipNumber.Store(newChain.Tip().Number())
	h.logger.Infof("reorg reverting %s and committing %s", oldChain, newChain)
	return nil
}

func (h *countingHandler) HandleLag(skipped uint64) {
	h.skipped.Add(skipped)
	h.logger.Warnf("skipped %d notifications", skipped)
}

func (h *countingHandler) String() string {
	return fmt.Sprintf("commits=%d reorgs=%d committed=%d reverted=%d skipped=%d tip=#%d",
		h.commits.Load(), h.reorgs.Load(), h.committed.Load(),
		h.reverted.Load(), h.skipped.Load(), h.lastTipNumber.Load())
}
