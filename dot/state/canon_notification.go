// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"fmt"

	"github.com/quentinv72/reth/dot/types"
)

// CanonStateNotification is a change of the canonical chain.
// It is implemented only by *Commit and *Reorg; consumers type switch
// over both.
type CanonStateNotification interface {
	// Committed returns the segment appended to the canonical chain.
	Committed() *types.Chain
	// Reverted returns the segment removed from the canonical chain,
	// or nil if nothing was removed.
	Reverted() *types.Chain
	// Tip returns the new head of the canonical chain.
	Tip() *types.ExecutedBlock

	isCanonStateNotification()
}

// Commit extends the canonical chain with a new segment.
type Commit struct {
	New *types.Chain
}

// Committed returns the appended segment
func (c *Commit) Committed() *types.Chain { return c.New }

// Reverted returns nil since a commit removes nothing
func (*Commit) Reverted() *types.Chain { return nil }

// Tip returns the tip of the appended segment
func (c *Commit) Tip() *types.ExecutedBlock { return c.New.Tip() }

func (c *Commit) String() string { return fmt.Sprintf("commit %s", c.New) }

func (*Commit) isCanonStateNotification() {}

// Reorg replaces the Old suffix of the canonical chain with New.
type Reorg struct {
	Old *types.Chain
	New *types.Chain
}

// Committed returns the replacing segment
func (r *Reorg) Committed() *types.Chain { return r.New }

// Reverted returns the displaced segment
func (r *Reorg) Reverted() *types.Chain { return r.Old }

// Tip returns the tip of the replacing segment
func (r *Reorg) Tip() *types.ExecutedBlock { return r.New.Tip() }

func (r *Reorg) String() string { return fmt.Sprintf("reorg old=%s new=%s", r.Old, r.New) }

func (*Reorg) isCanonStateNotification() {}
