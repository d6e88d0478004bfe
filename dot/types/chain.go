// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"errors"
	"fmt"
	"math"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

var (
	// ErrEmptyChain is returned when building a chain segment without blocks.
	ErrEmptyChain = errors.New("chain segment has no blocks")
	// ErrNonSequentialBlock is returned when block numbers do not increase by one.
	ErrNonSequentialBlock = errors.New("block number is not sequential")
	// ErrParentHashMismatch is returned when a block does not link to its predecessor.
	ErrParentHashMismatch = errors.New("parent hash does not match previous block hash")
	// ErrOutcomeMismatch is returned when the execution outcome of a block
	// does not start at that block or holds no receipts for it.
	ErrOutcomeMismatch = errors.New("execution outcome does not cover its block")
)

// Chain is an ordered, immutable segment of executed blocks where each
// block is the child of the previous one.
type Chain struct {
	blocks []*ExecutedBlock
}

// NewChain creates a chain segment from the given blocks, in order.
func NewChain(blocks ...*ExecutedBlock) (*Chain, error) {
	if len(blocks) == 0 {
		return nil, ErrEmptyChain
	}

	for i, block := range blocks {
		if err := checkOutcome(block); err != nil {
			return nil, err
		}

		if i == 0 {
			continue
		}

		previous, current := blocks[i-1], block
		if previous.Number() == math.MaxUint64 || current.Number() != previous.Number()+1 {
			return nil, fmt.Errorf("%w: block #%d follows block #%d",
				ErrNonSequentialBlock, current.Number(), previous.Number())
		}
		if current.ParentHash() != previous.Hash() {
			return nil, fmt.Errorf("%w: block #%d has parent %s, expected %s",
				ErrParentHashMismatch, current.Number(), current.ParentHash(), previous.Hash())
		}
	}

	owned := make([]*ExecutedBlock, len(blocks))
	copy(owned, blocks)
	return &Chain{blocks: owned}, nil
}

func checkOutcome(block *ExecutedBlock) error {
	outcome := block.ExecutionOutcome
	switch {
	case outcome == nil:
		return fmt.Errorf("%w: block #%d has no execution outcome",
			ErrOutcomeMismatch, block.Number())
	case outcome.FirstBlock != block.Number():
		return fmt.Errorf("%w: block #%d has an outcome starting at block #%d",
			ErrOutcomeMismatch, block.Number(), outcome.FirstBlock)
	case outcome.Len() == 0:
		return fmt.Errorf("%w: block #%d has an outcome without receipts",
			ErrOutcomeMismatch, block.Number())
	}
	return nil
}

// Blocks returns the blocks of the segment in ascending order.
// The returned slice is a copy, the blocks themselves are shared.
func (c *Chain) Blocks() []*ExecutedBlock {
	blocks := make([]*ExecutedBlock, len(c.blocks))
	copy(blocks, c.blocks)
	return blocks
}

// Len returns the number of blocks in the segment
func (c *Chain) Len() int { return len(c.blocks) }

// First returns the lowest block of the segment
func (c *Chain) First() *ExecutedBlock { return c.blocks[0] }

// Tip returns the highest block of the segment
func (c *Chain) Tip() *ExecutedBlock { return c.blocks[len(c.blocks)-1] }

// Range returns the first and last block numbers, inclusive.
func (c *Chain) Range() (first, last uint64) {
	return c.First().Number(), c.Tip().Number()
}

// BlockByNumber returns the block with the given number
// and false if it is not part of the segment.
func (c *Chain) BlockByNumber(number uint64) (*ExecutedBlock, bool) {
	first, last := c.Range()
	if number < first || number > last {
		return nil, false
	}
	return c.blocks[number-first], true
}

// BlockByHash returns the block with the given hash
// and false if it is not part of the segment.
func (c *Chain) BlockByHash(hash common.Hash) (*ExecutedBlock, bool) {
	for _, block := range c.blocks {
		if block.Hash() == hash {
			return block, true
		}
	}
	return nil, false
}

// Hashes returns the block hashes of the segment in ascending order.
func (c *Chain) Hashes() []common.Hash {
	hashes := make([]common.Hash, len(c.blocks))
	for i, block := range c.blocks {
		hashes[i] = block.Hash()
	}
	return hashes
}

// Receipts returns the receipts of each block of the segment in ascending order.
// NewChain guarantees each block outcome starts with the receipts of that block.
func (c *Chain) Receipts() []ethtypes.Receipts {
	receipts := make([]ethtypes.Receipts, 0, len(c.blocks))
	for _, block := range c.blocks {
		receipts = append(receipts, block.ExecutionOutcome.Receipts[0])
	}
	return receipts
}

// String returns the formatted chain segment as a string
func (c *Chain) String() string {
	first, last := c.Range()
	return fmt.Sprintf("[#%d..#%d] tip=%s", first, last, c.Tip().Hash().TerminalString())
}
