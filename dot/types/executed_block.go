// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

// ErrSendersMismatch is returned when the number of recovered senders
// does not match the number of transactions in a block.
var ErrSendersMismatch = errors.New("senders do not match transactions")

// SealedBlock is a block together with its canonical hash.
type SealedBlock struct {
	block *ethtypes.Block
	hash  common.Hash
}

// SealBlock computes the block hash once and returns the sealed block.
func SealBlock(block *ethtypes.Block) *SealedBlock {
	return &SealedBlock{
		block: block,
		hash:  block.Hash(),
	}
}

// Hash returns the canonical block hash
func (b *SealedBlock) Hash() common.Hash { return b.hash }

// Header returns a copy of the block header
func (b *SealedBlock) Header() *ethtypes.Header { return b.block.Header() }

// Number returns the block number
func (b *SealedBlock) Number() uint64 { return b.block.NumberU64() }

// ParentHash returns the hash of the parent block
func (b *SealedBlock) ParentHash() common.Hash { return b.block.ParentHash() }

// Transactions returns the block transactions
func (b *SealedBlock) Transactions() ethtypes.Transactions { return b.block.Transactions() }

// Block returns the underlying block
func (b *SealedBlock) Block() *ethtypes.Block { return b.block }

// String returns the formatted sealed block as a string
func (b *SealedBlock) String() string {
	return fmt.Sprintf("#%d (%s)", b.Number(), b.hash.TerminalString())
}

// SealedBlockWithSenders is a sealed block paired with the sender
// of each of its transactions.
type SealedBlockWithSenders struct {
	Block   *SealedBlock
	Senders []common.Address
}

// NewSealedBlockWithSenders pairs the block with its senders.
// It returns ErrSendersMismatch if there is not exactly one
// sender per transaction.
func NewSealedBlockWithSenders(block *SealedBlock, senders []common.Address) (
	*SealedBlockWithSenders, error) {
	if len(senders) != len(block.Transactions()) {
		return nil, fmt.Errorf("%w: %d senders for %d transactions",
			ErrSendersMismatch, len(senders), len(block.Transactions()))
	}

	return &SealedBlockWithSenders{
		Block:   block,
		Senders: senders,
	}, nil
}

// ExecutedBlock is a block with all the artifacts produced by executing it.
// Every field may be shared between holders and must not be mutated.
type ExecutedBlock struct {
	Block            *SealedBlock
	Senders          []common.Address
	ExecutionOutcome *ExecutionOutcome
	HashedState      *HashedPostState
	TrieUpdates      *TrieUpdates
}

// NewExecutedBlock creates a new executed block
func NewExecutedBlock(block *SealedBlock, senders []common.Address, outcome *ExecutionOutcome,
	hashedState *HashedPostState, trieUpdates *TrieUpdates) *ExecutedBlock {
	return &ExecutedBlock{
		Block:            block,
		Senders:          senders,
		ExecutionOutcome: outcome,
		HashedState:      hashedState,
		TrieUpdates:      trieUpdates,
	}
}

// Hash returns the hash of the executed block
func (eb *ExecutedBlock) Hash() common.Hash { return eb.Block.Hash() }

// Number returns the number of the executed block
func (eb *ExecutedBlock) Number() uint64 { return eb.Block.Number() }

// ParentHash returns the parent hash of the executed block
func (eb *ExecutedBlock) ParentHash() common.Hash { return eb.Block.ParentHash() }

// String returns the formatted executed block as a string
func (eb *ExecutedBlock) String() string { return eb.Block.String() }
