// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"math"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

// AccountChange is the change applied to a single account by a state transition.
type AccountChange struct {
	Balance *big.Int
	Nonce   uint64
	Storage map[common.Hash]common.Hash
}

// BundleState is the state delta produced by executing a range of blocks.
type BundleState struct {
	Accounts map[common.Address]*AccountChange
}

// NewBundleState returns an empty state delta
func NewBundleState() *BundleState {
	return &BundleState{
		Accounts: make(map[common.Address]*AccountChange),
	}
}

// IsEmpty returns true if the delta touches no accounts.
func (bs *BundleState) IsEmpty() bool {
	return bs == nil || len(bs.Accounts) == 0
}

// Requests holds the opaque execution layer requests of one block.
type Requests [][]byte

// ExecutionOutcome is the result of executing one or more consecutive blocks.
// Receipts holds one entry per block, starting at FirstBlock.
type ExecutionOutcome struct {
	Bundle     *BundleState
	Receipts   []ethtypes.Receipts
	FirstBlock uint64
	Requests   []Requests
}

// NewExecutionOutcome creates a new execution outcome
func NewExecutionOutcome(bundle *BundleState, receipts []ethtypes.Receipts,
	firstBlock uint64, requests []Requests) *ExecutionOutcome {
	return &ExecutionOutcome{
		Bundle:     bundle,
		Receipts:   receipts,
		FirstBlock: firstBlock,
		Requests:   requests,
	}
}

// Len returns the number of blocks covered by the outcome
func (eo *ExecutionOutcome) Len() int { return len(eo.Receipts) }

// LastBlock returns the number of the last block covered by the outcome.
// It saturates at math.MaxUint64.
func (eo *ExecutionOutcome) LastBlock() uint64 {
	if len(eo.Receipts) == 0 {
		return eo.FirstBlock
	}
	span := uint64(len(eo.Receipts)) - 1
	if eo.FirstBlock > math.MaxUint64-span {
		return math.MaxUint64
	}
	return eo.FirstBlock + span
}

// ReceiptsByBlock returns the receipts of the given block number,
// and false if the block is not covered by the outcome.
func (eo *ExecutionOutcome) ReceiptsByBlock(number uint64) (ethtypes.Receipts, bool) {
	if number < eo.FirstBlock {
		return nil, false
	}
	index := number - eo.FirstBlock
	if index >= uint64(len(eo.Receipts)) {
		return nil, false
	}
	return eo.Receipts[index], true
}

// HashedAccount is an account keyed by the hash of its address.
type HashedAccount struct {
	Nonce       uint64
	Balance     *big.Int
	CodeHash    common.Hash
	StorageRoot common.Hash
}

// HashedPostState is the post-execution state with hashed keys,
// consumed by state root computation.
type HashedPostState struct {
	Accounts map[common.Hash]*HashedAccount
	Storages map[common.Hash]map[common.Hash]common.Hash
}

// TrieUpdates are the trie node changes produced by state root computation,
// keyed by the hex-encoded node path.
type TrieUpdates struct {
	AccountNodes map[string][]byte
	RemovedNodes map[string]struct{}
	StorageTries map[common.Hash]map[string][]byte
}
