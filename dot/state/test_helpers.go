// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"fmt"
	"math/big"
	"math/rand"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/trie"
	"github.com/quentinv72/reth/dot/types"
)

// ExecutedBlockFactory synthesises executed blocks and hash-linked chain
// segments for tests. All randomness comes from the seed, so two
// factories with the same seed produce the same blocks.
type ExecutedBlockFactory struct {
	mutex sync.Mutex
	rng   *rand.Rand
}

// NewExecutedBlockFactory creates a factory seeded with seed.
func NewExecutedBlockFactory(seed int64) *ExecutedBlockFactory {
	return &ExecutedBlockFactory{
		rng: rand.New(rand.NewSource(seed)), //nolint:gosec
	}
}

// ExecutedBlock builds an executed block with the given number, receipts and
// parent hash. The block carries one placeholder transaction with one random
// sender and a random ommers hash to avoid collisions between blocks.
// It panics if the block cannot be assembled.
func (f *ExecutedBlockFactory) ExecutedBlock(number uint64, receipts []ethtypes.Receipts,
	parentHash common.Hash) *types.ExecutedBlock {
	txs := []*ethtypes.Transaction{ethtypes.NewTx(&ethtypes.LegacyTx{})}

	header := &ethtypes.Header{
		ParentHash:  parentHash,
		UncleHash:   f.randomHash(),
		Root:        ethtypes.EmptyRootHash,
		TxHash:      ethtypes.DeriveSha(ethtypes.Transactions(txs), trie.NewStackTrie(nil)),
		ReceiptHash: ethtypes.EmptyRootHash,
		Difficulty:  big.NewInt(0),
		Number:      new(big.Int).SetUint64(number),
	}
	sealed := types.SealBlock(ethtypes.NewBlockWithHeader(header).WithBody(txs, nil))

	withSenders, err := types.NewSealedBlockWithSenders(sealed, []common.Address{f.randomAddress()})
	if err != nil {
		panic(fmt.Sprintf("cannot build executed block #%d: %s", number, err))
	}

	outcome := types.NewExecutionOutcome(
		types.NewBundleState(),
		receipts,
		number,
		[]types.Requests{{}},
	)

	return types.NewExecutedBlock(
		withSenders.Block,
		withSenders.Senders,
		outcome,
		&types.HashedPostState{},
		&types.TrieUpdates{},
	)
}

// ExecutedBlockWithNumber builds an executed block with a single
// empty receipts entry.
func (f *ExecutedBlockFactory) ExecutedBlockWithNumber(number uint64,
	parentHash common.Hash) *types.ExecutedBlock {
	return f.ExecutedBlock(number, []ethtypes.Receipts{{}}, parentHash)
}

// ExecutedBlockWithReceipts builds an executed block with the given receipts
// and a random block number.
func (f *ExecutedBlockFactory) ExecutedBlockWithReceipts(receipts []ethtypes.Receipts,
	parentHash common.Hash) *types.ExecutedBlock {
	f.mutex.Lock()
	number := f.rng.Uint64()
	f.mutex.Unlock()

	return f.ExecutedBlock(number, receipts, parentHash)
}

// ExecutedBlocks returns an iterator over executed blocks numbered from
// `from` (inclusive) to `to` (exclusive). Each block is the child of the
// previous one and the first block has the zero hash as parent.
func (f *ExecutedBlockFactory) ExecutedBlocks(from, to uint64) *ExecutedBlockIterator {
	return &ExecutedBlockIterator{
		factory: f,
		next:    from,
		end:     to,
	}
}

// Chain builds a chain segment of blocks numbered from `from` (inclusive)
// to `to` (exclusive). It panics if the range is empty.
func (f *ExecutedBlockFactory) Chain(from, to uint64) *types.Chain {
	var blocks []*types.ExecutedBlock
	it := f.ExecutedBlocks(from, to)
	for block, ok := it.Next(); ok; block, ok = it.Next() {
		blocks = append(blocks, block)
	}

	chain, err := types.NewChain(blocks...)
	if err != nil {
		panic(fmt.Sprintf("cannot build chain [%d, %d): %s", from, to, err))
	}
	return chain
}

func (f *ExecutedBlockFactory) randomHash() (hash common.Hash) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	_, _ = f.rng.Read(hash[:])
	return hash
}

func (f *ExecutedBlockFactory) randomAddress() (address common.Address) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	_, _ = f.rng.Read(address[:])
	return address
}

// ExecutedBlockIterator lazily yields hash-linked executed blocks.
// It cannot be restarted.
type ExecutedBlockIterator struct {
	factory    *ExecutedBlockFactory
	next       uint64
	end        uint64
	parentHash common.Hash
}

// Next returns the next block, or false once the range is exhausted.
func (it *ExecutedBlockIterator) Next() (*types.ExecutedBlock, bool) {
	if it.next >= it.end {
		return nil, false
	}

	block := it.factory.ExecutedBlockWithNumber(it.next, it.parentHash)
	it.parentHash = block.Hash()
	it.next++
	return block, true
}
