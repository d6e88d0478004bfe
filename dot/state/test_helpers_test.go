// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/google/go-cmp/cmp"
	"github.com/quentinv72/reth/dot/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ExecutedBlockFactory_ExecutedBlock(t *testing.T) {
	t.Parallel()

	factory := NewExecutedBlockFactory(1)
	parentHash := common.HexToHash("0x0102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f20")
	receipts := []ethtypes.Receipts{{
		{
			Type:              ethtypes.LegacyTxType,
			Status:            ethtypes.ReceiptStatusSuccessful,
			CumulativeGasUsed: 21000,
			GasUsed:           21000,
			TxHash:            common.Hash{0xaa},
		},
	}}

	block := factory.ExecutedBlock(7, receipts, parentHash)

	assert.Equal(t, uint64(7), block.Block.Header().Number.Uint64())
	assert.Equal(t, parentHash, block.Block.ParentHash())
	assert.Equal(t, uint64(7), block.ExecutionOutcome.FirstBlock)
	assert.Empty(t, cmp.Diff(receipts, block.ExecutionOutcome.Receipts))
	assert.Len(t, block.Block.Transactions(), 1)
	assert.Len(t, block.Senders, 1)
	assert.Equal(t, []types.Requests{{}}, block.ExecutionOutcome.Requests)
	assert.True(t, block.ExecutionOutcome.Bundle.IsEmpty())
	assert.NotEqual(t, common.Hash{}, block.Block.Header().UncleHash)
	assert.Equal(t, block.Block.Block().Hash(), block.Hash())
}

func Test_ExecutedBlockFactory_ExecutedBlockWithNumber(t *testing.T) {
	t.Parallel()

	factory := NewExecutedBlockFactory(2)

	block := factory.ExecutedBlockWithNumber(3, common.Hash{0x01})

	assert.Equal(t, uint64(3), block.Number())
	assert.Equal(t, common.Hash{0x01}, block.ParentHash())
	assert.Equal(t, []ethtypes.Receipts{{}}, block.ExecutionOutcome.Receipts)
}

func Test_ExecutedBlockFactory_ExecutedBlockWithReceipts(t *testing.T) {
	t.Parallel()

	factory := NewExecutedBlockFactory(3)
	receipts := []ethtypes.Receipts{{{Status: ethtypes.ReceiptStatusFailed}}}

	block := factory.ExecutedBlockWithReceipts(receipts, common.Hash{0x02})

	assert.Equal(t, common.Hash{0x02}, block.ParentHash())
	assert.Equal(t, block.Number(), block.ExecutionOutcome.FirstBlock)
	assert.Empty(t, cmp.Diff(receipts, block.ExecutionOutcome.Receipts))
}

func Test_ExecutedBlockFactory_ExecutedBlocks(t *testing.T) {
	t.Parallel()

	factory := NewExecutedBlockFactory(4)
	it := factory.ExecutedBlocks(0, 5)

	var blocks []*types.ExecutedBlock
	for block, ok := it.Next(); ok; block, ok = it.Next() {
		blocks = append(blocks, block)
	}

	require.Len(t, blocks, 5)
	assert.Equal(t, common.Hash{}, blocks[0].ParentHash())
	for i := 0; i < 4; i++ {
		assert.Equal(t, uint64(i), blocks[i].Number())
		assert.Equal(t, blocks[i].Block.Hash(), blocks[i+1].ParentHash())
	}

	// the iterator is exhausted and cannot be restarted
	block, ok := it.Next()
	assert.False(t, ok)
	assert.Nil(t, block)
}

func Test_ExecutedBlockFactory_ExecutedBlocks_emptyRange(t *testing.T) {
	t.Parallel()

	it := NewExecutedBlockFactory(5).ExecutedBlocks(4, 4)

	_, ok := it.Next()
	assert.False(t, ok)
}

func Test_ExecutedBlockFactory_deterministic(t *testing.T) {
	t.Parallel()

	first := NewExecutedBlockFactory(42).Chain(0, 8)
	second := NewExecutedBlockFactory(42).Chain(0, 8)
	other := NewExecutedBlockFactory(43).Chain(0, 8)

	assert.Equal(t, first.Hashes(), second.Hashes())
	assert.Equal(t, first.Tip().Senders, second.Tip().Senders)
	assert.NotEqual(t, first.Hashes(), other.Hashes())
}

func Test_ExecutedBlockFactory_Chain(t *testing.T) {
	t.Parallel()

	factory := NewExecutedBlockFactory(6)

	chain := factory.Chain(10, 13)
	first, last := chain.Range()
	assert.Equal(t, uint64(10), first)
	assert.Equal(t, uint64(12), last)

	assert.PanicsWithValue(t,
		"cannot build chain [3, 3): chain segment has no blocks",
		func() { factory.Chain(3, 3) })
}
