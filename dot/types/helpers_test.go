// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

func newTestExecutedBlock(number uint64, parentHash common.Hash, receipts ethtypes.Receipts) *ExecutedBlock {
	header := &ethtypes.Header{
		ParentHash: parentHash,
		Number:     new(big.Int).SetUint64(number),
		Difficulty: big.NewInt(0),
	}
	block := SealBlock(ethtypes.NewBlockWithHeader(header))
	outcome := NewExecutionOutcome(NewBundleState(), []ethtypes.Receipts{receipts}, number, nil)
	return NewExecutedBlock(block, nil, outcome, &HashedPostState{}, &TrieUpdates{})
}

func newTestExecutedBlocks(from, to uint64) []*ExecutedBlock {
	var blocks []*ExecutedBlock
	parentHash := common.Hash{}
	for number := from; number < to; number++ {
		block := newTestExecutedBlock(number, parentHash, ethtypes.Receipts{})
		blocks = append(blocks, block)
		parentHash = block.Hash()
	}
	return blocks
}
