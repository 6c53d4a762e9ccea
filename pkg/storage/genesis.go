package storage

import (
	"github.com/tcfw/minichain/pkg/block"
	"github.com/tcfw/minichain/pkg/tx"
)

// NewGenesis builds an unmined candidate for position 0 of an empty ledger
func NewGenesis(timestamp uint64, txs ...tx.Tx) *block.Block {
	return block.New(block.GenesisSentinel, timestamp, txs...)
}
