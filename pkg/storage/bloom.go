package storage

import (
	"github.com/bits-and-blooms/bloom/v3"
	"github.com/pkg/errors"
	"github.com/tcfw/minichain/pkg/block"
	"github.com/tcfw/minichain/pkg/tx"
)

const (
	falsePositive = 0.01
)

// MakeBloom encodes a filter over the tx ids of a block
func MakeBloom(txs []tx.Tx) ([]byte, error) {
	b := bloom.NewWithEstimates(block.MaxTransactions, falsePositive)

	for i := range txs {
		b.AddString(block.TxID(&txs[i]))
	}

	return b.GobEncode()
}

func BloomContains(b []byte, t *tx.Tx) (bool, error) {
	bloom := bloom.NewWithEstimates(block.MaxTransactions, falsePositive)

	if err := bloom.GobDecode(b); err != nil {
		return false, err
	}

	return bloom.TestString(block.TxID(t)), nil
}

// VerifyBloom checks that a block's bloom filter, if any, decodes and
// admits every transaction in the block
func VerifyBloom(b *block.Block) error {
	if len(b.Bloom) == 0 {
		return nil
	}

	for i := range b.Transactions {
		ok, err := BloomContains(b.Bloom, &b.Transactions[i])
		if err != nil {
			return errors.Wrapf(ErrBloomMismatch, "decoding: %s", err)
		}
		if !ok {
			return errors.Wrapf(ErrBloomMismatch, "tx %d missing", i)
		}
	}

	return nil
}
