package storage

import (
	"context"
	"testing"

	"github.com/ipfs/go-cid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/tcfw/minichain/pkg/block"
	"github.com/tcfw/minichain/pkg/tx"
)

func TestMemStore(t *testing.T) {
	m := NewMemStore()

	obj := block.New(block.GenesisSentinel, 1700000000, tx.New(10, "Alice", "Bob"))
	obj.Hash = block.ComputeHash(obj)
	obj.MerkleRoot = block.MerkleRoot(obj.Transactions)

	id, err := m.PutBlock(context.Background(), obj)
	if err != nil {
		t.Fatal(err)
	}

	b, err := m.GetBlock(context.Background(), id)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, obj, b)
	assert.Equal(t, 1, m.Len())

	h, err := block.HashFromID(id)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, obj.Hash, h)
}

func TestMemStoreNotFound(t *testing.T) {
	m := NewMemStore()

	_, err := m.GetBlock(context.Background(), cid.Undef)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMemStoreUnhashedBlock(t *testing.T) {
	m := NewMemStore()

	_, err := m.PutBlock(context.Background(), &block.Block{})
	assert.Error(t, err)
}
