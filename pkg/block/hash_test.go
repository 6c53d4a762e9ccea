package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tcfw/minichain/pkg/tx"
)

func TestDigest(t *testing.T) {
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", EmptyDigest)
	assert.Equal(t, "5ea52f6ee568b0216dcf7ca87dbbcbb6f7394ebbcc25d4d3c70e718ee93edef7", Digest([]byte("10AliceBob")))
	assert.Len(t, Digest([]byte("x")), HashLen)
}

func TestPreimage(t *testing.T) {
	b := New(GenesisSentinel, 17, tx.New(10, "Alice", "Bob"))

	assert.Equal(t, "10AliceBob017"+GenesisSentinel, string(Preimage(b)))

	b.Nonce = 3
	b.Timestamp = 18
	assert.Equal(t, "10AliceBob318"+GenesisSentinel, string(Preimage(b)))

	multi := New("ab", 5, tx.New(1, "a", "b"), tx.New(22, "c", "d"))
	assert.Equal(t, "1ab22cd05ab", string(Preimage(multi)))
}

func TestComputeHash(t *testing.T) {
	b := New(GenesisSentinel, 17, tx.New(10, "Alice", "Bob"))
	assert.Equal(t, "fde758d5b58b5a738a8fe794a29e91ed1fd125555a45346ac1e1ff5555843513", ComputeHash(b))

	b.Nonce = 3
	b.Timestamp = 18
	assert.Equal(t, "6ebb0443f96a19c3f8bf72d1f7d0abc077ac1518e692fe7a098923b4f5a8c550", ComputeHash(b))
}

func TestComputeHashIgnoresAuxFields(t *testing.T) {
	b := New(GenesisSentinel, 17, tx.New(10, "Alice", "Bob"))
	h := ComputeHash(b)

	b.Index = 9
	b.MerkleRoot = MerkleRoot(b.Transactions)
	b.Bloom = []byte{1, 2, 3}
	b.Hash = "something"

	assert.Equal(t, h, ComputeHash(b))
}

func TestNewCopiesTransactions(t *testing.T) {
	txs := []tx.Tx{tx.New(10, "Alice", "Bob")}
	b := New(GenesisSentinel, 1, txs...)

	txs[0].Amount = 99

	assert.Equal(t, uint64(10), b.Transactions[0].Amount)
	assert.True(t, b.IsGenesis())
}
