package block

import (
	"strings"

	"github.com/tcfw/minichain/pkg/tx"
)

const (
	// MaxTransactions is the most transactions a single block may carry
	MaxTransactions = 10

	// HashLen is the length of a hex encoded digest
	HashLen = 64
)

// GenesisSentinel is the PrevHash of the first block in every ledger
var GenesisSentinel = strings.Repeat("0", HashLen)

// Block is mutable until it has been mined and appended to a ledger.
// MerkleRoot and Bloom are auxiliary and do not take part in Hash.
type Block struct {
	Index        uint64  `msgpack:"i" yaml:"index"`
	Nonce        uint32  `msgpack:"n" yaml:"nonce"`
	Transactions []tx.Tx `msgpack:"x" yaml:"transactions"`
	Timestamp    uint64  `msgpack:"t" yaml:"timestamp"`
	PrevHash     string  `msgpack:"p" yaml:"prevHash"`
	Hash         string  `msgpack:"h" yaml:"hash"`

	MerkleRoot string `msgpack:"m,omitempty" yaml:"merkleRoot,omitempty"`
	Bloom      []byte `msgpack:"b,omitempty" yaml:"-"`
}

// New builds an unmined candidate block on top of prevHash
func New(prevHash string, timestamp uint64, txs ...tx.Tx) *Block {
	b := &Block{
		Timestamp:    timestamp,
		PrevHash:     prevHash,
		Transactions: make([]tx.Tx, len(txs)),
	}
	copy(b.Transactions, txs)

	return b
}

func (b *Block) IsGenesis() bool {
	return b.PrevHash == GenesisSentinel
}
