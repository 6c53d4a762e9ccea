package block

import (
	"github.com/pkg/errors"
	"github.com/tcfw/minichain/pkg/tx"
)

var (
	ErrMerkleRootMismatch = errors.New("merkle root does not match transactions")
)

// TxID is the merkle leaf of a single tx
func TxID(t *tx.Tx) string {
	return Digest(t.Preimage())
}

// MerkleRoot reduces the tx leaves pairwise until one digest remains.
// A layer with an odd count promotes its last digest unchanged. No
// transactions gives EmptyDigest.
func MerkleRoot(txs []tx.Tx) string {
	if len(txs) == 0 {
		return EmptyDigest
	}

	layer := make([]string, len(txs))
	for i := range txs {
		layer[i] = TxID(&txs[i])
	}

	for len(layer) > 1 {
		next := make([]string, 0, (len(layer)+1)/2)
		for i := 0; i+1 < len(layer); i += 2 {
			next = append(next, Digest([]byte(layer[i]+layer[i+1])))
		}

		if len(layer)%2 == 1 {
			next = append(next, layer[len(layer)-1])
		}

		layer = next
	}

	return layer[0]
}

// VerifyMerkleRoot checks the commitment on b if one was attached
func VerifyMerkleRoot(b *Block) error {
	if b.MerkleRoot == "" {
		return nil
	}

	if root := MerkleRoot(b.Transactions); root != b.MerkleRoot {
		return errors.Wrapf(ErrMerkleRootMismatch, "expected %s got %s", root, b.MerkleRoot)
	}

	return nil
}
