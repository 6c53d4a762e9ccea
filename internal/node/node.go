package node

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tcfw/minichain/internal/utils/logging"
	"github.com/tcfw/minichain/pkg/block"
	"github.com/tcfw/minichain/pkg/pow"
	"github.com/tcfw/minichain/pkg/storage"
	"github.com/tcfw/minichain/pkg/tx"
)

// DefaultTx is the transaction every simulated participant records
var DefaultTx = tx.New(10, "Alice", "Bob")

// Node is a simulated participant. It owns its ledger exclusively and is
// its only writer.
type Node struct {
	id     string
	ledger *storage.Ledger
	miner  *pow.Miner
	pool   *TxMemPool
	clock  func() time.Time

	logger *logrus.Entry
}

func NewNode(id string, opts ...NodeOption) (*Node, error) {
	n := &Node{
		id:     id,
		pool:   NewTxMemPool(),
		clock:  time.Now,
		logger: logging.ForNode(id),
	}

	for _, opt := range opts {
		if err := opt(n); err != nil {
			return nil, err
		}
	}

	var err error

	if n.ledger == nil {
		n.ledger, err = storage.NewLedger(storage.WithID(id), storage.WithLogger(n.logger))
		if err != nil {
			return nil, errors.Wrap(err, "initing ledger")
		}
	}

	if n.miner == nil {
		n.miner, err = pow.NewMiner(pow.WithLogger(n.logger))
		if err != nil {
			return nil, errors.Wrap(err, "initing miner")
		}
	}

	return n, nil
}

func (n *Node) ID() string {
	return n.id
}

func (n *Node) Ledger() *storage.Ledger {
	return n.ledger
}

func (n *Node) Pending() int {
	return n.pool.Len()
}

// Submit queues a transaction for the next block
func (n *Node) Submit(t tx.Tx) error {
	if err := t.Validate(); err != nil {
		return errors.Wrap(err, "submitting tx")
	}

	n.pool.AddTx(t)

	return nil
}

// MinePending mines a block holding up to block.MaxTransactions of the
// oldest queued transactions. If nothing is queued no block is made and
// nil is returned. Transactions from a block that fails are requeued.
func (n *Node) MinePending(ctx context.Context) (*block.Block, error) {
	txs := n.pool.Take(block.MaxTransactions)
	if len(txs) == 0 {
		n.logger.Debug("no pending txs")
		return nil, nil
	}

	b, err := n.MineBlock(ctx, txs...)
	if err != nil {
		n.pool.Requeue(txs)
		return nil, err
	}

	return b, nil
}

// MineBlock builds a candidate on the ledger tail, mines it at the ledger
// difficulty and appends it. Cancelling ctx abandons the candidate and
// leaves the ledger untouched.
func (n *Node) MineBlock(ctx context.Context, txs ...tx.Tx) (*block.Block, error) {
	b := block.New(n.ledger.Tail(), uint64(n.clock().Unix()), txs...)
	b.MerkleRoot = block.MerkleRoot(b.Transactions)

	bloom, err := storage.MakeBloom(b.Transactions)
	if err != nil {
		return nil, errors.Wrap(err, "creating block bloom filter")
	}
	b.Bloom = bloom

	start := time.Now()

	if _, _, err := n.miner.Mine(ctx, b, n.ledger.Difficulty()); err != nil {
		return nil, errors.Wrap(err, "mining block")
	}

	if err := n.ledger.Append(ctx, b); err != nil {
		return nil, errors.Wrap(err, "appending block")
	}

	n.logger.WithFields(logrus.Fields{
		"index": b.Index,
		"nonce": b.Nonce,
		"took":  time.Since(start),
	}).Info("new block added")

	return b, nil
}
