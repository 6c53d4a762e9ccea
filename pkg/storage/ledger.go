package storage

import (
	"context"

	"github.com/ipfs/go-cid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tcfw/minichain/internal/utils/logging"
	"github.com/tcfw/minichain/pkg/block"
	"github.com/tcfw/minichain/pkg/pow"
	"github.com/tcfw/minichain/pkg/tx"
)

const (
	// DefaultCapacity is the number of blocks a ledger holds unless
	// configured otherwise
	DefaultCapacity = 100
)

// Ledger is the append-only chain of blocks owned by one participant.
//
// A ledger has a single writer. Append must not be called concurrently and
// reads must not race an Append; the owning worker partitions access
// instead of the ledger taking locks.
type Ledger struct {
	id         string
	difficulty uint
	capacity   int

	store     Store
	validator Validator
	logger    *logrus.Entry

	blocks []cid.Cid
	tail   string
}

func NewLedger(opts ...Option) (*Ledger, error) {
	l := &Ledger{
		capacity:  DefaultCapacity,
		store:     NewMemStore(),
		validator: NewTxValidator(),
		logger:    logging.Entry(),
	}

	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}

	l.logger = l.logger.WithField("ledger", l.id)

	return l, nil
}

func (l *Ledger) ID() string {
	return l.id
}

func (l *Ledger) Len() int {
	return len(l.blocks)
}

func (l *Ledger) Capacity() int {
	return l.capacity
}

func (l *Ledger) Difficulty() uint {
	return l.difficulty
}

// Tail is the hash the next block must link to: the hash of the last
// block or the genesis sentinel when the ledger is empty
func (l *Ledger) Tail() string {
	if len(l.blocks) == 0 {
		return block.GenesisSentinel
	}

	return l.tail
}

// Append validates b and, if it passes, records a copy at the end of the
// ledger and sets b.Index to its position. Checks run in order: tx
// validity, linkage, proof of work, merkle root, bloom filter, capacity.
// A rejected block leaves the ledger unchanged.
func (l *Ledger) Append(ctx context.Context, b *block.Block) error {
	log := l.logger.WithFields(logrus.Fields{
		"index": len(l.blocks),
		"hash":  b.Hash,
	})

	if err := l.validate(ctx, b); err != nil {
		log.WithError(err).Warn("rejected block")
		return err
	}

	accepted := *b
	accepted.Index = uint64(len(l.blocks))

	id, err := l.store.PutBlock(ctx, &accepted)
	if err != nil {
		return errors.Wrap(err, "storing block")
	}

	l.blocks = append(l.blocks, id)
	l.tail = accepted.Hash
	b.Index = accepted.Index

	log.WithField("nonce", b.Nonce).Info("appended block")

	return nil
}

func (l *Ledger) validate(ctx context.Context, b *block.Block) error {
	if err := l.validateTxs(ctx, b); err != nil {
		return err
	}

	if tail := l.Tail(); b.PrevHash != tail {
		return errors.Wrapf(ErrLinkageMismatch, "expected %s got %q", tail, b.PrevHash)
	}

	if err := pow.Verify(b, l.difficulty); err != nil {
		return err
	}

	if err := block.VerifyMerkleRoot(b); err != nil {
		return err
	}

	if err := VerifyBloom(b); err != nil {
		return err
	}

	if len(l.blocks) >= l.capacity {
		return errors.Wrapf(ErrCapacityExceeded, "ledger holds %d blocks", l.capacity)
	}

	return nil
}

func (l *Ledger) validateTxs(ctx context.Context, b *block.Block) error {
	if n := len(b.Transactions); n > block.MaxTransactions {
		return errors.Wrapf(ErrInvalidTransaction, "block has %d transactions, max %d", n, block.MaxTransactions)
	}

	for i := range b.Transactions {
		if err := l.validator.IsTxValid(ctx, &b.Transactions[i]); err != nil {
			return errors.Wrapf(ErrInvalidTransaction, "tx %d: %s", i, err)
		}
	}

	return nil
}

// Block returns a copy of the block at position i
func (l *Ledger) Block(ctx context.Context, i int) (*block.Block, error) {
	if i < 0 || i >= len(l.blocks) {
		return nil, errors.Wrapf(ErrNotFound, "block %d of %d", i, len(l.blocks))
	}

	b, err := l.store.GetBlock(ctx, l.blocks[i])
	if err != nil {
		return nil, errors.Wrapf(err, "getting block %d", i)
	}

	return b, nil
}

// Blocks returns copies of every block in ledger order
func (l *Ledger) Blocks(ctx context.Context) ([]*block.Block, error) {
	blocks := make([]*block.Block, 0, len(l.blocks))

	for i := range l.blocks {
		b, err := l.Block(ctx, i)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}

	return blocks, nil
}

// Verify walks the whole ledger re-checking positions, linkage, tx
// validity, proof of work, merkle roots and bloom filters
func (l *Ledger) Verify(ctx context.Context) error {
	prev := block.GenesisSentinel

	for i := range l.blocks {
		b, err := l.Block(ctx, i)
		if err != nil {
			return err
		}

		if b.Index != uint64(i) {
			return errors.Errorf("block %d has index %d", i, b.Index)
		}

		if b.PrevHash != prev {
			return errors.Wrapf(ErrLinkageMismatch, "block %d", i)
		}

		if err := l.validateTxs(ctx, b); err != nil {
			return errors.Wrapf(err, "block %d", i)
		}

		if err := pow.Verify(b, l.difficulty); err != nil {
			return errors.Wrapf(err, "block %d", i)
		}

		if err := block.VerifyMerkleRoot(b); err != nil {
			return errors.Wrapf(err, "block %d", i)
		}

		if err := VerifyBloom(b); err != nil {
			return errors.Wrapf(err, "block %d", i)
		}

		prev = b.Hash
	}

	return nil
}

// FindTx returns the positions of blocks that contain t. Blocks whose
// bloom filter rules t out are not scanned.
func (l *Ledger) FindTx(ctx context.Context, t *tx.Tx) ([]int, error) {
	found := []int{}

	for i := range l.blocks {
		b, err := l.Block(ctx, i)
		if err != nil {
			return nil, err
		}

		if len(b.Bloom) > 0 {
			maybe, err := BloomContains(b.Bloom, t)
			if err != nil {
				return nil, errors.Wrapf(err, "decoding bloom of block %d", i)
			}
			if !maybe {
				continue
			}
		}

		for _, bt := range b.Transactions {
			if bt == *t {
				found = append(found, i)
				break
			}
		}
	}

	return found, nil
}
