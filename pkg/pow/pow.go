package pow

import (
	"context"
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tcfw/minichain/internal/utils/logging"
	"github.com/tcfw/minichain/pkg/block"
)

const (
	DefaultCheckInterval = 1024

	// MaxDifficulty is the most leading zeros a hex digest can have
	MaxDifficulty = block.HashLen
)

var (
	ErrMiningCancelled       = errors.New("mining cancelled")
	ErrDifficultyUnreachable = errors.New("difficulty exceeds digest length")
	ErrNonceSpaceExhausted   = errors.New("no nonce satisfies difficulty")
	ErrProofOfWorkInvalid    = errors.New("proof of work invalid")
)

type Miner struct {
	checkInterval uint64
	logger        *logrus.Entry
}

func NewMiner(opts ...Option) (*Miner, error) {
	m := &Miner{
		checkInterval: DefaultCheckInterval,
		logger:        logging.Entry(),
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// CheckInterval is how many nonces are tried between context checks
func (m *Miner) CheckInterval() uint64 {
	return m.checkInterval
}

// MeetsDifficulty reports whether the hex hash starts with at least
// difficulty '0' characters
func MeetsDifficulty(hash string, difficulty uint) bool {
	if difficulty > MaxDifficulty || uint(len(hash)) < difficulty {
		return false
	}

	for i := uint(0); i < difficulty; i++ {
		if hash[i] != '0' {
			return false
		}
	}

	return true
}

// Verify recomputes the hash of b and checks it matches the declared hash
// and meets difficulty
func Verify(b *block.Block, difficulty uint) error {
	h := block.ComputeHash(b)
	if h != b.Hash {
		return errors.Wrapf(ErrProofOfWorkInvalid, "declared hash %q does not match computed %s", b.Hash, h)
	}

	if !MeetsDifficulty(h, difficulty) {
		return errors.Wrapf(ErrProofOfWorkInvalid, "hash %s does not meet difficulty %d", h, difficulty)
	}

	return nil
}

// Mine searches nonces from 0 upward for the first hash meeting difficulty.
// On success the nonce and hash are set on b. On any error b is left as it
// was. ctx is checked every check interval.
func (m *Miner) Mine(ctx context.Context, b *block.Block, difficulty uint) (uint32, string, error) {
	if difficulty > MaxDifficulty {
		return 0, "", errors.Wrapf(ErrDifficultyUnreachable, "difficulty %d", difficulty)
	}

	l := m.logger.WithFields(logrus.Fields{
		"difficulty": difficulty,
		"txs":        len(b.Transactions),
		"timestamp":  b.Timestamp,
	})
	l.Debug("mining block")

	txs := block.TxPreimage(b)
	buf := make([]byte, 0, len(txs)+40+len(b.PrevHash))

	for n := uint64(0); n <= math.MaxUint32; n++ {
		if n%m.checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				l.WithField("attempts", n).Debug("mining cancelled")
				return 0, "", errors.Wrapf(ErrMiningCancelled, "after %d attempts: %s", n, err)
			}
		}

		nonce := uint32(n)
		buf = block.AppendHeader(append(buf[:0], txs...), nonce, b.Timestamp, b.PrevHash)
		hash := block.Digest(buf)

		if MeetsDifficulty(hash, difficulty) {
			b.Nonce = nonce
			b.Hash = hash

			l.WithFields(logrus.Fields{"nonce": nonce, "hash": hash}).Debug("mined block")
			return nonce, hash, nil
		}
	}

	return 0, "", errors.Wrapf(ErrNonceSpaceExhausted, "difficulty %d at timestamp %d", difficulty, b.Timestamp)
}

var defaultMiner = &Miner{
	checkInterval: DefaultCheckInterval,
	logger:        logging.Entry(),
}

// Mine runs the search with the default miner
func Mine(ctx context.Context, b *block.Block, difficulty uint) (uint32, string, error) {
	return defaultMiner.Mine(ctx, b, difficulty)
}
