package pow

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tcfw/minichain/pkg/block"
	"github.com/tcfw/minichain/pkg/tx"
)

func newCandidate() *block.Block {
	return block.New(block.GenesisSentinel, 1700000000, tx.New(10, "Alice", "Bob"))
}

func TestMeetsDifficulty(t *testing.T) {
	assert.True(t, MeetsDifficulty("abc", 0))
	assert.True(t, MeetsDifficulty("0abc", 1))
	assert.False(t, MeetsDifficulty("0abc", 2))
	assert.True(t, MeetsDifficulty("000f", 3))
	assert.False(t, MeetsDifficulty("00", 3))

	// a zero byte that isn't a zero nibble pair must not count
	assert.False(t, MeetsDifficulty("0a00", 4))

	all := strings.Repeat("0", block.HashLen)
	assert.True(t, MeetsDifficulty(all, MaxDifficulty))
	assert.False(t, MeetsDifficulty(all, MaxDifficulty+1))
}

func TestMineDifficulties(t *testing.T) {
	for d := uint(0); d <= 3; d++ {
		b := newCandidate()

		nonce, hash, err := Mine(context.Background(), b, d)
		require.NoError(t, err)

		assert.True(t, MeetsDifficulty(hash, d), "difficulty %d hash %s", d, hash)
		assert.Equal(t, nonce, b.Nonce)
		assert.Equal(t, hash, b.Hash)
		assert.Equal(t, block.ComputeHash(b), hash)
		assert.NoError(t, Verify(b, d))
	}
}

func TestMineZeroDifficultyIsFirstNonce(t *testing.T) {
	b := newCandidate()

	nonce, _, err := Mine(context.Background(), b, 0)
	require.NoError(t, err)

	assert.Equal(t, uint32(0), nonce)
}

func TestMineFindsFirstNonce(t *testing.T) {
	b := newCandidate()

	nonce, _, err := Mine(context.Background(), b, 2)
	require.NoError(t, err)

	for n := uint32(0); n < nonce; n++ {
		c := newCandidate()
		c.Nonce = n
		assert.False(t, MeetsDifficulty(block.ComputeHash(c), 2), "nonce %d", n)
	}
}

func TestMineDeterministic(t *testing.T) {
	a := newCandidate()
	b := newCandidate()

	n1, h1, err := Mine(context.Background(), a, 2)
	require.NoError(t, err)
	n2, h2, err := Mine(context.Background(), b, 2)
	require.NoError(t, err)

	assert.Equal(t, n1, n2)
	assert.Equal(t, h1, h2)
}

func TestMineCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := newCandidate()

	_, _, err := Mine(ctx, b, 0)
	assert.True(t, errors.Is(err, ErrMiningCancelled))
	assert.Empty(t, b.Hash)
	assert.Zero(t, b.Nonce)
}

func TestMineTimeout(t *testing.T) {
	m, err := NewMiner(WithCheckInterval(1))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	b := newCandidate()

	_, _, err = m.Mine(ctx, b, 30)
	assert.True(t, errors.Is(err, ErrMiningCancelled))
	assert.Empty(t, b.Hash)
}

func TestMineUnreachable(t *testing.T) {
	_, _, err := Mine(context.Background(), newCandidate(), MaxDifficulty+1)
	assert.True(t, errors.Is(err, ErrDifficultyUnreachable))
}

func TestVerify(t *testing.T) {
	b := newCandidate()
	_, _, err := Mine(context.Background(), b, 1)
	require.NoError(t, err)

	assert.NoError(t, Verify(b, 1))

	b.Timestamp++
	assert.True(t, errors.Is(Verify(b, 1), ErrProofOfWorkInvalid))
}

func TestNewMinerRejectsZeroInterval(t *testing.T) {
	_, err := NewMiner(WithCheckInterval(0))
	assert.Error(t, err)
}

func TestDefaultMiner(t *testing.T) {
	if assert.NotNil(t, defaultMiner) {
		assert.Equal(t, uint64(DefaultCheckInterval), defaultMiner.CheckInterval())
		assert.NotNil(t, defaultMiner.logger)
	}

	b := newCandidate()
	nonce, hash, err := Mine(context.Background(), b, 1)
	require.NoError(t, err)
	assert.Equal(t, b.Nonce, nonce)
	assert.True(t, MeetsDifficulty(hash, 1))
}
