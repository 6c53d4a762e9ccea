package node

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tcfw/minichain/pkg/tx"
)

func TestMemPoolOrder(t *testing.T) {
	m := NewTxMemPool()

	for i := 0; i < 5; i++ {
		m.AddTx(tx.New(uint64(i), "Alice", "Bob"))
	}

	assert.Equal(t, 5, m.Len())

	txs := m.Take(3)
	if assert.Len(t, txs, 3) {
		for i, p := range txs {
			assert.Equal(t, uint64(i), p.Amount)
		}
	}

	assert.Equal(t, 2, m.Len())
	assert.Len(t, m.Take(10), 2)
	assert.Empty(t, m.Take(1))
}

func TestMemPoolRequeue(t *testing.T) {
	m := NewTxMemPool()

	for i := 0; i < 4; i++ {
		m.AddTx(tx.New(uint64(i), "Alice", "Bob"))
	}

	taken := m.Take(2)
	m.AddTx(tx.New(4, "Alice", "Bob"))
	m.Requeue(taken)

	all := m.Take(10)
	got := make([]uint64, 0, len(all))
	for _, p := range all {
		got = append(got, p.Amount)
	}

	assert.Equal(t, []uint64{0, 1, 2, 3, 4}, got)
}

func TestMemPoolRequeueEmpty(t *testing.T) {
	m := NewTxMemPool()

	m.AddTx(tx.New(0, "Alice", "Bob"))
	taken := m.Take(1)
	m.Requeue(taken)
	m.AddTx(tx.New(1, "Alice", "Bob"))

	all := m.Take(10)
	if assert.Len(t, all, 2) {
		assert.Equal(t, uint64(0), all[0].Amount)
		assert.Equal(t, uint64(1), all[1].Amount)
	}
}

func BenchmarkMemPool(b *testing.B) {
	m := NewTxMemPool()

	for i := 0; i < b.N; i++ {
		m.AddTx(tx.New(uint64(i), fmt.Sprintf("sender-%d", i%10), "Bob"))
		if m.Len() > 100 {
			m.Take(10)
		}
	}
}
