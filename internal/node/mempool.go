package node

import (
	"container/heap"
	"sync"

	"github.com/tcfw/minichain/pkg/tx"
)

type pendingTx struct {
	tx  tx.Tx
	seq int64
}

type txList []pendingTx

func (l txList) Len() int           { return len(l) }
func (l txList) Less(i, j int) bool { return l[i].seq < l[j].seq }
func (l txList) Swap(i, j int)      { l[i], l[j] = l[j], l[i] }

func (l *txList) Push(x interface{}) {
	*l = append(*l, x.(pendingTx))
}

func (l *txList) Pop() interface{} {
	old := *l
	n := len(old)
	x := old[n-1]
	*l = old[0 : n-1]
	return x
}

// TxMemPool holds transactions waiting for a block, oldest first
type TxMemPool struct {
	mu    sync.Mutex
	plist txList
	seq   int64
}

func NewTxMemPool() *TxMemPool {
	m := &TxMemPool{
		plist: make(txList, 0),
	}

	heap.Init(&m.plist)

	return m
}

func (m *TxMemPool) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.plist.Len()
}

func (m *TxMemPool) AddTx(t tx.Tx) {
	m.mu.Lock()
	defer m.mu.Unlock()

	heap.Push(&m.plist, pendingTx{tx: t, seq: m.seq})
	m.seq++
}

// Take removes up to n of the oldest transactions
func (m *TxMemPool) Take(n int) []tx.Tx {
	m.mu.Lock()
	defer m.mu.Unlock()

	if n > m.plist.Len() {
		n = m.plist.Len()
	}

	txs := make([]tx.Tx, 0, n)
	for len(txs) < n {
		p := heap.Pop(&m.plist).(pendingTx)
		txs = append(txs, p.tx)
	}

	return txs
}

// Requeue puts transactions back ahead of everything added since they
// were taken
func (m *TxMemPool) Requeue(txs []tx.Tx) {
	m.mu.Lock()
	defer m.mu.Unlock()

	head := m.seq
	if m.plist.Len() > 0 {
		head = m.plist[0].seq
	}

	// sequence numbers below the current head keep their queued order
	for i, t := range txs {
		heap.Push(&m.plist, pendingTx{tx: t, seq: head - int64(len(txs)-i)})
	}
}
