package storage

import (
	"context"
	"sync"

	"github.com/ipfs/go-cid"
	"github.com/pkg/errors"
	"github.com/tcfw/minichain/pkg/block"
	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ Store = (*MemStore)(nil)
)

// MemStore keeps msgpack encoded blocks keyed by block id. Every read
// decodes a fresh copy so callers can never mutate stored blocks.
type MemStore struct {
	mu sync.RWMutex

	objects map[cid.Cid][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{
		objects: make(map[cid.Cid][]byte),
	}
}

func (m *MemStore) putObj(id cid.Cid, obj interface{}) error {
	d, err := msgpack.Marshal(obj)
	if err != nil {
		return errors.Wrap(err, "marshalling")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.objects[id] = d

	return nil
}

func (m *MemStore) getObj(id cid.Cid) []byte {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.objects[id]
}

func (m *MemStore) PutBlock(_ context.Context, b *block.Block) (cid.Cid, error) {
	id, err := block.ID(b.Hash)
	if err != nil {
		return cid.Undef, errors.Wrap(err, "making block id")
	}

	if err := m.putObj(id, b); err != nil {
		return cid.Undef, err
	}

	return id, nil
}

func (m *MemStore) GetBlock(_ context.Context, id cid.Cid) (*block.Block, error) {
	d := m.getObj(id)
	if d == nil {
		return nil, ErrNotFound
	}

	b := &block.Block{}
	if err := msgpack.Unmarshal(d, b); err != nil {
		return nil, errors.Wrap(err, "unmarshalling ")
	}

	return b, nil
}

func (m *MemStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.objects)
}
