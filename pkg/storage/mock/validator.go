package mock

import (
	"context"

	"github.com/tcfw/minichain/pkg/storage"
	"github.com/tcfw/minichain/pkg/tx"
)

var _ storage.Validator = (*MockValidator)(nil)

// MockValidator accepts every tx and counts how many it was asked about
type MockValidator struct {
	Calls int
}

func (m *MockValidator) IsTxValid(_ context.Context, _ *tx.Tx) error {
	m.Calls++
	return nil
}
