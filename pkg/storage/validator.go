package storage

import (
	"context"

	"github.com/tcfw/minichain/pkg/tx"
)

// Validator decides whether a transaction may be recorded in a ledger
type Validator interface {
	IsTxValid(context.Context, *tx.Tx) error
}

// TxValidator only checks tx fields are well formed. Balances are not
// tracked so overdrafts are accepted.
type TxValidator struct{}

func NewTxValidator() *TxValidator {
	return &TxValidator{}
}

func (v *TxValidator) IsTxValid(_ context.Context, t *tx.Tx) error {
	return t.Validate()
}
