package storage

import (
	"github.com/pkg/errors"
	"github.com/tcfw/minichain/pkg/block"
	"github.com/tcfw/minichain/pkg/pow"
)

var (
	ErrNotFound = errors.New("not found")

	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrLinkageMismatch    = errors.New("prev hash does not match ledger tail")
	ErrCapacityExceeded   = errors.New("ledger capacity exceeded")
	ErrBloomMismatch      = errors.New("bloom filter does not match transactions")

	ErrProofOfWorkInvalid = pow.ErrProofOfWorkInvalid
	ErrMerkleRootMismatch = block.ErrMerkleRootMismatch
)
