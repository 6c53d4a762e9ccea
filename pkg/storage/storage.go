package storage

import (
	"context"

	"github.com/ipfs/go-cid"
	"github.com/tcfw/minichain/pkg/block"
)

// Store holds encoded blocks addressed by their id
type Store interface {
	PutBlock(context.Context, *block.Block) (cid.Cid, error)
	GetBlock(context.Context, cid.Cid) (*block.Block, error)
}
