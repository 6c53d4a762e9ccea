package node

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/tcfw/minichain/internal/config"
	"github.com/tcfw/minichain/internal/utils/logging"
	"github.com/tcfw/minichain/pkg/pow"
	"github.com/tcfw/minichain/pkg/storage"
	"github.com/tcfw/minichain/pkg/tx"
	"golang.org/x/sync/errgroup"
)

// NewNodes builds one participant per configured node, each with its own
// ledger and miner
func NewNodes(cfg *config.Chain, opts ...NodeOption) ([]*Node, error) {
	nodes := make([]*Node, 0, cfg.Nodes)

	for i := 0; i < cfg.Nodes; i++ {
		id := fmt.Sprintf("node-%d", i)
		logger := logging.ForNode(id)

		ledger, err := storage.NewLedger(
			storage.WithID(id),
			storage.WithDifficulty(cfg.Difficulty),
			storage.WithCapacity(cfg.Capacity),
			storage.WithLogger(logger),
		)
		if err != nil {
			return nil, errors.Wrapf(err, "initing ledger for %s", id)
		}

		interval := cfg.CheckInterval
		if interval == 0 {
			interval = pow.DefaultCheckInterval
		}

		miner, err := pow.NewMiner(pow.WithCheckInterval(interval), pow.WithLogger(logger))
		if err != nil {
			return nil, errors.Wrapf(err, "initing miner for %s", id)
		}

		n, err := NewNode(id, append([]NodeOption{WithLedger(ledger), WithMiner(miner), WithLogger(logger)}, opts...)...)
		if err != nil {
			return nil, err
		}

		nodes = append(nodes, n)
	}

	return nodes, nil
}

// Simulate runs every node in its own goroutine, each submitting txs and
// mining the pending pool into its own ledger cfg.BlocksPerNode times. Nodes do not share
// state or stop each other; the first error is returned once all have
// finished. cfg.Timeout bounds the whole run.
func Simulate(ctx context.Context, cfg *config.Chain, txs []tx.Tx, opts ...NodeOption) ([]*Node, error) {
	nodes, err := NewNodes(cfg, opts...)
	if err != nil {
		return nil, err
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	var g errgroup.Group

	for _, n := range nodes {
		n := n
		g.Go(func() error {
			for i := 0; i < cfg.BlocksPerNode; i++ {
				for _, t := range txs {
					if err := n.Submit(t); err != nil {
						return errors.Wrapf(err, "%s block %d", n.id, i)
					}
				}

				if _, err := n.MinePending(ctx); err != nil {
					n.logger.WithError(err).Error("failed to add block")
					return errors.Wrapf(err, "%s block %d", n.id, i)
				}
			}
			return nil
		})
	}

	return nodes, g.Wait()
}
