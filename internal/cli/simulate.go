package cli

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tcfw/minichain/internal/config"
	"github.com/tcfw/minichain/internal/node"
	"github.com/tcfw/minichain/internal/utils/logging"
	"github.com/tcfw/minichain/pkg/storage"
	"github.com/tcfw/minichain/pkg/tx"
)

var (
	simulateCmd = &cobra.Command{
		Use:   "simulate",
		RunE:  runSimulate,
		Short: "mine blocks on one independent ledger per node",
	}
)

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return errors.Wrap(err, "loading config")
	}

	ctx, cancel := context.WithCancel(cmdContext(cmd))
	defer cancel()

	sigs, stop := waitExit()

	go func() {
		defer stop()

		select {
		case <-sigs:
			logging.Entry().Warn("interrupted, abandoning mining")
			cancel()
		case <-ctx.Done():
		}
	}()

	nodes, simErr := node.Simulate(ctx, cfg.Chain(), []tx.Tx{node.DefaultTx})

	ledgers := make([]*storage.Ledger, 0, len(nodes))
	for _, n := range nodes {
		ledgers = append(ledgers, n.Ledger())
	}

	if err := printLedgers(ctx, cmd.OutOrStdout(), cfg.Output(), ledgers); err != nil {
		return errors.Wrap(err, "printing ledgers")
	}

	return simErr
}
