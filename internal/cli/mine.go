package cli

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tcfw/minichain/internal/config"
	"github.com/tcfw/minichain/internal/node"
	"github.com/tcfw/minichain/internal/utils/logging"
	"github.com/tcfw/minichain/pkg/pow"
	"github.com/tcfw/minichain/pkg/storage"
	"github.com/tcfw/minichain/pkg/tx"
)

var (
	mineCmd = &cobra.Command{
		Use:   "mine",
		Short: "mine a genesis block for a single transaction",
		RunE:  runMine,
	}
)

func init() {
	mineCmd.Flags().Uint64("amount", node.DefaultTx.Amount, "amount transferred")
	mineCmd.Flags().String("sender", node.DefaultTx.Sender, "sender name")
	mineCmd.Flags().String("recipient", node.DefaultTx.Recipient, "recipient name")
}

func runMine(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return errors.Wrap(err, "loading config")
	}

	amount, _ := cmd.Flags().GetUint64("amount")
	sender, _ := cmd.Flags().GetString("sender")
	recipient, _ := cmd.Flags().GetString("recipient")

	t := tx.New(amount, sender, recipient)
	if err := t.Validate(); err != nil {
		return err
	}

	ctx := cmdContext(cmd)
	if cfg.Chain().Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Chain().Timeout)
		defer cancel()
	}

	ledger, err := storage.NewLedger(
		storage.WithID("cli"),
		storage.WithDifficulty(cfg.Chain().Difficulty),
		storage.WithLogger(logging.ForNode("cli")),
	)
	if err != nil {
		return errors.Wrap(err, "initing ledger")
	}

	miner, err := newMiner(cfg.Chain(), logging.ForNode("cli"))
	if err != nil {
		return err
	}

	n, err := node.NewNode("cli", node.WithLedger(ledger), node.WithMiner(miner))
	if err != nil {
		return err
	}

	if _, err := n.MineBlock(ctx, t); err != nil {
		return err
	}

	return printLedgers(ctx, cmd.OutOrStdout(), cfg.Output(), []*storage.Ledger{ledger})
}

func newMiner(c *config.Chain, logger *logrus.Entry) (*pow.Miner, error) {
	interval := c.CheckInterval
	if interval == 0 {
		interval = pow.DefaultCheckInterval
	}

	m, err := pow.NewMiner(pow.WithCheckInterval(interval), pow.WithLogger(logger))
	if err != nil {
		return nil, errors.Wrap(err, "initing miner")
	}

	return m, nil
}
