package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tcfw/minichain/internal/config"
)

var (
	rootCmd = &cobra.Command{
		Use:          "minichain",
		Short:        "mine independent hash-linked ledgers",
		RunE:         runSimulate,
		SilenceUsage: true,
	}
)

func Execute() error {
	f := rootCmd.PersistentFlags()
	f.BoolP("verbose", "v", false, "increase verbosity")
	f.StringP("output", "o", "table", "report format (table, yaml)")
	f.UintP("difficulty", "d", 4, "leading zero hex characters required of block hashes")
	f.IntP("nodes", "n", 5, "number of participants")
	f.IntP("blocks", "b", 1, "blocks mined by each participant")
	f.Int("capacity", 100, "blocks each ledger can hold")
	f.Duration("timeout", time.Minute, "abandon mining after this long")

	viper.BindPFlag(config.Cfg_verbose, f.Lookup("verbose"))
	viper.BindPFlag(config.Cfg_output, f.Lookup("output"))
	viper.BindPFlag(config.Cfg_chain_difficulty, f.Lookup("difficulty"))
	viper.BindPFlag(config.Cfg_chain_nodes, f.Lookup("nodes"))
	viper.BindPFlag(config.Cfg_chain_blocksPerNode, f.Lookup("blocks"))
	viper.BindPFlag(config.Cfg_chain_capacity, f.Lookup("capacity"))
	viper.BindPFlag(config.Cfg_chain_timeout, f.Lookup("timeout"))

	regCommands()

	return rootCmd.Execute()
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}

// waitExit registers for interrupt signals. Call the returned stop func to
// unregister once the caller no longer waits.
func waitExit() (<-chan os.Signal, func()) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	return sigs, func() { signal.Stop(sigs) }
}
