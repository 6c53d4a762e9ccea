package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/tcfw/minichain/pkg/block"
	"github.com/tcfw/minichain/pkg/storage"
	"github.com/tcfw/minichain/pkg/tx"
	"gopkg.in/yaml.v3"
)

type ledgerReport struct {
	Node       string        `yaml:"node"`
	Difficulty uint          `yaml:"difficulty"`
	Blocks     []blockReport `yaml:"blocks"`
}

type blockReport struct {
	Index        uint64  `yaml:"index"`
	ID           string  `yaml:"id"`
	Hash         string  `yaml:"hash"`
	PrevHash     string  `yaml:"prevHash"`
	MerkleRoot   string  `yaml:"merkleRoot,omitempty"`
	Timestamp    uint64  `yaml:"timestamp"`
	Nonce        uint32  `yaml:"nonce"`
	Transactions []tx.Tx `yaml:"transactions"`
}

func buildReports(ctx context.Context, ledgers []*storage.Ledger) ([]ledgerReport, error) {
	reports := make([]ledgerReport, 0, len(ledgers))

	for _, l := range ledgers {
		blocks, err := l.Blocks(ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "reading ledger %s", l.ID())
		}

		r := ledgerReport{Node: l.ID(), Difficulty: l.Difficulty(), Blocks: make([]blockReport, 0, len(blocks))}

		for _, b := range blocks {
			id, err := block.ID(b.Hash)
			if err != nil {
				return nil, err
			}

			r.Blocks = append(r.Blocks, blockReport{
				Index:        b.Index,
				ID:           block.FormatID(id),
				Hash:         b.Hash,
				PrevHash:     b.PrevHash,
				MerkleRoot:   b.MerkleRoot,
				Timestamp:    b.Timestamp,
				Nonce:        b.Nonce,
				Transactions: b.Transactions,
			})
		}

		reports = append(reports, r)
	}

	return reports, nil
}

func printLedgers(ctx context.Context, w io.Writer, format string, ledgers []*storage.Ledger) error {
	reports, err := buildReports(ctx, ledgers)
	if err != nil {
		return err
	}

	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(reports)
	case "table", "":
		return printTables(w, reports)
	default:
		return errors.Errorf("unknown output format %q", format)
	}
}

func printTables(w io.Writer, reports []ledgerReport) error {
	for _, r := range reports {
		fmt.Fprint(w, pterm.DefaultSection.Sprintf("Ledger of %s (difficulty %d)", r.Node, r.Difficulty))

		if len(r.Blocks) == 0 {
			fmt.Fprintln(w, "  no blocks")
			continue
		}

		data := pterm.TableData{{"Index", "Hash", "Previous Hash", "Timestamp", "Nonce", "Transactions"}}
		for _, b := range r.Blocks {
			txs := make([]string, 0, len(b.Transactions))
			for _, t := range b.Transactions {
				txs = append(txs, fmt.Sprintf("%s -> %s: %d", t.Sender, t.Recipient, t.Amount))
			}

			data = append(data, []string{
				strconv.FormatUint(b.Index, 10),
				b.Hash,
				b.PrevHash,
				strconv.FormatUint(b.Timestamp, 10),
				strconv.FormatUint(uint64(b.Nonce), 10),
				strings.Join(txs, "\n"),
			})
		}

		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return errors.Wrap(err, "rendering table")
		}

		fmt.Fprintln(w, table)
	}

	return nil
}
