package main

import (
	"context"
	"encoding/base64"
	"flag"
	"fmt"
	"time"

	"github.com/tcfw/minichain/pkg/block"
	"github.com/tcfw/minichain/pkg/pow"
	"github.com/tcfw/minichain/pkg/storage"
	"github.com/tcfw/minichain/pkg/tx"
	"github.com/vmihailenco/msgpack/v5"
)

func main() {
	difficulty := flag.Uint("difficulty", 4, "leading zero hex characters")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	txs := []tx.Tx{tx.New(10, "Alice", "Bob")}

	genesis := storage.NewGenesis(uint64(time.Now().Unix()), txs...)
	genesis.MerkleRoot = block.MerkleRoot(genesis.Transactions)

	if _, _, err := pow.Mine(ctx, genesis, *difficulty); err != nil {
		panic(err)
	}

	id, err := block.ID(genesis.Hash)
	if err != nil {
		panic(err)
	}

	b, err := msgpack.Marshal(genesis)
	if err != nil {
		panic(err)
	}

	b64 := base64.StdEncoding.EncodeToString(b)

	fmt.Printf("Genesis %s (nonce %d):\n%s\n", block.FormatID(id), genesis.Nonce, b64)
}
