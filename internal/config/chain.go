package config

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/tcfw/minichain/pkg/pow"
	"github.com/tcfw/minichain/pkg/storage"
)

type Chain struct {
	Difficulty    uint
	Capacity      int
	Nodes         int
	BlocksPerNode int
	CheckInterval uint64
	Timeout       time.Duration
}

const (
	Cfg_chain_difficulty    = "chain.difficulty"
	Cfg_chain_capacity      = "chain.capacity"
	Cfg_chain_nodes         = "chain.nodes"
	Cfg_chain_blocksPerNode = "chain.blocksPerNode"
	Cfg_chain_checkInterval = "chain.checkInterval"
	Cfg_chain_timeout       = "chain.timeout"
)

var (
	chainDefaults = map[string]interface{}{
		Cfg_chain_difficulty:    4,
		Cfg_chain_capacity:      storage.DefaultCapacity,
		Cfg_chain_nodes:         5,
		Cfg_chain_blocksPerNode: 1,
		Cfg_chain_checkInterval: pow.DefaultCheckInterval,
		Cfg_chain_timeout:       time.Minute,
	}
)

func init() {
	for k, v := range chainDefaults {
		viper.SetDefault(k, v)
	}
}

func buildChainConfig() (*Chain, error) {
	c := &Chain{
		Difficulty:    viper.GetUint(Cfg_chain_difficulty),
		Capacity:      viper.GetInt(Cfg_chain_capacity),
		Nodes:         viper.GetInt(Cfg_chain_nodes),
		BlocksPerNode: viper.GetInt(Cfg_chain_blocksPerNode),
		CheckInterval: viper.GetUint64(Cfg_chain_checkInterval),
		Timeout:       viper.GetDuration(Cfg_chain_timeout),
	}

	if c.Difficulty > pow.MaxDifficulty {
		return nil, errors.Errorf("difficulty %d exceeds %d", c.Difficulty, pow.MaxDifficulty)
	}

	if c.Nodes <= 0 {
		return nil, errors.New("at least one node is required")
	}

	if c.BlocksPerNode < 0 || c.BlocksPerNode > c.Capacity {
		return nil, errors.Errorf("blocks per node must be between 0 and capacity %d", c.Capacity)
	}

	return c, nil
}
